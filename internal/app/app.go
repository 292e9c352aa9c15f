package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/storekit/admin-backend/internal/cfg"
	v1Http "github.com/storekit/admin-backend/internal/delivery/v1/http"
	"github.com/storekit/admin-backend/internal/infrastructure/kafka"
	minioInfra "github.com/storekit/admin-backend/internal/infrastructure/minio"
	s3Repo "github.com/storekit/admin-backend/internal/repository/minio"
	"github.com/storekit/admin-backend/internal/repository/pgdb"
	pgdbConv "github.com/storekit/admin-backend/internal/repository/pgdb/converter"
	"github.com/storekit/admin-backend/internal/repository/redis"
	redisConv "github.com/storekit/admin-backend/internal/repository/redis/converter"
	"github.com/storekit/admin-backend/internal/usecase"
	"github.com/storekit/admin-backend/pkg/clients"
	"github.com/storekit/admin-backend/pkg/closer"
	"github.com/storekit/admin-backend/pkg/e"
	"github.com/storekit/admin-backend/pkg/logger"
	"github.com/storekit/admin-backend/pkg/postgres"
)

const (
	shutdownTimeout = 10 * time.Second
	forcedTimeout   = 2 * time.Second
)

func Run(cfg *config.Config, logger *logger.ZapLogger) error {
	shutdownCtx, shutdownTrigger := context.WithCancel(context.Background())
	defer shutdownTrigger()

	cl := closer.NewCloser(forcedTimeout)

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		return err
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	prConv := pgdbConv.NewProductConverterImpl()
	catConv := pgdbConv.NewCategoryConverterImpl()
	imgConv := pgdbConv.NewProductImageConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	dashConv := redisConv.NewDashboardConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool)
	userRepo := pgdb.NewUserRepo(db.Pool)
	productImageRepo := pgdb.NewProductImageRepo(db.Pool, imgConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		return err
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, dashConv, cfg.Redis, logger)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		return err
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		return err
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, logger, shutdownCtx)
	cl.Add(imagesInfra.WaitForCleanup)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		return err
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		return err
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	worker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	worker.Start(shutdownCtx)
	cl.Add(func(ctx context.Context) error {
		worker.Stop()
		return nil
	})

	adminUC := usecase.NewAdminUC(
		productRepo,
		categoryRepo,
		orderRepo,
		userRepo,
		productImageRepo,
		outboxRepo,
		db.Pool,
		imagesInfra,
		cacheRepo,
		logger,
	)

	renderer, err := v1Http.NewHTMLRenderer()
	if err != nil {
		logger.Errorf(err, "failed to initialize renderer")
		return err
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(adminUC, renderer)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("received shutdown signal, stopping gracefully...")
	}
	shutdownTrigger()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer closeCancel()

	if err := httpSrv.Stop(closeCtx); err != nil {
		logger.Errorf(err, "HTTP server shutdown error")
	} else {
		logger.Infof("HTTP server stopped")
	}

	if err := cl.Close(closeCtx); err != nil {
		logger.Warnf("resource shutdown: %v", err)
	}

	logger.Infof("application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
