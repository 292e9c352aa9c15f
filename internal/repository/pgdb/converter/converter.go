package converter

import (
	"github.com/storekit/admin-backend/internal/domain"
	"github.com/storekit/admin-backend/internal/usecase"
)

// ProductConverter maps Product between domain and the PostgreSQL model.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// CategoryConverter maps Category between domain and the PostgreSQL model.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// ProductImageConverter maps ProductImage between domain and the PostgreSQL model.
type ProductImageConverter interface {
	ToModel(entity *domain.ProductImage) *ProductImageModel
	ToEntity(model *ProductImageModel) *domain.ProductImage
}

// OutboxEventConverter maps OutboxEvent between usecase and the PostgreSQL model.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}
	return &ProductModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Slug:        entity.Slug,
		Price:       entity.Price,
		Description: entity.Description,
		CategoryID:  entity.CategoryID,
		Stock:       entity.Stock,
		CreatedAt:   entity.CreatedAt,
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Slug:        model.Slug,
		Price:       model.Price,
		Description: model.Description,
		CategoryID:  model.CategoryID,
		Stock:       model.Stock,
		CreatedAt:   model.CreatedAt,
	}
}

type CategoryConverterImpl struct{}

func NewCategoryConverterImpl() *CategoryConverterImpl {
	return &CategoryConverterImpl{}
}

func (c *CategoryConverterImpl) ToModel(entity *domain.Category) *CategoryModel {
	if entity == nil {
		return nil
	}
	return &CategoryModel{
		ID:        entity.ID,
		Name:      entity.Name,
		CreatedAt: entity.CreatedAt,
	}
}

func (c *CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	if model == nil {
		return nil
	}
	return &domain.Category{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}
}

type ProductImageConverterImpl struct{}

func NewProductImageConverterImpl() *ProductImageConverterImpl {
	return &ProductImageConverterImpl{}
}

func (c *ProductImageConverterImpl) ToModel(entity *domain.ProductImage) *ProductImageModel {
	if entity == nil {
		return nil
	}
	return &ProductImageModel{
		ID:        entity.ID,
		ProductID: entity.ProductID,
		URL:       entity.URL,
		CreatedAt: entity.CreatedAt,
	}
}

func (c *ProductImageConverterImpl) ToEntity(model *ProductImageModel) *domain.ProductImage {
	if model == nil {
		return nil
	}
	return &domain.ProductImage{
		ID:        model.ID,
		ProductID: model.ProductID,
		URL:       model.URL,
		CreatedAt: model.CreatedAt,
	}
}

type OutboxEventConverterImpl struct{}

func NewOutboxEventConverterImpl() *OutboxEventConverterImpl {
	return &OutboxEventConverterImpl{}
}

func (c *OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	if entity == nil {
		return nil
	}
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		ProductID:   entity.ProductID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	if model == nil {
		return nil
	}
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		ProductID:   model.ProductID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		result = append(result, c.ToEntity(model))
	}
	return result
}
