package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ProductCreated OutboxEventType = "product.created"
)

// OutboxEvent is a persisted domain event drained into Kafka by the outbox
// worker after the owning transaction commits.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

type productCreatedPayload struct {
	EventID    string `json:"event_id"`
	EventType  string `json:"event_type"`
	ProductID  int64  `json:"product_id"`
	Slug       string `json:"slug"`
	OccurredAt int64  `json:"occurred_at"` // unix nanoseconds
}

// NewProductCreatedEvent builds a product.created outbox event with a JSON
// payload.
func NewProductCreatedEvent(productID int64, slug string, occurredAt time.Time) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payload, err := json.Marshal(productCreatedPayload{
		EventID:    eventID,
		EventType:  string(ProductCreated),
		ProductID:  productID,
		Slug:       slug,
		OccurredAt: occurredAt.UnixNano(),
	})
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:   eventID,
		EventType: ProductCreated,
		ProductID: productID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: occurredAt,
	}, nil
}
