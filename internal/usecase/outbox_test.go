package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductCreatedEvent(t *testing.T) {
	at := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

	event, err := NewProductCreatedEvent(42, "blue-mug-1748772000000", at)
	require.NoError(t, err)

	assert.Equal(t, ProductCreated, event.EventType)
	assert.Equal(t, Pending, event.Status)
	assert.Equal(t, int64(42), event.ProductID)
	assert.True(t, event.CreatedAt.Equal(at))

	_, err = uuid.Parse(event.EventID)
	require.NoError(t, err, "event id is a uuid")

	var payload map[string]any
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, event.EventID, payload["event_id"])
	assert.Equal(t, "product.created", payload["event_type"])
	assert.Equal(t, float64(42), payload["product_id"])
	assert.Equal(t, "blue-mug-1748772000000", payload["slug"])
}

func TestNewProductCreatedEvent_UniqueEventIDs(t *testing.T) {
	at := time.Now()

	first, err := NewProductCreatedEvent(1, "a-1", at)
	require.NoError(t, err)
	second, err := NewProductCreatedEvent(1, "a-1", at)
	require.NoError(t, err)

	assert.NotEqual(t, first.EventID, second.EventID)
}
