package converter

import "time"

// ProductModel represents a row of the products table.
type ProductModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Price       int64     `db:"price"`
	Description string    `db:"description"`
	CategoryID  int64     `db:"category_id"`
	Stock       int32     `db:"stock"`
	CreatedAt   time.Time `db:"created_at"`
}

// CategoryModel represents a row of the categories table.
type CategoryModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// ProductImageModel represents a row of the product_images table.
type ProductImageModel struct {
	ID        int64     `db:"id"`
	ProductID int64     `db:"product_id"`
	URL       string    `db:"url"`
	CreatedAt time.Time `db:"created_at"`
}

// OutboxEventModel represents a row of the outbox_events table.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ProductID   int64      `db:"product_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
