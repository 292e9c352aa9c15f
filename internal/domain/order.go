package domain

import "time"

// Order describes a customer order. Only the fields the admin dashboard
// aggregates over are carried here.
type Order struct {
	ID          int64
	UserID      int64
	TotalAmount int64 // total stored in cents
	CreatedAt   time.Time
}
