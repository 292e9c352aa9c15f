package domain

import "time"

// User describes a store customer, referenced by orders for display only.
type User struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
