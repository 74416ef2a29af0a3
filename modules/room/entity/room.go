package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Room is registry metadata only. Availability is never stored here; it
// is always derived from the booking ledger for a concrete interval.
type Room struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Slug        string         `db:"slug" json:"slug"`
	Description *string        `db:"description" json:"description,omitempty"`
	Capacity    int            `db:"capacity" json:"capacity"`
	Price       float64        `db:"price" json:"price"`
	Amenities   pq.StringArray `db:"amenities" json:"amenities"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}
