package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseSimple holds the store-assigned identity of an append-only row.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
