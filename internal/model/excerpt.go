package model

import (
	"time"

	"github.com/google/uuid"
)

type ExcerptList []Excerpt

// Excerpt is one titled advice item extracted from a structured assistant
// response. Order is the zero-based position in the original advice list,
// stored as its string form.
type Excerpt struct {
	ID        uuid.UUID `db:"id" json:"id"`
	MessageID uuid.UUID `db:"message_id" json:"message_id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Order     string    `db:"order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
