package match

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusDeclined  = "declined"
)

var ErrNotFound = errors.New("match not found")

// Match is the persisted record of a scored mentor/mentee pairing. Display
// fields shown alongside a match in API responses are not stored here; the
// matching flow strips them before persistence.
type Match struct {
	ID           uuid.UUID `json:"id"`
	MentorID     uuid.UUID `json:"mentor_id"`
	MenteeID     uuid.UUID `json:"mentee_id"`
	MatchScore   float64   `json:"match_score"`
	MatchReasons []string  `json:"match_reasons"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
