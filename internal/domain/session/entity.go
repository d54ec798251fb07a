package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const DefaultDurationMinutes = 60

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID              uuid.UUID      `json:"id"`
	MatchID         uuid.UUID      `json:"match_id"`
	MentorID        uuid.UUID      `json:"mentor_id"`
	MenteeID        uuid.UUID      `json:"mentee_id"`
	ScheduledTime   time.Time      `json:"scheduled_time"`
	DurationMinutes int            `json:"duration_minutes"`
	Agenda          []string       `json:"agenda"`
	Notes           string         `json:"notes"`
	ActionItems     []string       `json:"action_items"`
	AIInsights      map[string]any `json:"ai_insights,omitempty"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
}
