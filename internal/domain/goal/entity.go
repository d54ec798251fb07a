package goal

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusPaused    = "paused"
)

type Goal struct {
	ID                uuid.UUID        `json:"id"`
	UserID            uuid.UUID        `json:"user_id"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Category          string           `json:"category"`
	TargetDate        time.Time        `json:"target_date"`
	Milestones        []map[string]any `json:"milestones"`
	Progress          float64          `json:"progress"`
	AIRecommendations []string         `json:"ai_recommendations"`
	Status            string           `json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
}
