package dto

import (
	"time"

	"mentormatch/internal/domain/goal"

	"github.com/google/uuid"
)

type GoalResponse struct {
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

func FromGoal(g goal.Goal) GoalResponse {
	return GoalResponse{
		ID:                g.ID,
		UserID:            g.UserID,
		Title:             g.Title,
		Description:       g.Description,
		Category:          g.Category,
		TargetDate:        g.TargetDate,
		Milestones:        g.Milestones,
		Progress:          g.Progress,
		AIRecommendations: g.AIRecommendations,
		Status:            g.Status,
		CreatedAt:         g.CreatedAt,
	}
}

func FromGoals(goals []goal.Goal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, FromGoal(g))
	}
	return out
}
