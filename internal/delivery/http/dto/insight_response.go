package dto

import (
	"time"

	"mentormatch/internal/domain/insight"

	"github.com/google/uuid"
)

type InsightResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	InsightType     string    `json:"insight_type"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Recommendations []string  `json:"recommendations"`
	ConfidenceScore float64   `json:"confidence_score"`
	CreatedAt       time.Time `json:"created_at"`
}

type InsightsResponse struct {
	Insights []InsightResponse `json:"insights"`
}

func FromInsight(in insight.Insight) InsightResponse {
	return InsightResponse{
		ID:              in.ID,
		UserID:          in.UserID,
		InsightType:     in.InsightType,
		Title:           in.Title,
		Description:     in.Description,
		Recommendations: in.Recommendations,
		ConfidenceScore: in.ConfidenceScore,
		CreatedAt:       in.CreatedAt,
	}
}

func FromInsights(insights []insight.Insight) []InsightResponse {
	out := make([]InsightResponse, 0, len(insights))
	for _, in := range insights {
		out = append(out, FromInsight(in))
	}
	return out
}
