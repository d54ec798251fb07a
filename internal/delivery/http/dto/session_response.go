package dto

import (
	"time"

	"mentormatch/internal/domain/session"

	"github.com/google/uuid"
)

type SessionResponse struct {
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

func FromSession(s session.Session) SessionResponse {
	return SessionResponse{
		ID:              s.ID,
		MatchID:         s.MatchID,
		MentorID:        s.MentorID,
		MenteeID:        s.MenteeID,
		ScheduledTime:   s.ScheduledTime,
		DurationMinutes: s.DurationMinutes,
		Agenda:          s.Agenda,
		Notes:           s.Notes,
		ActionItems:     s.ActionItems,
		AIInsights:      s.AIInsights,
		Status:          s.Status,
		CreatedAt:       s.CreatedAt,
	}
}

func FromSessions(sessions []session.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, FromSession(s))
	}
	return out
}
