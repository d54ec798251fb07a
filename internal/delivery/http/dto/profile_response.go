package dto

import (
	"time"

	"mentormatch/internal/domain/profile"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID                 uuid.UUID      `json:"id"`
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	Role               string         `json:"role"`
	CurrentPosition    string         `json:"current_position"`
	Industry           string         `json:"industry"`
	ExperienceYears    int            `json:"experience_years"`
	Skills             []string       `json:"skills"`
	Goals              []string       `json:"goals"`
	Bio                string         `json:"bio"`
	Interests          []string       `json:"interests"`
	CommunicationStyle string         `json:"communication_style,omitempty"`
	AIAnalysis         map[string]any `json:"ai_analysis,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func FromProfile(p profile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		Role:               p.Role,
		CurrentPosition:    p.CurrentPosition,
		Industry:           p.Industry,
		ExperienceYears:    p.ExperienceYears,
		Skills:             p.Skills,
		Goals:              p.Goals,
		Bio:                p.Bio,
		Interests:          p.Interests,
		CommunicationStyle: p.CommunicationStyle,
		AIAnalysis:         p.AIAnalysis,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromProfiles(profiles []profile.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, FromProfile(p))
	}
	return out
}
