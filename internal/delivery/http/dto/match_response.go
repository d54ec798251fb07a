package dto

import (
	"time"

	"mentormatch/internal/domain/match"
	"mentormatch/internal/usecase"

	"github.com/google/uuid"
)

// MatchCandidateResponse is a scored mentor candidate with display fields.
// Persisted matches carry only the core fields; the display extras exist for
// the matching response.
type MatchCandidateResponse struct {
	ID           uuid.UUID `json:"id"`
	MentorID     uuid.UUID `json:"mentor_id"`
	MenteeID     uuid.UUID `json:"mentee_id"`
	MatchScore   float64   `json:"match_score"`
	MatchReasons []string  `json:"match_reasons"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`

	MentorName       string `json:"mentor_name"`
	MentorPosition   string `json:"mentor_position"`
	MentorIndustry   string `json:"mentor_industry"`
	MentorExperience int    `json:"mentor_experience"`
}

type FindMatchesResponse struct {
	Matches []MatchCandidateResponse `json:"matches"`
}

func FromMatchCandidates(candidates []usecase.MatchCandidate) FindMatchesResponse {
	out := make([]MatchCandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, MatchCandidateResponse{
			ID:               c.ID,
			MentorID:         c.MentorID,
			MenteeID:         c.MenteeID,
			MatchScore:       c.MatchScore,
			MatchReasons:     c.MatchReasons,
			Status:           c.Status,
			CreatedAt:        c.CreatedAt,
			MentorName:       c.MentorName,
			MentorPosition:   c.MentorPosition,
			MentorIndustry:   c.MentorIndustry,
			MentorExperience: c.MentorExperience,
		})
	}
	return FindMatchesResponse{Matches: out}
}

type MatchResponse struct {
	ID           uuid.UUID `json:"id"`
	MentorID     uuid.UUID `json:"mentor_id"`
	MenteeID     uuid.UUID `json:"mentee_id"`
	MatchScore   float64   `json:"match_score"`
	MatchReasons []string  `json:"match_reasons"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromMatch(m match.Match) MatchResponse {
	return MatchResponse{
		ID:           m.ID,
		MentorID:     m.MentorID,
		MenteeID:     m.MenteeID,
		MatchScore:   m.MatchScore,
		MatchReasons: m.MatchReasons,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
	}
}

func FromMatches(matches []match.Match) []MatchResponse {
	out := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, FromMatch(m))
	}
	return out
}
