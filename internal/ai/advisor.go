package ai

import (
	"context"

	"mentormatch/internal/domain/goal"
	"mentormatch/internal/domain/profile"
)

// Analysis is the advisor's read of a profile. It is attached to the profile
// document verbatim and treated as opaque input data by the match scorer.
type Analysis struct {
	CommunicationStyle  string   `json:"communication_style"`
	SkillStrengths      []string `json:"skill_strengths"`
	GrowthAreas         []string `json:"growth_areas"`
	CareerStage         string   `json:"career_stage"`
	MentorshipReadiness float64  `json:"mentorship_readiness"`
	PersonalityTraits   []string `json:"personality_traits"`
}

// Document converts the analysis to the document form stored on a profile.
func (a Analysis) Document() map[string]any {
	strengths := a.SkillStrengths
	if strengths == nil {
		strengths = []string{}
	}
	growth := a.GrowthAreas
	if growth == nil {
		growth = []string{}
	}
	traits := a.PersonalityTraits
	if traits == nil {
		traits = []string{}
	}
	return map[string]any{
		"communication_style":  a.CommunicationStyle,
		"skill_strengths":      strengths,
		"growth_areas":         growth,
		"career_stage":         a.CareerStage,
		"mentorship_readiness": a.MentorshipReadiness,
		"personality_traits":   traits,
	}
}

// InsightDraft is an advisor-generated career insight before it is assigned
// an id and owner.
type InsightDraft struct {
	InsightType     string   `json:"insight_type"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
	ConfidenceScore float64  `json:"confidence_score"`
}

// Advisor is the external LLM boundary. Implementations are best-effort:
// a malformed response degrades to fixed defaults inside the implementation,
// and only transport-level failures surface as errors, which callers log and
// replace with their own fallbacks.
type Advisor interface {
	AnalyzeProfile(ctx context.Context, p profile.Profile) (Analysis, error)
	SessionAgenda(ctx context.Context, mentor, mentee profile.Profile, sessionNumber int) ([]string, error)
	CareerInsights(ctx context.Context, p profile.Profile) ([]InsightDraft, error)
	GoalRecommendations(ctx context.Context, g goal.Goal) ([]string, error)
}
