package gemini

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"mentormatch/internal/ai"
	"mentormatch/internal/domain/goal"
	"mentormatch/internal/domain/profile"
	"mentormatch/internal/metrics"

	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Advisor implements ai.Advisor over a Gemini content generator. Responses
// are expected to be JSON but are treated as hostile input: code fences are
// stripped and any parse failure degrades to fixed defaults rather than an
// error, so only transport failures propagate.
type Advisor struct {
	generator contentGenerator
	logger    *zap.Logger
}

func NewAdvisor(generator contentGenerator, logger *zap.Logger) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Advisor{generator: generator, logger: logger}
}

func (a *Advisor) AnalyzeProfile(ctx context.Context, p profile.Profile) (ai.Analysis, error) {
	raw, err := a.generate(ctx, "analyze_profile", analyzeProfilePrompt(p))
	if err != nil {
		return ai.Analysis{}, err
	}

	var analysis ai.Analysis
	if err := json.Unmarshal([]byte(extractJSON(raw)), &analysis); err != nil {
		a.parseFallback("analyze_profile", raw, err)
		return ai.Analysis{
			CommunicationStyle:  "collaborative",
			SkillStrengths:      []string{"leadership", "technical", "communication"},
			GrowthAreas:         []string{"networking", "strategic thinking", "industry knowledge"},
			CareerStage:         "mid-level",
			MentorshipReadiness: 7,
			PersonalityTraits:   []string{"analytical", "growth-oriented", "collaborative"},
		}, nil
	}
	return analysis, nil
}

func (a *Advisor) SessionAgenda(ctx context.Context, mentor, mentee profile.Profile, sessionNumber int) ([]string, error) {
	raw, err := a.generate(ctx, "session_agenda", sessionAgendaPrompt(mentor, mentee, sessionNumber))
	if err != nil {
		return nil, err
	}

	var agenda []string
	if err := json.Unmarshal([]byte(extractJSON(raw)), &agenda); err != nil || len(agenda) == 0 {
		a.parseFallback("session_agenda", raw, err)
		return []string{
			"Welcome and check-in (10 min)",
			"Review goals and progress (15 min)",
			"Skill development discussion (20 min)",
			"Career strategy and next steps (10 min)",
			"Action items and follow-up (5 min)",
		}, nil
	}
	return agenda, nil
}

func (a *Advisor) CareerInsights(ctx context.Context, p profile.Profile) ([]ai.InsightDraft, error) {
	raw, err := a.generate(ctx, "career_insights", careerInsightsPrompt(p))
	if err != nil {
		return nil, err
	}

	var drafts []ai.InsightDraft
	if err := json.Unmarshal([]byte(extractJSON(raw)), &drafts); err != nil || len(drafts) == 0 {
		a.parseFallback("career_insights", raw, err)
		return []ai.InsightDraft{
			{
				InsightType:     "skill_gap",
				Title:           "Emerging Technology Skills",
				Description:     "Based on market trends, consider developing skills in emerging technologies relevant to your field.",
				Recommendations: []string{"Take online courses", "Join professional communities", "Attend industry conferences"},
				ConfidenceScore: 0.8,
			},
		}, nil
	}
	return drafts, nil
}

func (a *Advisor) GoalRecommendations(ctx context.Context, g goal.Goal) ([]string, error) {
	raw, err := a.generate(ctx, "goal_recommendations", goalRecommendationsPrompt(g))
	if err != nil {
		return nil, err
	}

	var recs []string
	if err := json.Unmarshal([]byte(extractJSON(raw)), &recs); err != nil || len(recs) == 0 {
		a.parseFallback("goal_recommendations", raw, err)
		return []string{"Set specific milestones", "Find relevant resources", "Track progress weekly"}, nil
	}
	return recs, nil
}

func (a *Advisor) generate(ctx context.Context, operation, prompt string) (string, error) {
	metrics.LLMRequests.WithLabelValues(operation).Inc()

	start := time.Now()
	raw, err := a.generator.GenerateContent(ctx, prompt)
	metrics.LLMRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMFailures.WithLabelValues(operation).Inc()
		return "", err
	}

	a.logger.Debug("gemini response",
		zap.String("operation", operation),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
	)
	return raw, nil
}

func (a *Advisor) parseFallback(operation, raw string, err error) {
	metrics.LLMParseFallbacks.WithLabelValues(operation).Inc()
	a.logger.Warn("gemini response not parseable, using fallback",
		zap.String("operation", operation),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.Error(err),
	)
}

// extractJSON strips markdown code fences that models wrap JSON in despite
// instructions.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
