package gemini

import (
	"context"
	"errors"
	"testing"

	"mentormatch/internal/domain/goal"
	"mentormatch/internal/domain/profile"
)

type stubGenerator struct {
	response string
	err      error
	prompt   string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func TestAnalyzeProfile_ParsesResponse(t *testing.T) {
	gen := &stubGenerator{response: `{
		"communication_style": "direct",
		"skill_strengths": ["distributed systems"],
		"growth_areas": ["delegation"],
		"career_stage": "senior",
		"mentorship_readiness": 8,
		"personality_traits": ["decisive"]
	}`}
	a := NewAdvisor(gen, nil)

	got, err := a.AnalyzeProfile(context.Background(), profile.Profile{Name: "Dana"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.CommunicationStyle != "direct" || got.MentorshipReadiness != 8 {
		t.Fatalf("response not parsed: %+v", got)
	}
	if gen.prompt == "" {
		t.Fatalf("expected prompt to be sent")
	}
}

func TestAnalyzeProfile_StripsCodeFences(t *testing.T) {
	gen := &stubGenerator{response: "```json\n{\"communication_style\": \"creative\", \"mentorship_readiness\": 6}\n```"}
	a := NewAdvisor(gen, nil)

	got, err := a.AnalyzeProfile(context.Background(), profile.Profile{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.CommunicationStyle != "creative" || got.MentorshipReadiness != 6 {
		t.Fatalf("fenced response not parsed: %+v", got)
	}
}

func TestAnalyzeProfile_ParseFailureUsesDefaults(t *testing.T) {
	gen := &stubGenerator{response: "I'm sorry, I can't produce JSON today."}
	a := NewAdvisor(gen, nil)

	got, err := a.AnalyzeProfile(context.Background(), profile.Profile{})
	if err != nil {
		t.Fatalf("parse failures must not error: %v", err)
	}
	if got.CommunicationStyle != "collaborative" || got.MentorshipReadiness != 7 {
		t.Fatalf("expected fallback analysis, got %+v", got)
	}
	if got.CareerStage != "mid-level" {
		t.Fatalf("expected fallback career stage, got %q", got.CareerStage)
	}
}

func TestAnalyzeProfile_TransportErrorPropagates(t *testing.T) {
	wantErr := errors.New("connection refused")
	a := NewAdvisor(&stubGenerator{err: wantErr}, nil)

	_, err := a.AnalyzeProfile(context.Background(), profile.Profile{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected transport error to propagate, got %v", err)
	}
}

func TestSessionAgenda_ParsesList(t *testing.T) {
	gen := &stubGenerator{response: `["Discuss Q3 goals", "Review system design exercise"]`}
	a := NewAdvisor(gen, nil)

	got, err := a.SessionAgenda(context.Background(), profile.Profile{}, profile.Profile{}, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0] != "Discuss Q3 goals" {
		t.Fatalf("agenda not parsed: %v", got)
	}
}

func TestSessionAgenda_EmptyListUsesDefaults(t *testing.T) {
	a := NewAdvisor(&stubGenerator{response: `[]`}, nil)

	got, err := a.SessionAgenda(context.Background(), profile.Profile{}, profile.Profile{}, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected default timed agenda, got %v", got)
	}
	if got[0] != "Welcome and check-in (10 min)" {
		t.Fatalf("expected default agenda, got %v", got)
	}
}

func TestCareerInsights_ParseFailureUsesDefaultInsight(t *testing.T) {
	a := NewAdvisor(&stubGenerator{response: "not json"}, nil)

	got, err := a.CareerInsights(context.Background(), profile.Profile{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected single fallback insight, got %d", len(got))
	}
	if got[0].InsightType != "skill_gap" || got[0].ConfidenceScore != 0.8 {
		t.Fatalf("expected fallback insight, got %+v", got[0])
	}
}

func TestGoalRecommendations_ParsesList(t *testing.T) {
	gen := &stubGenerator{response: "```\n[\"Block learning time weekly\"]\n```"}
	a := NewAdvisor(gen, nil)

	got, err := a.GoalRecommendations(context.Background(), goal.Goal{Title: "Ship v2"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0] != "Block learning time weekly" {
		t.Fatalf("recommendations not parsed: %v", got)
	}
}

func TestGoalRecommendations_ParseFailureUsesGenericSet(t *testing.T) {
	a := NewAdvisor(&stubGenerator{response: "{}"}, nil)

	got, err := a.GoalRecommendations(context.Background(), goal.Goal{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 3 || got[0] != "Set specific milestones" {
		t.Fatalf("expected generic recommendations, got %v", got)
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n[1,2]\n```", `[1,2]`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, c := range cases {
		if got := extractJSON(c.in); got != c.want {
			t.Fatalf("extractJSON(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
