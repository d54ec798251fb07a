package usecase

import (
	"context"
	"errors"
	"testing"

	"mentormatch/internal/ai"
	"mentormatch/internal/domain/goal"
	"mentormatch/internal/domain/profile"

	"github.com/google/uuid"
)

type fakeAdvisor struct {
	analysis    ai.Analysis
	analysisErr error

	agenda            []string
	agendaErr         error
	lastSessionNumber int

	drafts      []ai.InsightDraft
	insightsErr error

	recs    []string
	recsErr error
}

func (f *fakeAdvisor) AnalyzeProfile(context.Context, profile.Profile) (ai.Analysis, error) {
	return f.analysis, f.analysisErr
}
func (f *fakeAdvisor) SessionAgenda(_ context.Context, _, _ profile.Profile, sessionNumber int) ([]string, error) {
	f.lastSessionNumber = sessionNumber
	return f.agenda, f.agendaErr
}
func (f *fakeAdvisor) CareerInsights(context.Context, profile.Profile) ([]ai.InsightDraft, error) {
	return f.drafts, f.insightsErr
}
func (f *fakeAdvisor) GoalRecommendations(context.Context, goal.Goal) ([]string, error) {
	return f.recs, f.recsErr
}

type recordingProfileRepo struct {
	fakeProfileRepo
	inserted []profile.Profile
}

func (r *recordingProfileRepo) Insert(_ context.Context, p profile.Profile) error {
	r.inserted = append(r.inserted, p)
	return nil
}

func TestProfileCreate_RejectsUnknownRole(t *testing.T) {
	uc := NewProfileUsecase(&recordingProfileRepo{}, nil, nil)

	_, err := uc.Create(context.Background(), CreateProfileInput{Name: "A", Email: "a@b.c", Role: "observer"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfileCreate_AttachesAnalysis(t *testing.T) {
	repo := &recordingProfileRepo{}
	advisor := &fakeAdvisor{analysis: ai.Analysis{
		CommunicationStyle:  "analytical",
		SkillStrengths:      []string{"systems design"},
		GrowthAreas:         []string{"public speaking"},
		CareerStage:         "senior",
		MentorshipReadiness: 9,
		PersonalityTraits:   []string{"curious"},
	}}
	uc := NewProfileUsecase(repo, advisor, nil)

	p, err := uc.Create(context.Background(), CreateProfileInput{
		Name: "Dana", Email: "dana@example.com", Role: profile.RoleMentor,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if p.CommunicationStyle != "analytical" {
		t.Fatalf("expected communication style from analysis, got %q", p.CommunicationStyle)
	}
	if p.AIAnalysis["mentorship_readiness"] != 9.0 {
		t.Fatalf("expected readiness 9 in analysis document, got %v", p.AIAnalysis["mentorship_readiness"])
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}
	if repo.inserted[0].ID == uuid.Nil {
		t.Fatalf("expected assigned id")
	}
}

func TestProfileCreate_AdvisorFailureUsesNeutralAnalysis(t *testing.T) {
	repo := &recordingProfileRepo{}
	advisor := &fakeAdvisor{analysisErr: errors.New("upstream timeout")}
	uc := NewProfileUsecase(repo, advisor, nil)

	p, err := uc.Create(context.Background(), CreateProfileInput{
		Name: "Dana", Email: "dana@example.com", Role: profile.RoleMentee,
	})
	if err != nil {
		t.Fatalf("advisor failure must not block creation: %v", err)
	}

	if p.CommunicationStyle != "collaborative" {
		t.Fatalf("expected neutral style, got %q", p.CommunicationStyle)
	}
	if p.AIAnalysis["mentorship_readiness"] != 5.0 {
		t.Fatalf("expected neutral readiness, got %v", p.AIAnalysis["mentorship_readiness"])
	}
	if p.AIAnalysis["career_stage"] != "unknown" {
		t.Fatalf("expected unknown career stage, got %v", p.AIAnalysis["career_stage"])
	}
}

func TestProfileCreate_NilAdvisorUsesNeutralAnalysis(t *testing.T) {
	repo := &recordingProfileRepo{}
	uc := NewProfileUsecase(repo, nil, nil)

	p, err := uc.Create(context.Background(), CreateProfileInput{
		Name: "Dana", Email: "dana@example.com", Role: profile.RoleMentee,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.CommunicationStyle != "collaborative" {
		t.Fatalf("expected neutral style, got %q", p.CommunicationStyle)
	}
}

func TestProfileGet_NotFound(t *testing.T) {
	uc := NewProfileUsecase(&recordingProfileRepo{}, nil, nil)

	_, err := uc.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
