package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentormatch/internal/ai"
	"mentormatch/internal/domain/insight"
	"mentormatch/internal/domain/profile"

	"github.com/google/uuid"
)

type fakeInsightRepo struct {
	recent   []insight.Insight
	latest   []insight.Insight
	inserted []insight.Insight
}

func (f *fakeInsightRepo) Insert(_ context.Context, in insight.Insight) error {
	f.inserted = append(f.inserted, in)
	return nil
}
func (f *fakeInsightRepo) FindRecentByUserID(context.Context, uuid.UUID, time.Time) ([]insight.Insight, error) {
	return f.recent, nil
}
func (f *fakeInsightRepo) FindLatestByUserID(context.Context, uuid.UUID, int) ([]insight.Insight, error) {
	return f.latest, nil
}

func insightUserFixture() (fakeProfileRepo, uuid.UUID) {
	userID := uuid.New()
	profiles := fakeProfileRepo{byID: map[uuid.UUID]profile.Profile{
		userID: {ID: userID, Name: "Dana", Role: profile.RoleMentee},
	}}
	return profiles, userID
}

func TestInsightsGetForUser_ProfileNotFound(t *testing.T) {
	uc := NewInsightUsecase(&fakeInsightRepo{}, fakeProfileRepo{}, nil, nil, nil)

	_, err := uc.GetForUser(context.Background(), uuid.New())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestInsightsGetForUser_ReusesFreshInsights(t *testing.T) {
	profiles, userID := insightUserFixture()
	fresh := []insight.Insight{{
		ID:          uuid.New(),
		UserID:      userID,
		InsightType: insight.TypeCareerPath,
		Title:       "Broaden platform experience",
		CreatedAt:   time.Now().Add(-24 * time.Hour),
	}}
	repo := &fakeInsightRepo{recent: fresh}
	advisor := &fakeAdvisor{drafts: []ai.InsightDraft{{Title: "should not be used"}}}
	uc := NewInsightUsecase(repo, profiles, advisor, nil, nil)

	got, err := uc.GetForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != fresh[0].ID {
		t.Fatalf("expected fresh insights to be reused, got %+v", got)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("fresh insights must not trigger generation, inserted %d", len(repo.inserted))
	}
}

func TestInsightsGetForUser_GeneratesAndPersists(t *testing.T) {
	profiles, userID := insightUserFixture()
	repo := &fakeInsightRepo{}
	advisor := &fakeAdvisor{drafts: []ai.InsightDraft{
		{
			InsightType:     insight.TypeSkillGap,
			Title:           "Emerging Technology Skills",
			Description:     "Invest in platform tooling",
			Recommendations: []string{"Take online courses"},
			ConfidenceScore: 0.8,
		},
		{
			InsightType:     insight.TypeNetworking,
			Title:           "Expand your circle",
			ConfidenceScore: 0.6,
		},
	}}
	uc := NewInsightUsecase(repo, profiles, advisor, nil, nil)

	got, err := uc.GetForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(got))
	}
	if len(repo.inserted) != 2 {
		t.Fatalf("expected 2 persisted insights, got %d", len(repo.inserted))
	}
	for _, in := range got {
		if in.ID == uuid.Nil || in.UserID != userID {
			t.Fatalf("insight not assigned id/owner: %+v", in)
		}
	}
	if got[0].InsightType != insight.TypeSkillGap || got[0].ConfidenceScore != 0.8 {
		t.Fatalf("draft fields not carried over: %+v", got[0])
	}
}

func TestInsightsGetForUser_AdvisorFailureYieldsEmpty(t *testing.T) {
	profiles, userID := insightUserFixture()
	repo := &fakeInsightRepo{}
	advisor := &fakeAdvisor{insightsErr: errors.New("upstream timeout")}
	uc := NewInsightUsecase(repo, profiles, advisor, nil, nil)

	got, err := uc.GetForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("advisor failure must not error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty insights, got %d", len(got))
	}
}

func TestInsightsGetForUser_NilAdvisorYieldsEmpty(t *testing.T) {
	profiles, userID := insightUserFixture()
	uc := NewInsightUsecase(&fakeInsightRepo{}, profiles, nil, nil, nil)

	got, err := uc.GetForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty insights, got %d", len(got))
	}
}
