package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentormatch/internal/domain/goal"

	"github.com/google/uuid"
)

func TestGoalCreate_RequiresTitleAndUser(t *testing.T) {
	uc := NewGoalUsecase(&fakeGoalRepo{}, nil, nil)

	if _, err := uc.Create(context.Background(), CreateGoalInput{UserID: uuid.New()}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty title, got %v", err)
	}
	if _, err := uc.Create(context.Background(), CreateGoalInput{Title: "Ship v2"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing user, got %v", err)
	}
}

func TestGoalCreate_AttachesRecommendations(t *testing.T) {
	repo := &fakeGoalRepo{}
	advisor := &fakeAdvisor{recs: []string{"Pair with a platform engineer monthly"}}
	uc := NewGoalUsecase(repo, advisor, nil)

	g, err := uc.Create(context.Background(), CreateGoalInput{
		UserID:     uuid.New(),
		Title:      "Become tech lead",
		Category:   "leadership",
		TargetDate: time.Now().AddDate(0, 6, 0),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if g.Status != goal.StatusActive {
		t.Fatalf("expected active status, got %q", g.Status)
	}
	if g.Progress != 0 {
		t.Fatalf("expected zero progress, got %v", g.Progress)
	}
	if len(g.AIRecommendations) != 1 || g.AIRecommendations[0] != "Pair with a platform engineer monthly" {
		t.Fatalf("recommendations not taken from advisor: %v", g.AIRecommendations)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}
}

func TestGoalCreate_AdvisorFailureUsesGenericRecommendations(t *testing.T) {
	advisor := &fakeAdvisor{recsErr: errors.New("upstream timeout")}
	uc := NewGoalUsecase(&fakeGoalRepo{}, advisor, nil)

	g, err := uc.Create(context.Background(), CreateGoalInput{UserID: uuid.New(), Title: "Ship v2"})
	if err != nil {
		t.Fatalf("advisor failure must not block creation: %v", err)
	}

	want := []string{"Set specific milestones", "Find relevant resources", "Track progress weekly"}
	if len(g.AIRecommendations) != len(want) {
		t.Fatalf("expected generic recommendations, got %v", g.AIRecommendations)
	}
	for i := range want {
		if g.AIRecommendations[i] != want[i] {
			t.Fatalf("expected generic recommendations, got %v", g.AIRecommendations)
		}
	}
}
