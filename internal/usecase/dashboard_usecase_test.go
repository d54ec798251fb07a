package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentormatch/internal/domain/goal"
	"mentormatch/internal/domain/match"
	"mentormatch/internal/domain/profile"
	"mentormatch/internal/domain/session"

	"github.com/google/uuid"
)

type fakeGoalRepo struct {
	byUser   []goal.Goal
	inserted []goal.Goal
}

func (f *fakeGoalRepo) Insert(_ context.Context, g goal.Goal) error {
	f.inserted = append(f.inserted, g)
	return nil
}
func (f *fakeGoalRepo) FindByUserID(context.Context, uuid.UUID) ([]goal.Goal, error) {
	return f.byUser, nil
}

func TestDashboardGet_ProfileNotFound(t *testing.T) {
	uc := NewDashboardUsecase(fakeProfileRepo{}, &fakeGoalRepo{}, &fakeMatchRepo{}, &fakeSessionRepo{}, &fakeInsightRepo{}, nil)

	_, err := uc.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestDashboardGet_AggregatesStats(t *testing.T) {
	userID := uuid.New()
	profiles := fakeProfileRepo{byID: map[uuid.UUID]profile.Profile{
		userID: {ID: userID, Name: "Dana", Role: profile.RoleMentee},
	}}

	goals := &fakeGoalRepo{byUser: []goal.Goal{
		{ID: uuid.New(), Status: goal.StatusActive, Progress: 40},
		{ID: uuid.New(), Status: goal.StatusCompleted, Progress: 100},
		{ID: uuid.New(), Status: goal.StatusActive, Progress: 25},
	}}
	matches := &fakeMatchRepo{byMentee: []match.Match{
		{ID: uuid.New(), MenteeID: userID},
		{ID: uuid.New(), MenteeID: userID},
	}}

	future := time.Now().Add(72 * time.Hour)
	past := time.Now().Add(-72 * time.Hour)
	sessions := &fakeSessionRepo{byUser: []session.Session{
		{ID: uuid.New(), ScheduledTime: future, Status: session.StatusScheduled},
		{ID: uuid.New(), ScheduledTime: past, Status: session.StatusCompleted},
		{ID: uuid.New(), ScheduledTime: past, Status: session.StatusCancelled},
	}}

	uc := NewDashboardUsecase(profiles, goals, matches, sessions, &fakeInsightRepo{}, nil)

	d, err := uc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if d.Stats.ActiveGoals != 2 || d.Stats.CompletedGoals != 1 {
		t.Fatalf("goal stats wrong: %+v", d.Stats)
	}
	// (40+100+25)/3 = 55.0 rounded to one decimal.
	if d.Stats.AvgProgress != 55.0 {
		t.Fatalf("expected avg progress 55.0, got %v", d.Stats.AvgProgress)
	}
	if d.Stats.TotalMatches != 2 {
		t.Fatalf("expected 2 matches, got %d", d.Stats.TotalMatches)
	}
	if d.Stats.UpcomingSessions != 1 || d.Stats.CompletedSessions != 1 {
		t.Fatalf("session stats wrong: %+v", d.Stats)
	}
	if len(d.UpcomingSessions) != 1 {
		t.Fatalf("expected 1 upcoming session, got %d", len(d.UpcomingSessions))
	}
	if d.Profile.ID != userID {
		t.Fatalf("profile not included")
	}
}

func TestDashboardGet_EmptyActivity(t *testing.T) {
	userID := uuid.New()
	profiles := fakeProfileRepo{byID: map[uuid.UUID]profile.Profile{
		userID: {ID: userID, Role: profile.RoleMentor},
	}}
	uc := NewDashboardUsecase(profiles, &fakeGoalRepo{}, &fakeMatchRepo{}, &fakeSessionRepo{}, &fakeInsightRepo{}, nil)

	d, err := uc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.Stats.AvgProgress != 0 {
		t.Fatalf("expected zero avg progress with no goals, got %v", d.Stats.AvgProgress)
	}
	if d.RecentGoals == nil || d.RecentMatches == nil || d.UpcomingSessions == nil {
		t.Fatalf("recent lists must be empty, not nil")
	}
}

func TestDashboardGet_RecentListsAreCapped(t *testing.T) {
	userID := uuid.New()
	profiles := fakeProfileRepo{byID: map[uuid.UUID]profile.Profile{
		userID: {ID: userID, Role: profile.RoleMentee},
	}}

	manyGoals := make([]goal.Goal, 8)
	for i := range manyGoals {
		manyGoals[i] = goal.Goal{ID: uuid.New(), Status: goal.StatusActive}
	}
	uc := NewDashboardUsecase(profiles, &fakeGoalRepo{byUser: manyGoals}, &fakeMatchRepo{}, &fakeSessionRepo{}, &fakeInsightRepo{}, nil)

	d, err := uc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(d.RecentGoals) != 5 {
		t.Fatalf("expected 5 recent goals, got %d", len(d.RecentGoals))
	}
	if d.Stats.ActiveGoals != 8 {
		t.Fatalf("stats must count all goals, got %d", d.Stats.ActiveGoals)
	}
}
