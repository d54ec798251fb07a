package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentormatch/internal/domain/match"
	"mentormatch/internal/domain/profile"
	"mentormatch/internal/domain/session"

	"github.com/google/uuid"
)

type fakeSessionRepo struct {
	count    int
	countErr error
	inserted []session.Session
	byUser   []session.Session
}

func (f *fakeSessionRepo) Insert(_ context.Context, s session.Session) error {
	f.inserted = append(f.inserted, s)
	return nil
}
func (f *fakeSessionRepo) CountByMatchID(context.Context, uuid.UUID) (int, error) {
	return f.count, f.countErr
}
func (f *fakeSessionRepo) FindByParticipant(context.Context, uuid.UUID) ([]session.Session, error) {
	return f.byUser, nil
}

func sessionFixtures() (*fakeMatchRepo, fakeProfileRepo, match.Match) {
	m := match.Match{
		ID:       uuid.New(),
		MentorID: uuid.New(),
		MenteeID: uuid.New(),
		Status:   match.StatusPending,
	}
	matches := &fakeMatchRepo{byID: map[uuid.UUID]match.Match{m.ID: m}}
	profiles := fakeProfileRepo{byID: map[uuid.UUID]profile.Profile{
		m.MentorID: {ID: m.MentorID, Name: "Mentor", Role: profile.RoleMentor},
		m.MenteeID: {ID: m.MenteeID, Name: "Mentee", Role: profile.RoleMentee},
	}}
	return matches, profiles, m
}

func TestSessionCreate_MatchNotFound(t *testing.T) {
	uc := NewSessionUsecase(&fakeSessionRepo{}, &fakeMatchRepo{}, fakeProfileRepo{}, nil, nil)

	_, err := uc.Create(context.Background(), CreateSessionInput{MatchID: uuid.New()})
	if !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestSessionCreate_NumbersSessionsFromPriorCount(t *testing.T) {
	matches, profiles, m := sessionFixtures()
	sessions := &fakeSessionRepo{count: 2}
	advisor := &fakeAdvisor{agenda: []string{"Review architecture homework"}}
	uc := NewSessionUsecase(sessions, matches, profiles, advisor, nil)

	s, err := uc.Create(context.Background(), CreateSessionInput{
		MatchID:       m.ID,
		ScheduledTime: time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if advisor.lastSessionNumber != 3 {
		t.Fatalf("expected session number 3, got %d", advisor.lastSessionNumber)
	}
	if s.MentorID != m.MentorID || s.MenteeID != m.MenteeID {
		t.Fatalf("participants not taken from match")
	}
	if s.Status != session.StatusScheduled {
		t.Fatalf("expected scheduled status, got %q", s.Status)
	}
	if s.DurationMinutes != session.DefaultDurationMinutes {
		t.Fatalf("expected default duration, got %d", s.DurationMinutes)
	}
	if len(s.Agenda) != 1 || s.Agenda[0] != "Review architecture homework" {
		t.Fatalf("agenda not taken from advisor: %v", s.Agenda)
	}
	if len(sessions.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(sessions.inserted))
	}
}

func TestSessionCreate_AdvisorFailureUsesMinimalAgenda(t *testing.T) {
	matches, profiles, m := sessionFixtures()
	advisor := &fakeAdvisor{agendaErr: errors.New("upstream timeout")}
	uc := NewSessionUsecase(&fakeSessionRepo{}, matches, profiles, advisor, nil)

	s, err := uc.Create(context.Background(), CreateSessionInput{MatchID: m.ID})
	if err != nil {
		t.Fatalf("advisor failure must not block booking: %v", err)
	}

	want := []string{"Goal review", "Skill discussion", "Action planning"}
	if len(s.Agenda) != len(want) {
		t.Fatalf("expected minimal agenda, got %v", s.Agenda)
	}
	for i := range want {
		if s.Agenda[i] != want[i] {
			t.Fatalf("expected minimal agenda, got %v", s.Agenda)
		}
	}
}

func TestSessionCreate_ExplicitDurationKept(t *testing.T) {
	matches, profiles, m := sessionFixtures()
	uc := NewSessionUsecase(&fakeSessionRepo{}, matches, profiles, nil, nil)

	s, err := uc.Create(context.Background(), CreateSessionInput{MatchID: m.ID, DurationMinutes: 30})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.DurationMinutes != 30 {
		t.Fatalf("expected 30 minutes, got %d", s.DurationMinutes)
	}
}
