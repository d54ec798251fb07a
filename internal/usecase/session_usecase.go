package usecase

import (
	"context"
	"errors"
	"time"

	"mentormatch/internal/ai"
	"mentormatch/internal/domain/match"
	"mentormatch/internal/domain/profile"
	"mentormatch/internal/domain/session"
	"mentormatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateSessionInput struct {
	MatchID         uuid.UUID
	ScheduledTime   time.Time
	DurationMinutes int
	Notes           string
}

type SessionUsecase interface {
	Create(ctx context.Context, in CreateSessionInput) (session.Session, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]session.Session, error)
}

type Sessions struct {
	sessions repository.SessionRepository
	matches  repository.MatchRepository
	profiles repository.ProfileRepository
	advisor  ai.Advisor
	logger   *zap.Logger
}

func NewSessionUsecase(
	sessions repository.SessionRepository,
	matches repository.MatchRepository,
	profiles repository.ProfileRepository,
	advisor ai.Advisor,
	logger *zap.Logger,
) *Sessions {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sessions{sessions: sessions, matches: matches, profiles: profiles, advisor: advisor, logger: logger}
}

// Create schedules a session against an existing match. The agenda is
// generated from both participant profiles and the session ordinal; advisor
// failure leaves a minimal agenda rather than blocking the booking.
func (u *Sessions) Create(ctx context.Context, in CreateSessionInput) (session.Session, error) {
	m, err := u.matches.GetByID(ctx, in.MatchID)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return session.Session{}, ErrMatchNotFound
		}
		u.logger.Error("load match failed", zap.String("match_id", in.MatchID.String()), zap.Error(err))
		return session.Session{}, ErrInternal
	}

	mentor, err := u.profiles.GetByID(ctx, m.MentorID)
	if err != nil {
		u.logger.Error("load mentor failed", zap.String("mentor_id", m.MentorID.String()), zap.Error(err))
		return session.Session{}, ErrInternal
	}
	mentee, err := u.profiles.GetByID(ctx, m.MenteeID)
	if err != nil {
		u.logger.Error("load mentee failed", zap.String("mentee_id", m.MenteeID.String()), zap.Error(err))
		return session.Session{}, ErrInternal
	}

	prior, err := u.sessions.CountByMatchID(ctx, in.MatchID)
	if err != nil {
		u.logger.Error("count sessions failed", zap.String("match_id", in.MatchID.String()), zap.Error(err))
		return session.Session{}, ErrInternal
	}

	duration := in.DurationMinutes
	if duration <= 0 {
		duration = session.DefaultDurationMinutes
	}

	s := session.Session{
		ID:              uuid.New(),
		MatchID:         m.ID,
		MentorID:        m.MentorID,
		MenteeID:        m.MenteeID,
		ScheduledTime:   in.ScheduledTime,
		DurationMinutes: duration,
		Agenda:          u.agenda(ctx, mentor, mentee, prior+1),
		Notes:           in.Notes,
		ActionItems:     []string{},
		Status:          session.StatusScheduled,
		CreatedAt:       time.Now().UTC(),
	}

	if err := u.sessions.Insert(ctx, s); err != nil {
		u.logger.Error("insert session failed", zap.String("session_id", s.ID.String()), zap.Error(err))
		return session.Session{}, ErrInternal
	}
	return s, nil
}

func (u *Sessions) agenda(ctx context.Context, mentor, mentee profile.Profile, sessionNumber int) []string {
	minimal := []string{"Goal review", "Skill discussion", "Action planning"}
	if u.advisor == nil {
		return minimal
	}

	agenda, err := u.advisor.SessionAgenda(ctx, mentor, mentee, sessionNumber)
	if err != nil {
		u.logger.Warn("session agenda unavailable, using minimal agenda",
			zap.Int("session_number", sessionNumber), zap.Error(err))
		return minimal
	}
	return agenda
}

func (u *Sessions) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]session.Session, error) {
	out, err := u.sessions.FindByParticipant(ctx, userID)
	if err != nil {
		u.logger.Error("list sessions failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}
