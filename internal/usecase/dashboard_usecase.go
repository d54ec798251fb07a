package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"mentormatch/internal/domain/goal"
	"mentormatch/internal/domain/insight"
	"mentormatch/internal/domain/match"
	"mentormatch/internal/domain/profile"
	"mentormatch/internal/domain/session"
	"mentormatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	recentGoalsLimit    = 5
	recentMatchesLimit  = 5
	upcomingLimit       = 3
	recentInsightsLimit = 5
)

// DashboardStats is the aggregate counters block of a dashboard view.
type DashboardStats struct {
	ActiveGoals       int     `json:"active_goals"`
	CompletedGoals    int     `json:"completed_goals"`
	AvgProgress       float64 `json:"avg_progress"`
	TotalMatches      int     `json:"total_matches"`
	UpcomingSessions  int     `json:"upcoming_sessions"`
	CompletedSessions int     `json:"completed_sessions"`
}

type Dashboard struct {
	Profile          profile.Profile   `json:"profile"`
	Stats            DashboardStats    `json:"stats"`
	RecentGoals      []goal.Goal       `json:"recent_goals"`
	RecentMatches    []match.Match     `json:"recent_matches"`
	UpcomingSessions []session.Session `json:"upcoming_sessions"`
	RecentInsights   []insight.Insight `json:"recent_insights"`
}

type DashboardUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (Dashboard, error)
}

type DashboardAggregator struct {
	profiles repository.ProfileRepository
	goals    repository.GoalRepository
	matches  repository.MatchRepository
	sessions repository.SessionRepository
	insights repository.InsightRepository
	logger   *zap.Logger
}

func NewDashboardUsecase(
	profiles repository.ProfileRepository,
	goals repository.GoalRepository,
	matches repository.MatchRepository,
	sessions repository.SessionRepository,
	insights repository.InsightRepository,
	logger *zap.Logger,
) *DashboardAggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardAggregator{
		profiles: profiles,
		goals:    goals,
		matches:  matches,
		sessions: sessions,
		insights: insights,
		logger:   logger,
	}
}

// Get aggregates everything the dashboard shows for one user: their profile,
// goal and session counters, and the most recent activity in each area.
// Matches are looked up on the side of the relationship the user occupies.
func (u *DashboardAggregator) Get(ctx context.Context, userID uuid.UUID) (Dashboard, error) {
	p, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return Dashboard{}, ErrProfileNotFound
		}
		u.logger.Error("load profile failed", zap.String("user_id", userID.String()), zap.Error(err))
		return Dashboard{}, ErrInternal
	}

	goals, err := u.goals.FindByUserID(ctx, userID)
	if err != nil {
		u.logger.Error("load goals failed", zap.String("user_id", userID.String()), zap.Error(err))
		return Dashboard{}, ErrInternal
	}

	var matches []match.Match
	if p.Role == profile.RoleMentee {
		matches, err = u.matches.FindByMenteeID(ctx, userID)
	} else {
		matches, err = u.matches.FindByMentorID(ctx, userID)
	}
	if err != nil {
		u.logger.Error("load matches failed", zap.String("user_id", userID.String()), zap.Error(err))
		return Dashboard{}, ErrInternal
	}

	sessions, err := u.sessions.FindByParticipant(ctx, userID)
	if err != nil {
		u.logger.Error("load sessions failed", zap.String("user_id", userID.String()), zap.Error(err))
		return Dashboard{}, ErrInternal
	}

	insights, err := u.insights.FindLatestByUserID(ctx, userID, recentInsightsLimit)
	if err != nil {
		u.logger.Error("load insights failed", zap.String("user_id", userID.String()), zap.Error(err))
		return Dashboard{}, ErrInternal
	}

	now := time.Now().UTC()
	upcoming := make([]session.Session, 0)
	completedSessions := 0
	for _, s := range sessions {
		switch {
		case s.Status == session.StatusScheduled && s.ScheduledTime.After(now):
			upcoming = append(upcoming, s)
		case s.Status == session.StatusCompleted:
			completedSessions++
		}
	}

	activeGoals, completedGoals := 0, 0
	var progressSum float64
	for _, g := range goals {
		switch g.Status {
		case goal.StatusCompleted:
			completedGoals++
		case goal.StatusActive, "":
			activeGoals++
		}
		progressSum += g.Progress
	}
	avgProgress := 0.0
	if len(goals) > 0 {
		avgProgress = math.Round(progressSum/float64(len(goals))*10) / 10
	}

	return Dashboard{
		Profile: p,
		Stats: DashboardStats{
			ActiveGoals:       activeGoals,
			CompletedGoals:    completedGoals,
			AvgProgress:       avgProgress,
			TotalMatches:      len(matches),
			UpcomingSessions:  len(upcoming),
			CompletedSessions: completedSessions,
		},
		RecentGoals:      head(goals, recentGoalsLimit),
		RecentMatches:    head(matches, recentMatchesLimit),
		UpcomingSessions: head(upcoming, upcomingLimit),
		RecentInsights:   insights,
	}, nil
}

func head[T any](items []T, n int) []T {
	if items == nil {
		return []T{}
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
