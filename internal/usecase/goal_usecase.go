package usecase

import (
	"context"
	"time"

	"mentormatch/internal/ai"
	"mentormatch/internal/domain/goal"
	"mentormatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateGoalInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	Category    string
	TargetDate  time.Time
	Milestones  []map[string]any
}

type GoalUsecase interface {
	Create(ctx context.Context, in CreateGoalInput) (goal.Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]goal.Goal, error)
}

type Goals struct {
	goals   repository.GoalRepository
	advisor ai.Advisor
	logger  *zap.Logger
}

func NewGoalUsecase(goals repository.GoalRepository, advisor ai.Advisor, logger *zap.Logger) *Goals {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Goals{goals: goals, advisor: advisor, logger: logger}
}

// Create stores a new goal with advisor recommendations attached. The advisor
// is best-effort; when it is down the goal carries generic recommendations.
func (u *Goals) Create(ctx context.Context, in CreateGoalInput) (goal.Goal, error) {
	if in.Title == "" || in.UserID == uuid.Nil {
		return goal.Goal{}, ErrInvalidInput
	}

	g := goal.Goal{
		ID:          uuid.New(),
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		TargetDate:  in.TargetDate,
		Milestones:  in.Milestones,
		Progress:    0,
		Status:      goal.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	if g.Milestones == nil {
		g.Milestones = []map[string]any{}
	}

	g.AIRecommendations = u.recommend(ctx, g)

	if err := u.goals.Insert(ctx, g); err != nil {
		u.logger.Error("insert goal failed", zap.String("goal_id", g.ID.String()), zap.Error(err))
		return goal.Goal{}, ErrInternal
	}
	return g, nil
}

func (u *Goals) recommend(ctx context.Context, g goal.Goal) []string {
	generic := []string{"Set specific milestones", "Find relevant resources", "Track progress weekly"}
	if u.advisor == nil {
		return generic
	}

	recs, err := u.advisor.GoalRecommendations(ctx, g)
	if err != nil {
		u.logger.Warn("goal recommendations unavailable, using generic set",
			zap.String("goal_id", g.ID.String()), zap.Error(err))
		return generic
	}
	return recs
}

func (u *Goals) ListByUser(ctx context.Context, userID uuid.UUID) ([]goal.Goal, error) {
	out, err := u.goals.FindByUserID(ctx, userID)
	if err != nil {
		u.logger.Error("list goals failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}
