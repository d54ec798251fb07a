package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentormatch/internal/ai"
	"mentormatch/internal/domain/insight"
	"mentormatch/internal/domain/profile"
	"mentormatch/internal/infrastructure/cache"
	"mentormatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InsightUsecase interface {
	GetForUser(ctx context.Context, userID uuid.UUID) ([]insight.Insight, error)
}

type Insights struct {
	insights repository.InsightRepository
	profiles repository.ProfileRepository
	advisor  ai.Advisor
	redis    *cache.Redis
	logger   *zap.Logger
}

func NewInsightUsecase(
	insights repository.InsightRepository,
	profiles repository.ProfileRepository,
	advisor ai.Advisor,
	redis *cache.Redis,
	logger *zap.Logger,
) *Insights {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Insights{insights: insights, profiles: profiles, advisor: advisor, redis: redis, logger: logger}
}

func insightsCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("insights:%s", userID)
}

// GetForUser returns the user's career insights, newest batch first. Insights
// younger than the freshness window are reused (cache, then store); otherwise
// a new batch is generated and persisted. An unavailable advisor yields an
// empty list, not an error.
func (u *Insights) GetForUser(ctx context.Context, userID uuid.UUID) ([]insight.Insight, error) {
	p, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		u.logger.Error("load profile failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, ErrInternal
	}

	var cached []insight.Insight
	if u.redis != nil {
		hit, err := u.redis.GetJSON(ctx, insightsCacheKey(userID), &cached)
		if err != nil {
			u.logger.Warn("insight cache read failed", zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	since := time.Now().UTC().Add(-insight.FreshnessWindow)
	recent, err := u.insights.FindRecentByUserID(ctx, userID, since)
	if err != nil {
		u.logger.Error("load insights failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	if len(recent) > 0 {
		u.cache(ctx, userID, recent)
		return recent, nil
	}

	generated := u.generate(ctx, p)

	now := time.Now().UTC()
	out := make([]insight.Insight, 0, len(generated))
	for _, draft := range generated {
		in := insight.Insight{
			ID:              uuid.New(),
			UserID:          userID,
			InsightType:     draft.InsightType,
			Title:           draft.Title,
			Description:     draft.Description,
			Recommendations: draft.Recommendations,
			ConfidenceScore: draft.ConfidenceScore,
			CreatedAt:       now,
		}
		if err := u.insights.Insert(ctx, in); err != nil {
			u.logger.Error("insert insight failed", zap.String("insight_id", in.ID.String()), zap.Error(err))
			return nil, ErrInternal
		}
		out = append(out, in)
	}

	u.cache(ctx, userID, out)
	return out, nil
}

func (u *Insights) generate(ctx context.Context, p profile.Profile) []ai.InsightDraft {
	if u.advisor == nil {
		return nil
	}
	drafts, err := u.advisor.CareerInsights(ctx, p)
	if err != nil {
		u.logger.Warn("career insights unavailable", zap.String("user_id", p.ID.String()), zap.Error(err))
		return nil
	}
	return drafts
}

func (u *Insights) cache(ctx context.Context, userID uuid.UUID, insights []insight.Insight) {
	if u.redis == nil || len(insights) == 0 {
		return
	}
	if err := u.redis.SetJSON(ctx, insightsCacheKey(userID), insights, insight.FreshnessWindow); err != nil {
		u.logger.Warn("insight cache write failed", zap.Error(err))
	}
}
