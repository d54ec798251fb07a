package usecase

import (
	"context"
	"errors"
	"time"

	"mentormatch/internal/ai"
	"mentormatch/internal/domain/profile"
	"mentormatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateProfileInput carries the client-supplied profile fields. The id,
// timestamps and AI analysis are assigned here.
type CreateProfileInput struct {
	Name            string
	Email           string
	Role            string
	CurrentPosition string
	Industry        string
	ExperienceYears int
	Skills          []string
	Goals           []string
	Bio             string
	Interests       []string
}

type ProfileUsecase interface {
	Create(ctx context.Context, in CreateProfileInput) (profile.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (profile.Profile, error)
	List(ctx context.Context) ([]profile.Profile, error)
}

type Profile struct {
	profiles repository.ProfileRepository
	advisor  ai.Advisor
	logger   *zap.Logger
}

func NewProfileUsecase(profiles repository.ProfileRepository, advisor ai.Advisor, logger *zap.Logger) *Profile {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Profile{profiles: profiles, advisor: advisor, logger: logger}
}

// Create stores a new profile enriched with the advisor's analysis. Advisor
// failure never blocks creation: the profile gets a neutral analysis instead.
func (u *Profile) Create(ctx context.Context, in CreateProfileInput) (profile.Profile, error) {
	if !profile.ValidRole(in.Role) {
		return profile.Profile{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	p := profile.Profile{
		ID:              uuid.New(),
		Name:            in.Name,
		Email:           in.Email,
		Role:            in.Role,
		CurrentPosition: in.CurrentPosition,
		Industry:        in.Industry,
		ExperienceYears: in.ExperienceYears,
		Skills:          emptyIfNil(in.Skills),
		Goals:           emptyIfNil(in.Goals),
		Bio:             in.Bio,
		Interests:       emptyIfNil(in.Interests),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	analysis := u.analyze(ctx, p)
	p.AIAnalysis = analysis.Document()
	p.CommunicationStyle = analysis.CommunicationStyle

	if err := u.profiles.Insert(ctx, p); err != nil {
		u.logger.Error("insert profile failed", zap.String("profile_id", p.ID.String()), zap.Error(err))
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profile) analyze(ctx context.Context, p profile.Profile) ai.Analysis {
	neutral := ai.Analysis{
		CommunicationStyle:  "collaborative",
		SkillStrengths:      []string{},
		GrowthAreas:         []string{},
		CareerStage:         "unknown",
		MentorshipReadiness: 5,
		PersonalityTraits:   []string{},
	}
	if u.advisor == nil {
		return neutral
	}

	analysis, err := u.advisor.AnalyzeProfile(ctx, p)
	if err != nil {
		u.logger.Warn("profile analysis unavailable, using neutral analysis",
			zap.String("profile_id", p.ID.String()), zap.Error(err))
		return neutral
	}
	return analysis
}

func (u *Profile) Get(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	p, err := u.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, ErrProfileNotFound
		}
		u.logger.Error("get profile failed", zap.String("profile_id", id.String()), zap.Error(err))
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profile) List(ctx context.Context) ([]profile.Profile, error) {
	out, err := u.profiles.List(ctx)
	if err != nil {
		u.logger.Error("list profiles failed", zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
