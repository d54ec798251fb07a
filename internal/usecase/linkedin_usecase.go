package usecase

import (
	"context"
	"errors"
	"math/rand"

	"mentormatch/internal/domain/profile"
	"mentormatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportedProfile is the normalized result of a LinkedIn import: profile
// fields ready to be submitted to profile creation.
type ImportedProfile struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	CurrentPosition string   `json:"current_position"`
	Industry        string   `json:"industry"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills"`
	Goals           []string `json:"goals"`
	Bio             string   `json:"bio"`
	Interests       []string `json:"interests"`
}

type MentorshipOpportunity struct {
	Name              string `json:"name"`
	Position          string `json:"position"`
	Company           string `json:"company"`
	MutualConnections int    `json:"mutual_connections"`
	MatchPotential    string `json:"match_potential"`
}

type NetworkingEvent struct {
	Name                string `json:"name"`
	Date                string `json:"date"`
	Location            string `json:"location"`
	RelevantConnections int    `json:"relevant_connections"`
}

type NetworkAnalysis struct {
	TotalConnections        int                     `json:"total_connections"`
	IndustryBreakdown       map[string]int          `json:"industry_breakdown"`
	PotentialMentors        int                     `json:"potential_mentors"`
	MentorshipOpportunities []MentorshipOpportunity `json:"mentorship_opportunities"`
	NetworkingEvents        []NetworkingEvent       `json:"networking_events"`
}

type LinkedInUsecase interface {
	ImportProfile(raw map[string]any) ImportedProfile
	AnalyzeNetwork(ctx context.Context, userID uuid.UUID) (NetworkAnalysis, error)
}

// LinkedIn simulates the LinkedIn integration. There is no real API call:
// imports normalize whatever the client sends and fill the gaps with demo
// defaults, and the network analysis is synthesized.
type LinkedIn struct {
	profiles repository.ProfileRepository
	logger   *zap.Logger
}

func NewLinkedInUsecase(profiles repository.ProfileRepository, logger *zap.Logger) *LinkedIn {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LinkedIn{profiles: profiles, logger: logger}
}

func (u *LinkedIn) ImportProfile(raw map[string]any) ImportedProfile {
	return ImportedProfile{
		Name:            stringOr(raw, "name", "LinkedIn User"),
		Email:           stringOr(raw, "email", "user@linkedin.com"),
		Role:            profile.RoleMentee,
		CurrentPosition: stringOr(raw, "headline", "Professional"),
		Industry:        stringOr(raw, "industry", "Technology"),
		ExperienceYears: 5,
		Skills:          stringsOr(raw, "skills", []string{"Leadership", "Strategy", "Communication"}),
		Goals:           []string{"Career advancement", "Skill development", "Network expansion"},
		Bio:             stringOr(raw, "summary", "Passionate professional seeking growth opportunities"),
		Interests:       []string{"Professional development", "Innovation", "Networking"},
	}
}

func (u *LinkedIn) AnalyzeNetwork(ctx context.Context, userID uuid.UUID) (NetworkAnalysis, error) {
	if _, err := u.profiles.GetByID(ctx, userID); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return NetworkAnalysis{}, ErrProfileNotFound
		}
		u.logger.Error("load profile failed", zap.String("user_id", userID.String()), zap.Error(err))
		return NetworkAnalysis{}, ErrInternal
	}

	return NetworkAnalysis{
		TotalConnections: 500 + rand.Intn(1501),
		IndustryBreakdown: map[string]int{
			"Technology": 35,
			"Finance":    20,
			"Healthcare": 15,
			"Education":  12,
			"Other":      18,
		},
		PotentialMentors: 15 + rand.Intn(36),
		MentorshipOpportunities: []MentorshipOpportunity{
			{
				Name:              "Sarah Johnson",
				Position:          "Senior VP of Engineering",
				Company:           "TechCorp",
				MutualConnections: 5,
				MatchPotential:    "High",
			},
			{
				Name:              "Michael Chen",
				Position:          "Director of Product",
				Company:           "InnovateAI",
				MutualConnections: 3,
				MatchPotential:    "Medium",
			},
		},
		NetworkingEvents: []NetworkingEvent{
			{
				Name:                "AI in Career Development Summit",
				Date:                "2024-12-15",
				Location:            "San Francisco",
				RelevantConnections: 12,
			},
		},
	}, nil
}

func stringOr(raw map[string]any, key, fallback string) string {
	if s, ok := raw[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func stringsOr(raw map[string]any, key string, fallback []string) []string {
	v, ok := raw[key]
	if !ok {
		return fallback
	}
	switch list := v.(type) {
	case []string:
		if len(list) > 0 {
			return list
		}
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
