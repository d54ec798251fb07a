package usecase

import (
	"context"
	"errors"
	"testing"

	"mentormatch/internal/domain/profile"

	"github.com/google/uuid"
)

func TestLinkedInImport_UsesProvidedFields(t *testing.T) {
	uc := NewLinkedInUsecase(fakeProfileRepo{}, nil)

	got := uc.ImportProfile(map[string]any{
		"name":     "Dana Reyes",
		"email":    "dana@corp.example",
		"headline": "Engineering Manager",
		"industry": "Fintech",
		"skills":   []any{"Go", "Hiring"},
		"summary":  "Builds teams",
	})

	if got.Name != "Dana Reyes" || got.Email != "dana@corp.example" {
		t.Fatalf("identity not carried over: %+v", got)
	}
	if got.CurrentPosition != "Engineering Manager" || got.Industry != "Fintech" {
		t.Fatalf("position fields not carried over: %+v", got)
	}
	if len(got.Skills) != 2 || got.Skills[0] != "Go" {
		t.Fatalf("skills not carried over: %v", got.Skills)
	}
	if got.Bio != "Builds teams" {
		t.Fatalf("summary not mapped to bio: %q", got.Bio)
	}
	if got.Role != profile.RoleMentee {
		t.Fatalf("imports default to mentee, got %q", got.Role)
	}
}

func TestLinkedInImport_FillsDefaults(t *testing.T) {
	uc := NewLinkedInUsecase(fakeProfileRepo{}, nil)

	got := uc.ImportProfile(map[string]any{})

	if got.Name != "LinkedIn User" || got.Email != "user@linkedin.com" {
		t.Fatalf("identity defaults missing: %+v", got)
	}
	if got.CurrentPosition != "Professional" || got.Industry != "Technology" {
		t.Fatalf("position defaults missing: %+v", got)
	}
	if got.ExperienceYears != 5 {
		t.Fatalf("expected 5 default experience years, got %d", got.ExperienceYears)
	}
	if len(got.Skills) != 3 || len(got.Goals) != 3 || len(got.Interests) != 3 {
		t.Fatalf("list defaults missing: %+v", got)
	}
}

func TestLinkedInNetworkAnalysis_ProfileNotFound(t *testing.T) {
	uc := NewLinkedInUsecase(fakeProfileRepo{}, nil)

	_, err := uc.AnalyzeNetwork(context.Background(), uuid.New())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestLinkedInNetworkAnalysis_SynthesizesInsights(t *testing.T) {
	userID := uuid.New()
	profiles := fakeProfileRepo{byID: map[uuid.UUID]profile.Profile{
		userID: {ID: userID, Role: profile.RoleMentee},
	}}
	uc := NewLinkedInUsecase(profiles, nil)

	got, err := uc.AnalyzeNetwork(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got.TotalConnections < 500 || got.TotalConnections > 2000 {
		t.Fatalf("total connections out of range: %d", got.TotalConnections)
	}
	if got.PotentialMentors < 15 || got.PotentialMentors > 50 {
		t.Fatalf("potential mentors out of range: %d", got.PotentialMentors)
	}
	if len(got.MentorshipOpportunities) == 0 || len(got.NetworkingEvents) == 0 {
		t.Fatalf("expected simulated opportunities and events")
	}
	if got.IndustryBreakdown["Technology"] != 35 {
		t.Fatalf("industry breakdown missing: %v", got.IndustryBreakdown)
	}
}
