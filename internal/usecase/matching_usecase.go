package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"mentormatch/internal/domain/match"
	"mentormatch/internal/domain/matching"
	"mentormatch/internal/domain/profile"
	"mentormatch/internal/metrics"
	"mentormatch/internal/repository"
	"mentormatch/internal/ws"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// matchThreshold is the minimum score a candidate needs to be
	// considered at all.
	matchThreshold = 0.3
	// persistTopN matches are written to the store; returnTopN are
	// surfaced to the requester.
	persistTopN = 5
	returnTopN  = 10
)

// MatchCandidate is a scored mentor enriched with display fields for the
// response. Only the match fields survive persistence.
type MatchCandidate struct {
	ID           uuid.UUID
	MentorID     uuid.UUID
	MenteeID     uuid.UUID
	MatchScore   float64
	MatchReasons []string
	Status       string
	CreatedAt    time.Time

	MentorName       string
	MentorPosition   string
	MentorIndustry   string
	MentorExperience int
}

type MatchingUsecase interface {
	FindMatches(ctx context.Context, menteeID uuid.UUID) ([]MatchCandidate, error)
}

type Matching struct {
	profiles repository.ProfileRepository
	matches  repository.MatchRepository
	logger   *zap.Logger
}

func NewMatchingUsecase(profiles repository.ProfileRepository, matches repository.MatchRepository, logger *zap.Logger) *Matching {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matching{profiles: profiles, matches: matches, logger: logger}
}

// FindMatches loads the mentee and every mentor, scores each pair, keeps
// candidates above the threshold, stable-sorts them by score descending
// (ties keep store order), persists the top 5 and returns up to the top 10.
func (u *Matching) FindMatches(ctx context.Context, menteeID uuid.UUID) ([]MatchCandidate, error) {
	metrics.MatchingRequests.Inc()

	menteeDoc, err := u.profiles.GetDocument(ctx, menteeID, profile.RoleMentee)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, ErrMenteeNotFound
		}
		u.logger.Error("load mentee failed", zap.String("mentee_id", menteeID.String()), zap.Error(err))
		return nil, ErrInternal
	}

	mentorDocs, err := u.profiles.ListDocumentsByRole(ctx, profile.RoleMentor)
	if err != nil {
		u.logger.Error("load mentors failed", zap.Error(err))
		return nil, ErrInternal
	}

	now := time.Now().UTC()
	candidates := make([]MatchCandidate, 0, len(mentorDocs))
	for _, mentorDoc := range mentorDocs {
		res := matching.Score(mentorDoc, menteeDoc)
		metrics.CandidatesScored.Inc()
		if res.Score <= matchThreshold {
			continue
		}

		mentorID, err := uuid.Parse(docString(mentorDoc, "id"))
		if err != nil {
			u.logger.Warn("mentor document has no usable id, skipping", zap.Error(err))
			continue
		}

		candidates = append(candidates, MatchCandidate{
			ID:           uuid.New(),
			MentorID:     mentorID,
			MenteeID:     menteeID,
			MatchScore:   res.Score,
			MatchReasons: res.Reasons,
			Status:       match.StatusPending,
			CreatedAt:    now,

			MentorName:       docString(mentorDoc, "name"),
			MentorPosition:   docString(mentorDoc, "current_position"),
			MentorIndustry:   docString(mentorDoc, "industry"),
			MentorExperience: docInt(mentorDoc, "experience_years"),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})

	for i, c := range candidates {
		if i >= persistTopN {
			break
		}
		m := match.Match{
			ID:           c.ID,
			MentorID:     c.MentorID,
			MenteeID:     c.MenteeID,
			MatchScore:   c.MatchScore,
			MatchReasons: c.MatchReasons,
			Status:       c.Status,
			CreatedAt:    c.CreatedAt,
		}
		if err := u.matches.Insert(ctx, m); err != nil {
			u.logger.Error("persist match failed", zap.String("match_id", m.ID.String()), zap.Error(err))
			return nil, ErrInternal
		}
		metrics.MatchesPersisted.Inc()
	}

	if len(candidates) > 0 {
		persisted := len(candidates)
		if persisted > persistTopN {
			persisted = persistTopN
		}
		ws.NotifyMatchesFound(menteeID, persisted, candidates[0].MatchScore)
	}

	if len(candidates) > returnTopN {
		candidates = candidates[:returnTopN]
	}
	return candidates, nil
}

func docString(doc map[string]any, key string) string {
	s, _ := doc[key].(string)
	return s
}

func docInt(doc map[string]any, key string) int {
	switch n := doc[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
