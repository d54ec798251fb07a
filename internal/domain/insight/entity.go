package insight

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeSkillGap    = "skill_gap"
	TypeMarketTrend = "market_trend"
	TypeCareerPath  = "career_path"
	TypeNetworking  = "networking"
)

// FreshnessWindow is how long generated insights stay authoritative before
// the advisor is consulted again.
const FreshnessWindow = 7 * 24 * time.Hour

type Insight struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	InsightType     string    `json:"insight_type"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Recommendations []string  `json:"recommendations"`
	ConfidenceScore float64   `json:"confidence_score"`
	CreatedAt       time.Time `json:"created_at"`
}
