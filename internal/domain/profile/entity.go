package profile

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	RoleMentor = "mentor"
	RoleMentee = "mentee"
)

var ErrNotFound = errors.New("profile not found")

// Profile is a professional record for either side of a mentorship. It is
// persisted as a JSON document; AIAnalysis stays schemaless because its shape
// is dictated by the advisor, not by us.
type Profile struct {
	ID                 uuid.UUID      `json:"id"`
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	Role               string         `json:"role"`
	CurrentPosition    string         `json:"current_position"`
	Industry           string         `json:"industry"`
	ExperienceYears    int            `json:"experience_years"`
	Skills             []string       `json:"skills"`
	Goals              []string       `json:"goals"`
	Bio                string         `json:"bio"`
	Interests          []string       `json:"interests"`
	CommunicationStyle string         `json:"communication_style,omitempty"`
	AIAnalysis         map[string]any `json:"ai_analysis,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// Document is the raw decoded form of a stored profile, used by the match
// scorer which tolerates arbitrary shapes.
type Document = map[string]any

func ValidRole(role string) bool {
	return role == RoleMentor || role == RoleMentee
}
