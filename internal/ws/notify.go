package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// MatchesFoundEvent announces that the matching flow persisted new matches
// for a mentee.
type MatchesFoundEvent struct {
	Type      string    `json:"type"`
	MenteeID  uuid.UUID `json:"mentee_id"`
	Matches   int       `json:"matches"`
	TopScore  float64   `json:"top_score"`
	Timestamp string    `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyMatchesFound broadcasts to all subscribers; a nil hub (ws disabled)
// makes this a no-op.
func NotifyMatchesFound(menteeID uuid.UUID, matches int, topScore float64) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if matches <= 0 {
		return
	}

	evt := MatchesFoundEvent{
		Type:      "matches_found",
		MenteeID:  menteeID,
		Matches:   matches,
		TopScore:  topScore,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
