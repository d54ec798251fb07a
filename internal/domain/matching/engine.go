package matching

import (
	"fmt"
	"math"
	"strings"
)

// Result is a mentor/mentee compatibility assessment. Score lands in [0,1]
// for realistic inputs but is deliberately not clamped; Reasons holds one
// human-readable line per triggered signal, in signal order.
type Result struct {
	Score   float64
	Reasons []string
}

// Weights is the single source of truth for the additive heuristic: one row
// per signal with its bonus or cap. Overlap terms contribute a fraction of
// their cap: min(overlap/Divisor, 1) * Cap.
type Weights struct {
	Industry float64 // flat bonus for exact industry equality

	ExperienceWide   float64 // gap >= WideGapYears
	ExperienceNarrow float64 // gap >= NarrowGapYears

	SkillDivisor float64 // overlap count at which SkillCap is reached
	SkillCap     float64

	Style float64 // flat bonus when styles are compatible

	InterestDivisor float64
	InterestCap     float64

	Readiness float64 // scaled by (mentorReadiness+menteeReadiness)/20
}

const (
	WideGapYears   = 3
	NarrowGapYears = 1

	defaultReadiness  = 5.0
	readinessDividend = 20.0
)

// Default carries the production weighting. Tests may construct their own
// Weights to exercise rows in isolation.
var Default = Weights{
	Industry:         0.20,
	ExperienceWide:   0.15,
	ExperienceNarrow: 0.10,
	SkillDivisor:     5,
	SkillCap:         0.25,
	Style:            0.15,
	InterestDivisor:  3,
	InterestCap:      0.15,
	Readiness:        0.10,
}

// compatibleStyles maps a mentor communication style to the mentee styles it
// pairs well with.
var compatibleStyles = map[string][]string{
	"collaborative": {"collaborative", "analytical"},
	"direct":        {"direct", "analytical"},
	"analytical":    {"analytical", "collaborative", "direct"},
	"creative":      {"creative", "collaborative"},
}

const fallbackReason = "Basic compatibility assessment"

// Fallback is the fixed result returned when a document is malformed.
// Matching is best-effort: a scoring defect must never fail a match request.
func Fallback() Result {
	return Result{Score: 0.5, Reasons: []string{fallbackReason}}
}

// Score rates a mentor/mentee pair with the default weights.
func Score(mentor, mentee map[string]any) Result {
	return Default.Score(mentor, mentee)
}

// Score is a total function over arbitrary profile documents: it never
// panics and never returns an error. Absent fields take safe defaults. The
// two shapes that cannot be defaulted (a present but non-numeric
// experience_years, and a present but non-document ai_analysis or
// non-numeric mentorship_readiness) yield Fallback(). Inputs are never
// mutated, and identical inputs always produce identical output.
func (w Weights) Score(mentor, mentee map[string]any) Result {
	mentorExp, ok := intField(mentor, "experience_years")
	if !ok {
		return Fallback()
	}
	menteeExp, ok := intField(mentee, "experience_years")
	if !ok {
		return Fallback()
	}

	mentorReadiness, mentorStyle, ok := analysisFields(mentor)
	if !ok {
		return Fallback()
	}
	menteeReadiness, menteeStyle, ok := analysisFields(mentee)
	if !ok {
		return Fallback()
	}

	var score float64
	reasons := make([]string, 0, 5)

	mentorIndustry := stringField(mentor, "industry")
	if mentorIndustry != "" && mentorIndustry == stringField(mentee, "industry") {
		score += w.Industry
		reasons = append(reasons, fmt.Sprintf("Same industry: %s", mentorIndustry))
	}

	gap := mentorExp - menteeExp
	switch {
	case gap >= WideGapYears:
		score += w.ExperienceWide
		reasons = append(reasons, fmt.Sprintf("Good experience gap: %d years", gap))
	case gap >= NarrowGapYears:
		score += w.ExperienceNarrow
		reasons = append(reasons, fmt.Sprintf("Moderate experience gap: %d years", gap))
	}

	// Mentor skills are matched as given against lower-cased goal words;
	// a multi-word skill can therefore never match a single token. That
	// asymmetry is inherited behavior and is kept intact.
	goalTokens := make(map[string]struct{})
	for _, g := range stringList(mentee, "goals") {
		for _, tok := range strings.Fields(strings.ToLower(g)) {
			goalTokens[tok] = struct{}{}
		}
	}
	skillOverlap := 0
	seenSkills := make(map[string]struct{})
	for _, s := range stringList(mentor, "skills") {
		if _, dup := seenSkills[s]; dup {
			continue
		}
		seenSkills[s] = struct{}{}
		if _, hit := goalTokens[s]; hit {
			skillOverlap++
		}
	}
	if skillOverlap > 0 {
		score += math.Min(float64(skillOverlap)/w.SkillDivisor, 1) * w.SkillCap
		reasons = append(reasons, fmt.Sprintf("Skills alignment: %d matching areas", skillOverlap))
	}

	if mentorStyle != "" && menteeStyle != "" && styleCompatible(mentorStyle, menteeStyle) {
		score += w.Style
		reasons = append(reasons, fmt.Sprintf("Compatible communication styles: %s-%s", mentorStyle, menteeStyle))
	}

	interestOverlap := overlapCount(stringList(mentor, "interests"), stringList(mentee, "interests"))
	if interestOverlap > 0 {
		score += math.Min(float64(interestOverlap)/w.InterestDivisor, 1) * w.InterestCap
		reasons = append(reasons, fmt.Sprintf("Shared interests: %d common areas", interestOverlap))
	}

	score += (mentorReadiness + menteeReadiness) / readinessDividend * w.Readiness

	return Result{Score: math.Round(score*100) / 100, Reasons: reasons}
}

func styleCompatible(mentorStyle, menteeStyle string) bool {
	for _, s := range compatibleStyles[mentorStyle] {
		if s == menteeStyle {
			return true
		}
	}
	return false
}

func overlapCount(a, b []string) int {
	set := make(map[string]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	seen := make(map[string]struct{}, len(a))
	n := 0
	for _, v := range a {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, ok := set[v]; ok {
			n++
		}
	}
	return n
}

// intField reads a numeric document field, defaulting to 0 when absent.
// The second return is false only when the value is present but not a number.
func intField(doc map[string]any, key string) (int, bool) {
	v, present := doc[key]
	if !present || v == nil {
		return 0, true
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case float32:
		return int(n), true
	default:
		return 0, false
	}
}

func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

func stringField(doc map[string]any, key string) string {
	s, _ := doc[key].(string)
	return s
}

// stringList tolerates absent or mistyped list fields; non-string elements
// are skipped rather than failing the whole document.
func stringList(doc map[string]any, key string) []string {
	raw, ok := doc[key].([]any)
	if !ok {
		if typed, ok := doc[key].([]string); ok {
			return typed
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// analysisFields extracts the advisor sub-record. Readiness defaults to 5
// when the sub-record or the field is absent; a sub-record of the wrong type,
// or a readiness of the wrong type, marks the document malformed.
func analysisFields(doc map[string]any) (readiness float64, style string, ok bool) {
	raw, present := doc["ai_analysis"]
	if !present || raw == nil {
		return defaultReadiness, "", true
	}
	analysis, isDoc := raw.(map[string]any)
	if !isDoc {
		return 0, "", false
	}

	readiness = defaultReadiness
	if v, present := analysis["mentorship_readiness"]; present && v != nil {
		n, isNum := numberValue(v)
		if !isNum {
			return 0, "", false
		}
		readiness = n
	}

	style, _ = analysis["communication_style"].(string)
	return readiness, style, true
}
