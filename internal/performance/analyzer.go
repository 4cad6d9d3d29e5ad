package performance

import (
	"sort"
	"strings"
)

const (
	// SlopeThreshold is the least-squares slope beyond which a window is
	// classified as improving (or declining, when negative).
	SlopeThreshold = 2.0

	// StrugglingRatio is the struggling-session ratio above which a
	// concept becomes a struggling area.
	StrugglingRatio = 0.6

	// MasteredRatio is the clean-session ratio at or above which a
	// concept counts as mastered.
	MasteredRatio = 0.9

	// ExcessiveAttempts is the attempt count above which a correct
	// answer still marks its concept as struggled.
	ExcessiveAttempts = 2
)

// Analyze computes aggregate statistics over an ordered session window
// (oldest first). It is total: an empty window yields the neutral
// Analysis rather than an error.
func Analyze(sessions []Session) Analysis {
	scores := make([]float64, len(sessions))
	focus := make([]float64, len(sessions))
	for i, s := range sessions {
		scores[i] = s.ComprehensionScore
		focus[i] = s.Engagement.FocusScore
	}

	a := Analysis{
		AvgComprehension: mean(scores),
		Trend:            classifyTrend(scores),
		Consistency:      consistency(scores),
		AvgEngagement:    mean(focus),
		SessionCount:     len(sessions),
	}
	a.StrugglingAreas, a.MasteredAreas = conceptAreas(sessions)
	return a
}

// classifyTrend maps the window's slope onto a Trend.
func classifyTrend(scores []float64) Trend {
	if len(scores) < 2 {
		return TrendStable
	}
	s := slope(scores)
	switch {
	case s > SlopeThreshold:
		return TrendImproving
	case s < -SlopeThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// consistency scores how stable the window is: 100 minus twice the
// standard deviation, floored at 0. Fewer than two points is trivially
// consistent.
func consistency(scores []float64) float64 {
	if len(scores) < 2 {
		return 100
	}
	c := 100 - 2*stddev(scores)
	if c < 0 {
		return 0
	}
	return c
}

// Concept extracts the concept from a question topic: the text before
// the first "_" or "-" delimiter. A topic without a delimiter is its
// own concept.
func Concept(topic string) string {
	if i := strings.IndexAny(topic, "_-"); i > 0 {
		return topic[:i]
	}
	return topic
}

// conceptAreas aggregates per-session concept outcomes across the window.
// Within a session each touched concept is struggled (any incorrect
// result or more than ExcessiveAttempts attempts) or clean; concepts are
// deduplicated per session before counting.
func conceptAreas(sessions []Session) (struggling, mastered []string) {
	if len(sessions) == 0 {
		return nil, nil
	}

	struggledCount := make(map[string]int)
	touchedCount := make(map[string]int)

	for _, s := range sessions {
		struggled := make(map[string]bool)
		touched := make(map[string]bool)
		for _, r := range s.Assessments {
			c := Concept(r.Topic)
			if c == "" {
				continue
			}
			touched[c] = true
			if !r.Correct || r.Attempts > ExcessiveAttempts {
				struggled[c] = true
			}
		}
		for c := range touched {
			touchedCount[c]++
		}
		for c := range struggled {
			struggledCount[c]++
		}
	}

	total := float64(len(sessions))
	for c, n := range struggledCount {
		if float64(n)/total > StrugglingRatio {
			struggling = append(struggling, c)
		}
	}
	for c, n := range touchedCount {
		clean := n - struggledCount[c]
		if float64(clean)/float64(n) >= MasteredRatio {
			mastered = append(mastered, c)
		}
	}

	sort.Strings(struggling)
	sort.Strings(mastered)
	return struggling, mastered
}
