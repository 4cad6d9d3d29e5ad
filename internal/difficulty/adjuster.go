package difficulty

import (
	"fmt"

	"github.com/abhisek/learnpath/internal/performance"
)

// Direction is the sign of a tier adjustment.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// Adjustment is a single-tier difficulty change decision.
type Adjustment struct {
	NewLevel   Level
	Direction  Direction
	Reason     string
	Confidence float64 // 0-100
}

// Decide evaluates a performance analysis against the current tier and
// returns an adjustment, or nil when no change is warranted. Decisions
// are deterministic: the same inputs always produce the same result.
//
// The 61-89% comprehension band deliberately returns nil to keep the
// difficulty from oscillating, as does any window whose consistency
// falls below the gate.
func Decide(current Level, a performance.Analysis, cfg Config) *Adjustment {
	// An empty window is trivially consistent with a zero average; it
	// must stay neutral rather than trip the decrease rule.
	if a.SessionCount == 0 {
		return nil
	}
	if a.Consistency < cfg.MinConsistency {
		return nil
	}

	if a.AvgComprehension >= cfg.IncreaseThreshold && a.Trend != performance.TrendDeclining {
		next, ok := current.Next()
		if !ok {
			return nil
		}
		return &Adjustment{
			NewLevel:  next,
			Direction: DirectionIncrease,
			Reason: fmt.Sprintf("average comprehension %.1f%% with %s trend exceeds %.0f%% mastery threshold",
				a.AvgComprehension, a.Trend, cfg.IncreaseThreshold),
			Confidence: confidence(a.Consistency, cfg),
		}
	}

	if a.AvgComprehension <= cfg.DecreaseThreshold && a.Trend != performance.TrendImproving {
		prev, ok := current.Previous()
		if !ok {
			return nil
		}
		return &Adjustment{
			NewLevel:  prev,
			Direction: DirectionDecrease,
			Reason: fmt.Sprintf("average comprehension %.1f%% with %s trend is below %.0f%% struggle threshold",
				a.AvgComprehension, a.Trend, cfg.DecreaseThreshold),
			Confidence: confidence(a.Consistency, cfg),
		}
	}

	return nil
}

// confidence scales with window consistency, capped at MaxConfidence.
func confidence(consistency float64, cfg Config) float64 {
	c := cfg.BaseConfidence + consistency*cfg.ConfidenceSlope
	if c > cfg.MaxConfidence {
		return cfg.MaxConfidence
	}
	return c
}
