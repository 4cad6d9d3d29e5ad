package difficulty

// ChallengeAdjustment is the advisory recommendation from a challenge
// band analysis.
type ChallengeAdjustment string

const (
	ChallengeIncrease ChallengeAdjustment = "increase"
	ChallengeDecrease ChallengeAdjustment = "decrease"
	ChallengeMaintain ChallengeAdjustment = "maintain"
)

// ChallengeAnalysis classifies a learner's position relative to the
// optimal challenge band.
type ChallengeAnalysis struct {
	// CurrentChallengeLevel is the mean comprehension over the window.
	CurrentChallengeLevel float64
	// IsOptimal reports whether the learner sits inside the band,
	// boundaries inclusive.
	IsOptimal bool
	// Adjustment is advisory only; callers decide whether to act.
	Adjustment ChallengeAdjustment
	// TargetComprehension is the band edge to steer toward.
	TargetComprehension float64
}

// AnalyzeChallenge classifies recent comprehension scores against the
// optimal band. An empty window is non-optimal with a maintain
// recommendation targeting the band floor.
func AnalyzeChallenge(scores []float64, cfg ChallengeConfig) ChallengeAnalysis {
	if len(scores) == 0 {
		return ChallengeAnalysis{
			Adjustment:          ChallengeMaintain,
			TargetComprehension: cfg.BandFloor,
		}
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	level := sum / float64(len(scores))

	switch {
	case level > cfg.BandCeiling:
		return ChallengeAnalysis{
			CurrentChallengeLevel: level,
			Adjustment:            ChallengeIncrease,
			TargetComprehension:   cfg.BandCeiling,
		}
	case level < cfg.BandFloor:
		return ChallengeAnalysis{
			CurrentChallengeLevel: level,
			Adjustment:            ChallengeDecrease,
			TargetComprehension:   cfg.BandFloor,
		}
	default:
		return ChallengeAnalysis{
			CurrentChallengeLevel: level,
			IsOptimal:             true,
			Adjustment:            ChallengeMaintain,
			TargetComprehension:   level,
		}
	}
}
