package difficulty

// Config holds the adjustment decision thresholds.
type Config struct {
	// MinConsistency gates all adjustments: below it the window is too
	// noisy to act on.
	MinConsistency float64
	// IncreaseThreshold is the average comprehension at or above which
	// an increase is considered.
	IncreaseThreshold float64
	// DecreaseThreshold is the average comprehension at or below which
	// a decrease is considered.
	DecreaseThreshold float64
	// BaseConfidence, ConfidenceSlope and MaxConfidence shape the
	// decision confidence: min(Max, Base + consistency*Slope).
	BaseConfidence  float64
	ConfidenceSlope float64
	MaxConfidence   float64
}

// DefaultConfig returns the standard adjustment thresholds.
func DefaultConfig() Config {
	return Config{
		MinConsistency:    50,
		IncreaseThreshold: 90,
		DecreaseThreshold: 60,
		BaseConfidence:    60,
		ConfidenceSlope:   0.35,
		MaxConfidence:     95,
	}
}

// ChallengeConfig holds the optimal challenge band boundaries.
type ChallengeConfig struct {
	// BandFloor and BandCeiling bound the optimal comprehension band,
	// both inclusive.
	BandFloor   float64
	BandCeiling float64
}

// DefaultChallengeConfig returns the 70-85% optimal band.
func DefaultChallengeConfig() ChallengeConfig {
	return ChallengeConfig{
		BandFloor:   70,
		BandCeiling: 85,
	}
}
