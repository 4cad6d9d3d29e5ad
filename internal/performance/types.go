package performance

import "time"

// Session is one completed study session, immutable once recorded.
type Session struct {
	ID                 string
	UserID             string
	PathID             string
	CompletedAt        time.Time
	ComprehensionScore float64 // 0-100
	DurationSecs       int
	Assessments        []AssessmentResult
	Engagement         EngagementMetrics
}

// AssessmentResult captures the outcome of a single assessment question.
type AssessmentResult struct {
	QuestionID string
	Topic      string // topic identifier, e.g. "algebra_linear-equations"
	Correct    bool
	Attempts   int
}

// EngagementMetrics summarizes learner engagement during a session.
type EngagementMetrics struct {
	FocusScore       float64 // 0-100
	InteractionCount int
}

// Trend describes the direction of comprehension change across a window.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Analysis is the aggregate output of analyzing a session window.
type Analysis struct {
	// AvgComprehension is the mean comprehension score, 0 with no sessions.
	AvgComprehension float64
	// Trend is the direction of the least-squares slope over the window.
	Trend Trend
	// Consistency scores 0-100 how stable comprehension was; 100 when
	// the window has fewer than two sessions.
	Consistency float64
	// StrugglingAreas are concepts struggled with in more than 60% of
	// the window's sessions.
	StrugglingAreas []string
	// MasteredAreas are concepts handled cleanly in at least 90% of the
	// sessions that touched them.
	MasteredAreas []string
	// AvgEngagement is the mean focus score, 0 with no sessions.
	AvgEngagement float64
	// SessionCount is the number of sessions analyzed.
	SessionCount int
}
