package performance

import (
	"testing"
)

func sessionsWithScores(scores ...float64) []Session {
	sessions := make([]Session, len(scores))
	for i, s := range scores {
		sessions[i] = Session{ComprehensionScore: s}
	}
	return sessions
}

func TestAnalyze_EmptyWindow(t *testing.T) {
	a := Analyze(nil)
	if a.AvgComprehension != 0 {
		t.Errorf("AvgComprehension = %f, want 0", a.AvgComprehension)
	}
	if a.Trend != TrendStable {
		t.Errorf("Trend = %s, want stable", a.Trend)
	}
	if a.Consistency != 100 {
		t.Errorf("Consistency = %f, want 100", a.Consistency)
	}
	if a.SessionCount != 0 {
		t.Errorf("SessionCount = %d, want 0", a.SessionCount)
	}
	if len(a.StrugglingAreas) != 0 {
		t.Errorf("StrugglingAreas = %v, want empty", a.StrugglingAreas)
	}
}

func TestAnalyze_SingleSession(t *testing.T) {
	a := Analyze(sessionsWithScores(72))
	if !almostEqual(a.AvgComprehension, 72) {
		t.Errorf("AvgComprehension = %f, want 72", a.AvgComprehension)
	}
	if a.Trend != TrendStable {
		t.Errorf("Trend = %s, want stable (fewer than 2 points)", a.Trend)
	}
	if a.Consistency != 100 {
		t.Errorf("Consistency = %f, want 100 (fewer than 2 points)", a.Consistency)
	}
}

func TestAnalyze_StableHighWindow(t *testing.T) {
	// Mean 94, slope 0, stddev sqrt(2) -> consistency ~97.17.
	a := Analyze(sessionsWithScores(95, 92, 94, 96, 93))
	if !almostEqual(a.AvgComprehension, 94) {
		t.Errorf("AvgComprehension = %f, want 94", a.AvgComprehension)
	}
	if a.Trend != TrendStable {
		t.Errorf("Trend = %s, want stable", a.Trend)
	}
	if a.Consistency < 97 || a.Consistency > 98 {
		t.Errorf("Consistency = %f, want ~97.17", a.Consistency)
	}
}

func TestAnalyze_ImprovingTrend(t *testing.T) {
	a := Analyze(sessionsWithScores(50, 60, 70, 80, 90))
	if a.Trend != TrendImproving {
		t.Errorf("Trend = %s, want improving", a.Trend)
	}
}

func TestAnalyze_DecliningTrend(t *testing.T) {
	a := Analyze(sessionsWithScores(90, 80, 70, 60, 50))
	if a.Trend != TrendDeclining {
		t.Errorf("Trend = %s, want declining", a.Trend)
	}
}

func TestAnalyze_SlopeAtThresholdIsStable(t *testing.T) {
	// Slope exactly 2 does not exceed the threshold.
	a := Analyze(sessionsWithScores(60, 62, 64, 66, 68))
	if a.Trend != TrendStable {
		t.Errorf("Trend = %s, want stable at slope 2", a.Trend)
	}
}

func TestAnalyze_RaisingScoresNeverLowersTrend(t *testing.T) {
	rank := func(tr Trend) int {
		switch tr {
		case TrendDeclining:
			return 0
		case TrendImproving:
			return 2
		default:
			return 1
		}
	}

	base := []float64{80, 75, 70, 65, 60}
	before := Analyze(sessionsWithScores(base...))

	// Raise the later scores progressively; trend may only move upward.
	raised := []float64{80, 77, 76, 78, 84}
	after := Analyze(sessionsWithScores(raised...))

	if rank(after.Trend) < rank(before.Trend) {
		t.Errorf("trend moved backward: %s -> %s", before.Trend, after.Trend)
	}
}

func TestAnalyze_StrugglingAreas(t *testing.T) {
	// "algebra" struggled in 4 of 5 sessions (0.8 > 0.6): flagged.
	// "geometry" struggled in 3 of 5 (0.6, not strictly above): not flagged.
	sessions := make([]Session, 5)
	for i := range sessions {
		sessions[i].ComprehensionScore = 70
		if i < 4 {
			sessions[i].Assessments = append(sessions[i].Assessments,
				AssessmentResult{QuestionID: "q-a", Topic: "algebra_linear", Correct: false, Attempts: 1})
		}
		if i < 3 {
			sessions[i].Assessments = append(sessions[i].Assessments,
				AssessmentResult{QuestionID: "q-g", Topic: "geometry_shapes", Correct: true, Attempts: 3})
		}
	}

	a := Analyze(sessions)
	if len(a.StrugglingAreas) != 1 || a.StrugglingAreas[0] != "algebra" {
		t.Errorf("StrugglingAreas = %v, want [algebra]", a.StrugglingAreas)
	}
}

func TestAnalyze_ConceptDedupedPerSession(t *testing.T) {
	// Two struggling results for the same concept in one session count once.
	sessions := []Session{
		{
			Assessments: []AssessmentResult{
				{QuestionID: "q1", Topic: "fractions_add", Correct: false, Attempts: 1},
				{QuestionID: "q2", Topic: "fractions_compare", Correct: false, Attempts: 2},
			},
		},
		{
			Assessments: []AssessmentResult{
				{QuestionID: "q3", Topic: "fractions_add", Correct: true, Attempts: 1},
			},
		},
	}

	// One struggling session out of two: 0.5, below the 0.6 ratio.
	a := Analyze(sessions)
	if len(a.StrugglingAreas) != 0 {
		t.Errorf("StrugglingAreas = %v, want empty", a.StrugglingAreas)
	}
}

func TestAnalyze_MasteredAreas(t *testing.T) {
	sessions := make([]Session, 3)
	for i := range sessions {
		sessions[i].Assessments = []AssessmentResult{
			{QuestionID: "q", Topic: "decimals_rounding", Correct: true, Attempts: 1},
		}
	}

	a := Analyze(sessions)
	if len(a.MasteredAreas) != 1 || a.MasteredAreas[0] != "decimals" {
		t.Errorf("MasteredAreas = %v, want [decimals]", a.MasteredAreas)
	}
}

func TestAnalyze_ExcessiveAttemptsCountAsStruggle(t *testing.T) {
	sessions := make([]Session, 2)
	for i := range sessions {
		sessions[i].Assessments = []AssessmentResult{
			{QuestionID: "q", Topic: "algebra_factoring", Correct: true, Attempts: 3},
		}
	}

	a := Analyze(sessions)
	if len(a.StrugglingAreas) != 1 || a.StrugglingAreas[0] != "algebra" {
		t.Errorf("StrugglingAreas = %v, want [algebra]", a.StrugglingAreas)
	}
}

func TestConcept(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"algebra_linear-equations", "algebra"},
		{"geometry-shapes", "geometry"},
		{"statistics", "statistics"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Concept(tt.topic); got != tt.want {
			t.Errorf("Concept(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}
