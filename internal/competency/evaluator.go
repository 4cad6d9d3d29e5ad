package competency

import (
	"fmt"
	"math"

	"github.com/abhisek/learnpath/internal/difficulty"
	"github.com/abhisek/learnpath/internal/path"
)

// Result is the outcome of a competency test evaluation.
type Result struct {
	Passed         bool
	Score          int // rounded mean credit, 0-100
	SkillsAssessed []string
	WeakAreas      []string
	// ReadyForAdvancement is stricter than Passed: the learner passed
	// and carries at most ceil(25%) weak areas.
	ReadyForAdvancement bool
}

// passFraction is the share of checklist skills that must meet the
// threshold for a pass regardless of the mean score.
const passFraction = 0.75

// weakAreaFraction caps how many weak areas an advancement-ready
// learner may carry.
const weakAreaFraction = 0.25

// Evaluate scores a learner's skill levels against the checklist for
// (subject, level). A skill meeting the tier threshold contributes its
// full level toward the mean; one below contributes half its level and
// becomes a weak area. Skills with no progress record score zero.
// A checklist with nothing to assess is ErrEmptyChecklist, never a
// silent fail.
func Evaluate(subject string, level difficulty.Level, progress map[string]path.SkillProgress, table Table) (Result, error) {
	checklist, err := table.Checklist(subject, level)
	if err != nil {
		return Result{}, err
	}
	if len(checklist) == 0 {
		return Result{}, fmt.Errorf("%w: %s/%s", ErrEmptyChecklist, subject, level)
	}

	threshold := Threshold(level)

	var totalCredit float64
	met := 0
	var weak []string
	for _, skillID := range checklist {
		current := progress[skillID].CurrentLevel
		if current >= threshold {
			totalCredit += current
			met++
		} else {
			totalCredit += current / 2
			weak = append(weak, skillID)
		}
	}

	n := len(checklist)
	score := int(math.Round(totalCredit / float64(n)))
	passed := float64(score) >= threshold || float64(met)/float64(n) >= passFraction
	maxWeak := int(math.Ceil(weakAreaFraction * float64(n)))

	return Result{
		Passed:              passed,
		Score:               score,
		SkillsAssessed:      append([]string(nil), checklist...),
		WeakAreas:           weak,
		ReadyForAdvancement: passed && len(weak) <= maxWeak,
	}, nil
}
