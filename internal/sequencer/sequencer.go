// Package sequencer decides which learning objectives to surface next
// given prerequisite gating and the learner's skill mastery.
package sequencer

import (
	"sort"

	"github.com/abhisek/learnpath/internal/path"
)

// MaxNextObjectives caps how many objectives are surfaced at once.
const MaxNextObjectives = 3

// Result is the output of sequencing a path's objective set.
type Result struct {
	// NextObjectives are the first objectives to present, at most
	// MaxNextObjectives, ordered quick-wins first.
	NextObjectives []path.Objective
	// PrerequisitesMet is true iff nothing is blocked.
	PrerequisitesMet bool
	// BlockedObjectives have at least one uncompleted prerequisite.
	BlockedObjectives []path.Objective
	// RecommendedReview lists unmet prerequisite objective IDs, plus
	// skill IDs for blocked objectives whose every skill is unmastered.
	// Deduplicated, first-seen order.
	RecommendedReview []string
}

// Sequence partitions objectives into available and blocked sets and
// orders the available set. Completed objectives are skipped entirely.
// An objective with no prerequisites is always available: its skills may
// be learned through it, so mastery never gates first exposure.
//
// Ordering is deterministic: fewest prerequisites first, then shortest
// estimated duration, then fewest skills, then ID.
func Sequence(objectives []path.Objective, completed, mastered map[string]bool) Result {
	var available, blocked []path.Objective
	var review []string
	seen := make(map[string]bool)

	addReview := func(id string) {
		if !seen[id] {
			seen[id] = true
			review = append(review, id)
		}
	}

	for _, obj := range objectives {
		if completed[obj.ID] {
			continue
		}
		unmet := unmetPrerequisites(obj, completed)
		if len(unmet) == 0 {
			available = append(available, obj)
			continue
		}

		blocked = append(blocked, obj)
		for _, id := range unmet {
			addReview(id)
		}
		if len(obj.Skills) > 0 && noneMastered(obj.Skills, mastered) {
			for _, id := range obj.Skills {
				addReview(id)
			}
		}
	}

	sort.SliceStable(available, func(i, j int) bool {
		if len(available[i].Prerequisites) != len(available[j].Prerequisites) {
			return len(available[i].Prerequisites) < len(available[j].Prerequisites)
		}
		if available[i].EstimatedDuration != available[j].EstimatedDuration {
			return available[i].EstimatedDuration < available[j].EstimatedDuration
		}
		if len(available[i].Skills) != len(available[j].Skills) {
			return len(available[i].Skills) < len(available[j].Skills)
		}
		return available[i].ID < available[j].ID
	})

	next := available
	if len(next) > MaxNextObjectives {
		next = next[:MaxNextObjectives]
	}

	return Result{
		NextObjectives:    next,
		PrerequisitesMet:  len(blocked) == 0,
		BlockedObjectives: blocked,
		RecommendedReview: review,
	}
}

// unmetPrerequisites returns the prerequisite IDs not yet completed.
func unmetPrerequisites(obj path.Objective, completed map[string]bool) []string {
	var unmet []string
	for _, id := range obj.Prerequisites {
		if !completed[id] {
			unmet = append(unmet, id)
		}
	}
	return unmet
}

// noneMastered reports whether every listed skill is unmastered.
func noneMastered(skills []string, mastered map[string]bool) bool {
	for _, id := range skills {
		if mastered[id] {
			return false
		}
	}
	return true
}
