package sequencer

import (
	"sort"

	"github.com/abhisek/learnpath/internal/path"
)

// TopologicalOrder returns the objectives in prerequisite order using
// Kahn's algorithm with deterministic tie-breaks (ready objectives are
// taken in ID order). Prerequisites pointing outside the set are treated
// as already satisfied. If a cycle prevents completion, the remaining
// objectives are appended in ID order rather than dropped.
func TopologicalOrder(objectives []path.Objective) []path.Objective {
	byID := make(map[string]path.Objective, len(objectives))
	inDegree := make(map[string]int, len(objectives))
	dependents := make(map[string][]string)

	for _, obj := range objectives {
		byID[obj.ID] = obj
	}
	for _, obj := range objectives {
		deg := 0
		for _, prereqID := range obj.Prerequisites {
			if _, ok := byID[prereqID]; ok {
				deg++
				dependents[prereqID] = append(dependents[prereqID], obj.ID)
			}
		}
		inDegree[obj.ID] = deg
	}

	var queue []string
	for _, obj := range objectives {
		if inDegree[obj.ID] == 0 {
			queue = append(queue, obj.ID)
		}
	}
	sort.Strings(queue)

	ordered := make([]path.Objective, 0, len(objectives))
	placed := make(map[string]bool, len(objectives))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		ordered = append(ordered, byID[id])
		placed[id] = true

		deps := append([]string(nil), dependents[id]...)
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	// Cycle fallback: append whatever Kahn could not place.
	if len(ordered) < len(objectives) {
		var rest []string
		for _, obj := range objectives {
			if !placed[obj.ID] {
				rest = append(rest, obj.ID)
			}
		}
		sort.Strings(rest)
		for _, id := range rest {
			ordered = append(ordered, byID[id])
		}
	}

	return ordered
}
