package sequencer

import (
	"fmt"
	"strings"

	"github.com/abhisek/learnpath/internal/path"
)

// Validate performs structural checks on an objective set.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(objectives []path.Objective) error {
	var errs []string

	idSet := make(map[string]bool, len(objectives))
	for _, obj := range objectives {
		if obj.ID == "" {
			errs = append(errs, "objective with empty ID")
			continue
		}
		if idSet[obj.ID] {
			errs = append(errs, fmt.Sprintf("duplicate objective ID: %q", obj.ID))
		}
		idSet[obj.ID] = true
	}

	for _, obj := range objectives {
		for _, prereqID := range obj.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("objective %q references nonexistent prerequisite %q", obj.ID, prereqID))
			}
			if prereqID == obj.ID {
				errs = append(errs, fmt.Sprintf("objective %q lists itself as a prerequisite", obj.ID))
			}
		}
	}

	// Cycle check via Kahn's algorithm.
	inDegree := make(map[string]int, len(objectives))
	dependents := make(map[string][]string)
	for _, obj := range objectives {
		deg := 0
		for _, prereqID := range obj.Prerequisites {
			if idSet[prereqID] {
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

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range dependents[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}
	if visited < len(idSet) {
		errs = append(errs, "prerequisite cycle detected")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid objective set: %s", strings.Join(errs, "; "))
	}
	return nil
}
