// Package competency evaluates whether a learner is ready to advance to
// a requested difficulty tier, scored against a per-subject skill
// checklist.
package competency

import (
	"errors"
	"fmt"

	"github.com/abhisek/learnpath/internal/difficulty"
)

var (
	// ErrUnknownSubject is returned when the table has no checklist for
	// the requested subject.
	ErrUnknownSubject = errors.New("unknown subject")

	// ErrUnknownLevel is returned when the subject exists but carries no
	// checklist for the requested tier.
	ErrUnknownLevel = errors.New("no checklist for requested level")

	// ErrEmptyChecklist is returned when the resolved checklist has no
	// skills to assess. Loaded tables cannot produce this (the schema
	// requires at least one skill per tier); it guards tables built in
	// code.
	ErrEmptyChecklist = errors.New("empty skill checklist")
)

// Table maps subject -> tier name -> required skill IDs. Tables are
// injected data, not engine logic: new subjects and tiers ship as
// configuration.
type Table map[string]map[string][]string

// Checklist resolves the skill checklist for (subject, level).
func (t Table) Checklist(subject string, level difficulty.Level) ([]string, error) {
	levels, ok := t[subject]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubject, subject)
	}
	skills, ok := levels[level.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownLevel, subject, level)
	}
	return skills, nil
}

// Threshold returns the required skill level for a tier.
func Threshold(level difficulty.Level) float64 {
	switch level {
	case difficulty.Expert:
		return 95
	case difficulty.Advanced:
		return 85
	case difficulty.Intermediate:
		return 75
	default:
		return 60
	}
}

// DefaultTable returns the built-in per-subject checklists.
func DefaultTable() Table {
	return Table{
		"mathematics": {
			"beginner":     {"counting", "addition", "subtraction", "shapes"},
			"intermediate": {"algebra", "geometry", "fractions", "decimals"},
			"advanced":     {"functions", "trigonometry", "statistics", "proofs"},
			"expert":       {"calculus", "linear-algebra", "discrete-math"},
		},
		"science": {
			"beginner":     {"observation", "measurement", "classification"},
			"intermediate": {"scientific-method", "forces", "matter", "ecosystems"},
			"advanced":     {"chemistry", "physics", "genetics", "data-analysis"},
			"expert":       {"experimental-design", "thermodynamics", "molecular-biology"},
		},
		"programming": {
			"beginner":     {"variables", "loops", "conditionals", "functions"},
			"intermediate": {"data-structures", "debugging", "recursion", "testing"},
			"advanced":     {"algorithms", "design-patterns", "concurrency", "profiling"},
			"expert":       {"distributed-systems", "compilers", "formal-methods"},
		},
	}
}
