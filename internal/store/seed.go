package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/learnpath/internal/difficulty"
	"github.com/abhisek/learnpath/internal/path"
	"github.com/abhisek/learnpath/internal/performance"
)

// ErrAlreadySeeded is returned when the demo data is already present.
var ErrAlreadySeeded = errors.New("database already seeded")

// Seed inserts a demo learner with a mathematics path, a recent session
// window, and skill progress, so the CLI has something to work with on
// a fresh database. Re-running against a seeded database returns
// ErrAlreadySeeded and writes nothing.
func Seed(ctx context.Context, s *Store) error {
	ps := &pathStore{db: s.db}
	ss := &sessionStore{db: s.db}
	ks := &skillStore{db: s.db}

	if _, err := ps.Find(ctx, "demo-math"); err == nil {
		return ErrAlreadySeeded
	} else if !errors.Is(err, path.ErrPathNotFound) {
		return fmt.Errorf("check existing seed: %w", err)
	}

	demoPath := &path.Path{
		ID:           "demo-math",
		UserID:       "demo",
		Subject:      "mathematics",
		CurrentLevel: difficulty.Intermediate,
		Objectives: []path.Objective{
			{
				ID:                "obj-fractions",
				Title:             "Working with fractions",
				EstimatedDuration: 45 * time.Minute,
				Skills:            []string{"fractions"},
			},
			{
				ID:                "obj-decimals",
				Title:             "Decimals and place value",
				EstimatedDuration: 30 * time.Minute,
				Skills:            []string{"decimals"},
			},
			{
				ID:                "obj-algebra",
				Title:             "Introduction to algebra",
				EstimatedDuration: 60 * time.Minute,
				Prerequisites:     []string{"obj-fractions", "obj-decimals"},
				Skills:            []string{"algebra"},
			},
			{
				ID:                "obj-geometry",
				Title:             "Geometry fundamentals",
				EstimatedDuration: 50 * time.Minute,
				Prerequisites:     []string{"obj-fractions"},
				Skills:            []string{"geometry"},
			},
		},
		Milestones: []path.Milestone{
			{
				ID:         "ms-1",
				Title:      "Number foundations",
				Objectives: []string{"obj-fractions", "obj-decimals"},
			},
			{
				ID:         "ms-2",
				Title:      "Abstract reasoning",
				Objectives: []string{"obj-algebra", "obj-geometry"},
			},
		},
		Progress: path.Progress{
			CompletedObjectives: []string{"obj-fractions"},
			OverallProgress:     25,
			CurrentMilestone:    "ms-1",
		},
	}
	if err := ps.Create(ctx, demoPath); err != nil {
		return fmt.Errorf("seed path: %w", err)
	}

	scores := []float64{95, 92, 94, 96, 93}
	base := time.Now().UTC().Add(-time.Duration(len(scores)) * 24 * time.Hour)
	for i, score := range scores {
		session := performance.Session{
			ID:                 fmt.Sprintf("demo-session-%d", i+1),
			UserID:             "demo",
			PathID:             "demo-math",
			CompletedAt:        base.Add(time.Duration(i) * 24 * time.Hour),
			ComprehensionScore: score,
			DurationSecs:       1800,
			Assessments: []performance.AssessmentResult{
				{QuestionID: fmt.Sprintf("q%d-1", i+1), Topic: "fractions_compare", Correct: true, Attempts: 1},
				{QuestionID: fmt.Sprintf("q%d-2", i+1), Topic: "decimals_rounding", Correct: true, Attempts: 1},
			},
			Engagement: performance.EngagementMetrics{FocusScore: 88, InteractionCount: 40},
		}
		if err := ss.Add(ctx, session); err != nil {
			return fmt.Errorf("seed session: %w", err)
		}
	}

	skills := []path.SkillProgress{
		{SkillID: "fractions", CurrentLevel: 82, MasteryThreshold: 75, Mastered: true},
		{SkillID: "decimals", CurrentLevel: 78, MasteryThreshold: 75, Mastered: true},
		{SkillID: "algebra", CurrentLevel: 64, MasteryThreshold: 75},
		{SkillID: "geometry", CurrentLevel: 58, MasteryThreshold: 75},
	}
	for _, sp := range skills {
		if err := ks.Upsert(ctx, "demo", sp); err != nil {
			return fmt.Errorf("seed skill: %w", err)
		}
	}

	return nil
}
