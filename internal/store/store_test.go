package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnpath/internal/difficulty"
	"github.com/abhisek/learnpath/internal/path"
	"github.com/abhisek/learnpath/internal/performance"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testPath() *path.Path {
	return &path.Path{
		ID:           "p1",
		UserID:       "u1",
		Subject:      "mathematics",
		CurrentLevel: difficulty.Intermediate,
		Objectives: []path.Objective{
			{
				ID:                "obj-a",
				Title:             "Objective A",
				EstimatedDuration: 30 * time.Minute,
				Skills:            []string{"algebra"},
			},
			{
				ID:                "obj-b",
				Title:             "Objective B",
				EstimatedDuration: 45 * time.Minute,
				Prerequisites:     []string{"obj-a"},
			},
		},
		Milestones: []path.Milestone{
			{ID: "m1", Title: "Foundations", Objectives: []string{"obj-a", "obj-b"}},
		},
		Progress: path.Progress{
			CompletedObjectives: []string{"obj-a"},
			OverallProgress:     50,
			CurrentMilestone:    "m1",
		},
	}
}

func testAdaptation(id string) path.Adaptation {
	return path.Adaptation{
		ID:        id,
		Timestamp: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Reason:    "sustained mastery",
		Changes: path.Changes{
			PreviousLevel: difficulty.Intermediate,
			NewLevel:      difficulty.Advanced,
			Direction:     "increase",
			Confidence:    92,
		},
	}
}

func TestPathStore_CreateFindRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ps := &pathStore{db: s.db}
	ctx := context.Background()

	require.NoError(t, ps.Create(ctx, testPath()))

	got, err := ps.Find(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "u1", got.UserID)
	require.Equal(t, "mathematics", got.Subject)
	require.Equal(t, difficulty.Intermediate, got.CurrentLevel)
	require.Equal(t, int64(1), got.Version)
	require.Len(t, got.Objectives, 2)
	require.Equal(t, []string{"obj-a"}, got.Objectives[1].Prerequisites)
	require.Equal(t, 30*time.Minute, got.Objectives[0].EstimatedDuration)
	require.Equal(t, []string{"obj-a"}, got.Progress.CompletedObjectives)
	require.Equal(t, "m1", got.Progress.CurrentMilestone)
	require.Empty(t, got.Adaptations)
}

func TestPathStore_FindMissing(t *testing.T) {
	s := openTestStore(t)
	ps := &pathStore{db: s.db}

	_, err := ps.Find(context.Background(), "nope")
	require.ErrorIs(t, err, path.ErrPathNotFound)
}

func TestPathStore_UpdateLevel(t *testing.T) {
	s := openTestStore(t)
	ps := &pathStore{db: s.db}
	ctx := context.Background()
	require.NoError(t, ps.Create(ctx, testPath()))

	got, err := ps.UpdateLevel(ctx, "p1", difficulty.Advanced, 1)
	require.NoError(t, err)
	require.Equal(t, difficulty.Advanced, got.CurrentLevel)
	require.Equal(t, int64(2), got.Version)

	// A stale expected version is a conflict, not a silent overwrite.
	_, err = ps.UpdateLevel(ctx, "p1", difficulty.Expert, 1)
	require.ErrorIs(t, err, path.ErrVersionConflict)

	got, err = ps.Find(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, difficulty.Advanced, got.CurrentLevel)
	require.Equal(t, int64(2), got.Version)
}

func TestPathStore_UpdateLevelMissing(t *testing.T) {
	s := openTestStore(t)
	ps := &pathStore{db: s.db}

	_, err := ps.UpdateLevel(context.Background(), "nope", difficulty.Advanced, 1)
	require.ErrorIs(t, err, path.ErrPathNotFound)
}

func TestPathStore_AppendAdaptationIdempotent(t *testing.T) {
	s := openTestStore(t)
	ps := &pathStore{db: s.db}
	ctx := context.Background()
	require.NoError(t, ps.Create(ctx, testPath()))

	record := testAdaptation("a1")
	got, err := ps.AppendAdaptation(ctx, "p1", record)
	require.NoError(t, err)
	require.Len(t, got.Adaptations, 1)

	// Replaying the same record must not duplicate the history.
	got, err = ps.AppendAdaptation(ctx, "p1", record)
	require.NoError(t, err)
	require.Len(t, got.Adaptations, 1)

	stored := got.Adaptations[0]
	require.Equal(t, "a1", stored.ID)
	require.Equal(t, "sustained mastery", stored.Reason)
	require.True(t, stored.Timestamp.Equal(record.Timestamp))
	require.Equal(t, difficulty.Intermediate, stored.Changes.PreviousLevel)
	require.Equal(t, difficulty.Advanced, stored.Changes.NewLevel)
	require.Equal(t, "increase", stored.Changes.Direction)
	require.Equal(t, float64(92), stored.Changes.Confidence)
}

func TestPathStore_ApplyAdaptation(t *testing.T) {
	s := openTestStore(t)
	ps := &pathStore{db: s.db}
	ctx := context.Background()
	require.NoError(t, ps.Create(ctx, testPath()))

	got, err := ps.ApplyAdaptation(ctx, "p1", difficulty.Advanced, 1, testAdaptation("a1"))
	require.NoError(t, err)
	require.Equal(t, difficulty.Advanced, got.CurrentLevel)
	require.Equal(t, int64(2), got.Version)
	require.Len(t, got.Adaptations, 1)
}

func TestPathStore_ApplyAdaptationConflictWritesNothing(t *testing.T) {
	s := openTestStore(t)
	ps := &pathStore{db: s.db}
	ctx := context.Background()
	require.NoError(t, ps.Create(ctx, testPath()))

	_, err := ps.ApplyAdaptation(ctx, "p1", difficulty.Advanced, 99, testAdaptation("a1"))
	require.ErrorIs(t, err, path.ErrVersionConflict)

	got, err := ps.Find(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, difficulty.Intermediate, got.CurrentLevel)
	require.Equal(t, int64(1), got.Version)
	require.Empty(t, got.Adaptations)
}

func TestSessionStore_RecentSessions(t *testing.T) {
	s := openTestStore(t)
	ss := &sessionStore{db: s.db}
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	scores := []float64{70, 75, 80, 85, 90, 95}
	for i, score := range scores {
		require.NoError(t, ss.Add(ctx, performance.Session{
			ID:                 string(rune('a' + i)),
			UserID:             "u1",
			PathID:             "p1",
			CompletedAt:        base.Add(time.Duration(i) * 24 * time.Hour),
			ComprehensionScore: score,
			DurationSecs:       1800,
			Assessments: []performance.AssessmentResult{
				{QuestionID: "q1", Topic: "algebra_basics", Correct: score >= 80, Attempts: 1},
			},
			Engagement: performance.EngagementMetrics{FocusScore: 80, InteractionCount: 12},
		}))
	}

	// The limit keeps the newest five, returned oldest first.
	got, err := ss.RecentSessions(ctx, "u1", "p1", 5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	require.Equal(t, float64(75), got[0].ComprehensionScore)
	require.Equal(t, float64(95), got[4].ComprehensionScore)
	require.True(t, got[0].CompletedAt.Before(got[1].CompletedAt))

	require.Len(t, got[0].Assessments, 1)
	require.Equal(t, "algebra_basics", got[0].Assessments[0].Topic)
	require.Equal(t, 12, got[0].Engagement.InteractionCount)

	// Other learners' sessions stay invisible.
	got, err = ss.RecentSessions(ctx, "u2", "p1", 5)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSkillStore_UpsertAndRead(t *testing.T) {
	s := openTestStore(t)
	ks := &skillStore{db: s.db}
	ctx := context.Background()

	require.NoError(t, ks.Upsert(ctx, "u1", path.SkillProgress{
		SkillID: "algebra", CurrentLevel: 60, MasteryThreshold: 85,
	}))
	require.NoError(t, ks.Upsert(ctx, "u1", path.SkillProgress{
		SkillID: "fractions", CurrentLevel: 90, MasteryThreshold: 85, Mastered: true,
	}))

	// Upsert replaces an existing record in place.
	require.NoError(t, ks.Upsert(ctx, "u1", path.SkillProgress{
		SkillID: "algebra", CurrentLevel: 72, MasteryThreshold: 85,
	}))

	got, err := ks.SkillProgress(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "algebra", got[0].SkillID)
	require.Equal(t, float64(72), got[0].CurrentLevel)
	require.False(t, got[0].Mastered)
	require.Equal(t, "fractions", got[1].SkillID)
	require.True(t, got[1].Mastered)
}

func TestSeed(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, s))

	p, err := s.PathStore().Find(ctx, "demo-math")
	require.NoError(t, err)
	require.Equal(t, "demo", p.UserID)
	require.Equal(t, difficulty.Intermediate, p.CurrentLevel)
	require.Len(t, p.Objectives, 4)

	sessions, err := s.SessionStore().RecentSessions(ctx, "demo", "demo-math", 5)
	require.NoError(t, err)
	require.Len(t, sessions, 5)

	progress, err := s.SkillStore().SkillProgress(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, progress, 4)

	// A second run reports the existing seed instead of failing on the
	// path primary key, and duplicates nothing.
	require.ErrorIs(t, Seed(ctx, s), ErrAlreadySeeded)
	sessions, err = s.SessionStore().RecentSessions(ctx, "demo", "demo-math", 10)
	require.NoError(t, err)
	require.Len(t, sessions, 5)
}
