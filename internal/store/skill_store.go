package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abhisek/learnpath/internal/path"
)

type skillStore struct {
	db *sql.DB
}

// Upsert writes a (user, skill) progress record, replacing any existing
// one. The engine reads this data; writes come from the assessment side.
func (ks *skillStore) Upsert(ctx context.Context, userID string, sp path.SkillProgress) error {
	mastered := 0
	if sp.Mastered {
		mastered = 1
	}
	_, err := ks.db.ExecContext(ctx,
		`INSERT INTO skill_progress (user_id, skill_id, current_level, mastery_threshold, mastered)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, skill_id) DO UPDATE SET
			current_level = excluded.current_level,
			mastery_threshold = excluded.mastery_threshold,
			mastered = excluded.mastered`,
		userID, sp.SkillID, sp.CurrentLevel, sp.MasteryThreshold, mastered)
	if err != nil {
		return fmt.Errorf("upsert skill progress: %w", err)
	}
	return nil
}

// SkillProgress returns all skill records for a user, ordered by skill ID.
func (ks *skillStore) SkillProgress(ctx context.Context, userID string) ([]path.SkillProgress, error) {
	rows, err := ks.db.QueryContext(ctx,
		`SELECT skill_id, current_level, mastery_threshold, mastered
		 FROM skill_progress WHERE user_id = ? ORDER BY skill_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query skill progress: %w", err)
	}
	defer rows.Close()

	var progress []path.SkillProgress
	for rows.Next() {
		var sp path.SkillProgress
		var mastered int
		if err := rows.Scan(&sp.SkillID, &sp.CurrentLevel, &sp.MasteryThreshold, &mastered); err != nil {
			return nil, fmt.Errorf("scan skill progress: %w", err)
		}
		sp.Mastered = mastered != 0
		progress = append(progress, sp)
	}
	return progress, rows.Err()
}
