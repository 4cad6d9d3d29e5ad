package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/learnpath/internal/difficulty"
	"github.com/abhisek/learnpath/internal/path"
)

type pathStore struct {
	db *sql.DB
}

// Create inserts a new path with version 1. Used by seeding and tests;
// the engine itself never creates paths.
func (ps *pathStore) Create(ctx context.Context, p *path.Path) error {
	objectives, err := json.Marshal(objectivesToData(p.Objectives))
	if err != nil {
		return fmt.Errorf("marshal objectives: %w", err)
	}
	milestones, err := json.Marshal(milestonesToData(p.Milestones))
	if err != nil {
		return fmt.Errorf("marshal milestones: %w", err)
	}
	progress, err := json.Marshal(progressData{
		CompletedObjectives: p.Progress.CompletedObjectives,
		OverallProgress:     p.Progress.OverallProgress,
		CurrentMilestone:    p.Progress.CurrentMilestone,
	})
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	_, err = ps.db.ExecContext(ctx,
		`INSERT INTO paths (id, user_id, subject, current_level, objectives, milestones, progress, version)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
		p.ID, p.UserID, p.Subject, p.CurrentLevel.String(),
		string(objectives), string(milestones), string(progress),
	)
	if err != nil {
		return fmt.Errorf("insert path: %w", err)
	}
	return nil
}

func (ps *pathStore) Find(ctx context.Context, id string) (*path.Path, error) {
	row := ps.db.QueryRowContext(ctx,
		`SELECT id, user_id, subject, current_level, objectives, milestones, progress, version
		 FROM paths WHERE id = ?`, id)

	var p path.Path
	var levelStr, objectivesJSON, milestonesJSON, progressJSON string
	err := row.Scan(&p.ID, &p.UserID, &p.Subject, &levelStr,
		&objectivesJSON, &milestonesJSON, &progressJSON, &p.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", path.ErrPathNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("scan path: %w", err)
	}

	p.CurrentLevel, err = difficulty.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", id, err)
	}

	var objData []objectiveData
	if err := json.Unmarshal([]byte(objectivesJSON), &objData); err != nil {
		return nil, fmt.Errorf("decode objectives: %w", err)
	}
	p.Objectives = objectivesFromData(objData)

	var msData []milestoneData
	if err := json.Unmarshal([]byte(milestonesJSON), &msData); err != nil {
		return nil, fmt.Errorf("decode milestones: %w", err)
	}
	p.Milestones = milestonesFromData(msData)

	var progData progressData
	if err := json.Unmarshal([]byte(progressJSON), &progData); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	p.Progress = path.Progress{
		CompletedObjectives: progData.CompletedObjectives,
		OverallProgress:     progData.OverallProgress,
		CurrentMilestone:    progData.CurrentMilestone,
	}

	p.Adaptations, err = ps.loadAdaptations(ctx, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (ps *pathStore) loadAdaptations(ctx context.Context, pathID string) ([]path.Adaptation, error) {
	rows, err := ps.db.QueryContext(ctx,
		`SELECT id, created_at, reason, changes
		 FROM adaptations WHERE path_id = ? ORDER BY created_at, id`, pathID)
	if err != nil {
		return nil, fmt.Errorf("query adaptations: %w", err)
	}
	defer rows.Close()

	var adaptations []path.Adaptation
	for rows.Next() {
		var a path.Adaptation
		var createdAt, changesJSON string
		if err := rows.Scan(&a.ID, &createdAt, &a.Reason, &changesJSON); err != nil {
			return nil, fmt.Errorf("scan adaptation: %w", err)
		}
		a.Timestamp, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse adaptation timestamp: %w", err)
		}

		var cd changesData
		if err := json.Unmarshal([]byte(changesJSON), &cd); err != nil {
			return nil, fmt.Errorf("decode adaptation changes: %w", err)
		}
		prev, err := difficulty.ParseLevel(cd.PreviousLevel)
		if err != nil {
			return nil, fmt.Errorf("adaptation %q: %w", a.ID, err)
		}
		next, err := difficulty.ParseLevel(cd.NewLevel)
		if err != nil {
			return nil, fmt.Errorf("adaptation %q: %w", a.ID, err)
		}
		a.Changes = path.Changes{
			PreviousLevel: prev,
			NewLevel:      next,
			Direction:     cd.Direction,
			Confidence:    cd.Confidence,
		}
		adaptations = append(adaptations, a)
	}
	return adaptations, rows.Err()
}

func (ps *pathStore) UpdateLevel(ctx context.Context, id string, level difficulty.Level, expectedVersion int64) (*path.Path, error) {
	res, err := ps.db.ExecContext(ctx,
		`UPDATE paths SET current_level = ?, version = version + 1
		 WHERE id = ? AND version = ?`,
		level.String(), id, expectedVersion)
	if err != nil {
		return nil, fmt.Errorf("update level: %w", err)
	}
	if err := ps.checkWrite(ctx, res, id); err != nil {
		return nil, err
	}
	return ps.Find(ctx, id)
}

func (ps *pathStore) AppendAdaptation(ctx context.Context, id string, a path.Adaptation) (*path.Path, error) {
	if err := ps.insertAdaptation(ctx, ps.db, id, a); err != nil {
		return nil, err
	}
	return ps.Find(ctx, id)
}

// ApplyAdaptation writes the tier change and its audit record in one
// transaction, so neither can land without the other.
func (ps *pathStore) ApplyAdaptation(ctx context.Context, id string, level difficulty.Level, expectedVersion int64, a path.Adaptation) (*path.Path, error) {
	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE paths SET current_level = ?, version = version + 1
		 WHERE id = ? AND version = ?`,
		level.String(), id, expectedVersion)
	if err != nil {
		return nil, fmt.Errorf("update level: %w", err)
	}
	if err := ps.checkWrite(ctx, res, id); err != nil {
		return nil, err
	}

	if err := ps.insertAdaptation(ctx, tx, id, a); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return ps.Find(ctx, id)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// insertAdaptation appends an audit record. Re-inserting an existing
// adaptation ID is a no-op, which is what makes retries idempotent.
func (ps *pathStore) insertAdaptation(ctx context.Context, db execer, pathID string, a path.Adaptation) error {
	changes, err := json.Marshal(changesData{
		PreviousLevel: a.Changes.PreviousLevel.String(),
		NewLevel:      a.Changes.NewLevel.String(),
		Direction:     a.Changes.Direction,
		Confidence:    a.Changes.Confidence,
	})
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT OR IGNORE INTO adaptations (id, path_id, created_at, reason, changes)
		 VALUES (?, ?, ?, ?, ?)`,
		a.ID, pathID, a.Timestamp.UTC().Format(time.RFC3339Nano), a.Reason, string(changes))
	if err != nil {
		return fmt.Errorf("insert adaptation: %w", err)
	}
	return nil
}

// checkWrite distinguishes a missing path from a version conflict when
// a guarded UPDATE touched no rows.
func (ps *pathStore) checkWrite(ctx context.Context, res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}

	var exists int
	err = ps.db.QueryRowContext(ctx, `SELECT 1 FROM paths WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", path.ErrPathNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("check path: %w", err)
	}
	return fmt.Errorf("%w: path %q", path.ErrVersionConflict, id)
}
