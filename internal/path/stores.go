package path

import (
	"context"
	"errors"

	"github.com/abhisek/learnpath/internal/difficulty"
	"github.com/abhisek/learnpath/internal/performance"
)

var (
	// ErrPathNotFound is returned when a path ID resolves to nothing.
	// The engine never synthesizes a default path.
	ErrPathNotFound = errors.New("learning path not found")

	// ErrVersionConflict is returned by UpdateLevel when the expected
	// version no longer matches the stored path.
	ErrVersionConflict = errors.New("path version conflict")
)

// PathStore is the narrow persistence surface the engine writes through.
type PathStore interface {
	// Find returns the path with its adaptation history.
	Find(ctx context.Context, id string) (*Path, error)

	// UpdateLevel writes a new difficulty tier. The write only succeeds
	// when expectedVersion matches the stored version; otherwise it
	// fails with ErrVersionConflict and changes nothing.
	UpdateLevel(ctx context.Context, id string, level difficulty.Level, expectedVersion int64) (*Path, error)

	// AppendAdaptation appends an audit record. Appending an adaptation
	// ID that already exists is a no-op, making retries idempotent.
	AppendAdaptation(ctx context.Context, id string, a Adaptation) (*Path, error)
}

// AdaptationApplier is an optional PathStore extension that applies a
// level change and its audit record inside one transactional boundary.
type AdaptationApplier interface {
	ApplyAdaptation(ctx context.Context, id string, level difficulty.Level, expectedVersion int64, a Adaptation) (*Path, error)
}

// SessionStore supplies recent session windows, oldest first.
type SessionStore interface {
	RecentSessions(ctx context.Context, userID, pathID string, limit int) ([]performance.Session, error)
}

// SkillStore supplies a learner's per-skill mastery state.
type SkillStore interface {
	SkillProgress(ctx context.Context, userID string) ([]SkillProgress, error)
}
