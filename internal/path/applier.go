package path

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/difficulty"
)

// PartialAdaptationError reports that a tier change was persisted but
// its audit record was not. Callers can reconcile by retrying
// AppendAdaptation with the carried record; the append is idempotent.
type PartialAdaptationError struct {
	PathID     string
	Adaptation Adaptation
	Err        error
}

func (e *PartialAdaptationError) Error() string {
	return fmt.Sprintf("partial adaptation on path %s: level updated but audit append failed: %v", e.PathID, e.Err)
}

func (e *PartialAdaptationError) Unwrap() error { return e.Err }

// Applier persists difficulty adjustment decisions: the new tier first,
// then the append-only adaptation record.
type Applier struct {
	paths  PathStore
	logger *zap.Logger
	now    func() time.Time
}

// NewApplier creates an Applier. A nil logger is replaced with a no-op.
func NewApplier(paths PathStore, logger *zap.Logger) *Applier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Applier{paths: paths, logger: logger, now: time.Now}
}

// Apply writes the adjustment's tier and its audit record. On a version
// conflict it reloads the path and retries the whole decision once; the
// engine holds no lock, so a concurrent adjustment may have won.
//
// If the tier write succeeds but the audit append fails, Apply returns
// the updated path together with a *PartialAdaptationError.
func (ap *Applier) Apply(ctx context.Context, pathID string, adj *difficulty.Adjustment) (*Path, error) {
	p, err := ap.paths.Find(ctx, pathID)
	if err != nil {
		return nil, fmt.Errorf("find path: %w", err)
	}

	record := Adaptation{
		ID:        uuid.NewString(),
		Timestamp: ap.now().UTC(),
		Reason:    adj.Reason,
		Changes: Changes{
			PreviousLevel: p.CurrentLevel,
			NewLevel:      adj.NewLevel,
			Direction:     string(adj.Direction),
			Confidence:    adj.Confidence,
		},
	}

	// Prefer a single transactional boundary when the store offers one.
	if tx, ok := ap.paths.(AdaptationApplier); ok {
		updated, err := ap.applyTx(ctx, tx, p, adj, record)
		if err != nil {
			return nil, err
		}
		ap.logApplied(pathID, record)
		return updated, nil
	}

	updated, err := ap.paths.UpdateLevel(ctx, pathID, adj.NewLevel, p.Version)
	if errors.Is(err, ErrVersionConflict) {
		p, err = ap.paths.Find(ctx, pathID)
		if err != nil {
			return nil, fmt.Errorf("reload path after conflict: %w", err)
		}
		record.Changes.PreviousLevel = p.CurrentLevel
		updated, err = ap.paths.UpdateLevel(ctx, pathID, adj.NewLevel, p.Version)
	}
	if err != nil {
		return nil, fmt.Errorf("update level: %w", err)
	}

	final, err := ap.paths.AppendAdaptation(ctx, pathID, record)
	if err != nil {
		// The tier write already landed; hand back the updated path so
		// the caller can retry the append with the carried record.
		return updated, &PartialAdaptationError{PathID: pathID, Adaptation: record, Err: err}
	}

	ap.logApplied(pathID, record)
	return final, nil
}

func (ap *Applier) applyTx(ctx context.Context, tx AdaptationApplier, p *Path, adj *difficulty.Adjustment, record Adaptation) (*Path, error) {
	updated, err := tx.ApplyAdaptation(ctx, p.ID, adj.NewLevel, p.Version, record)
	if errors.Is(err, ErrVersionConflict) {
		p, err = ap.paths.Find(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("reload path after conflict: %w", err)
		}
		record.Changes.PreviousLevel = p.CurrentLevel
		updated, err = tx.ApplyAdaptation(ctx, p.ID, adj.NewLevel, p.Version, record)
	}
	if err != nil {
		return nil, fmt.Errorf("apply adaptation: %w", err)
	}
	return updated, nil
}

func (ap *Applier) logApplied(pathID string, record Adaptation) {
	ap.logger.Info("difficulty adaptation applied",
		zap.String("path_id", pathID),
		zap.String("adaptation_id", record.ID),
		zap.String("from", record.Changes.PreviousLevel.String()),
		zap.String("to", record.Changes.NewLevel.String()),
		zap.Float64("confidence", record.Changes.Confidence),
	)
}
