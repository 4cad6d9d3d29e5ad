// Package engine orchestrates the adaptive-difficulty decision pipeline:
// analyze recent performance, decide a tier adjustment, sequence the
// next objectives, and evaluate tier-advancement competency.
//
// All decisions are pure computations over store snapshots; the only
// writes happen through the Applier. The engine holds no shared mutable
// state, so callers are responsible for serializing adjustments per
// (user, path) if concurrent requests matter.
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/competency"
	"github.com/abhisek/learnpath/internal/difficulty"
	"github.com/abhisek/learnpath/internal/path"
	"github.com/abhisek/learnpath/internal/performance"
	"github.com/abhisek/learnpath/internal/sequencer"
)

// DefaultSessionWindow is how many recent sessions feed an analysis.
const DefaultSessionWindow = 5

// Options wires the engine's collaborators and tunables.
type Options struct {
	Paths    path.PathStore
	Sessions path.SessionStore
	Skills   path.SkillStore

	// Config, ChallengeConfig and Table fall back to package defaults
	// when zero-valued.
	Config          difficulty.Config
	ChallengeConfig difficulty.ChallengeConfig
	Table           competency.Table

	// SessionWindow defaults to DefaultSessionWindow.
	SessionWindow int

	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Engine is the adaptive-difficulty and content-sequencing engine.
type Engine struct {
	paths    path.PathStore
	sessions path.SessionStore
	skills   path.SkillStore
	applier  *path.Applier

	cfg    difficulty.Config
	chCfg  difficulty.ChallengeConfig
	table  competency.Table
	window int
	logger *zap.Logger
}

// New creates an Engine from options, filling in defaults.
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.SessionWindow <= 0 {
		opts.SessionWindow = DefaultSessionWindow
	}
	if opts.Config == (difficulty.Config{}) {
		opts.Config = difficulty.DefaultConfig()
	}
	if opts.ChallengeConfig == (difficulty.ChallengeConfig{}) {
		opts.ChallengeConfig = difficulty.DefaultChallengeConfig()
	}
	if opts.Table == nil {
		opts.Table = competency.DefaultTable()
	}

	return &Engine{
		paths:    opts.Paths,
		sessions: opts.Sessions,
		skills:   opts.Skills,
		applier:  path.NewApplier(opts.Paths, opts.Logger),
		cfg:      opts.Config,
		chCfg:    opts.ChallengeConfig,
		table:    opts.Table,
		window:   opts.SessionWindow,
		logger:   opts.Logger,
	}
}

// AdaptOutcome reports one adaptation pass over a path.
type AdaptOutcome struct {
	Path     *path.Path
	Analysis performance.Analysis
	// Adjustment is nil when no tier change was warranted.
	Adjustment *difficulty.Adjustment
}

// AdaptPath runs the full adaptation pipeline for one path: analyze the
// recent session window, decide, and persist any resulting adjustment.
// An empty session window is not an error; it yields a neutral outcome
// with no adjustment.
func (e *Engine) AdaptPath(ctx context.Context, userID, pathID string) (*AdaptOutcome, error) {
	p, err := e.paths.Find(ctx, pathID)
	if err != nil {
		return nil, fmt.Errorf("find path: %w", err)
	}

	sessions, err := e.sessions.RecentSessions(ctx, userID, pathID, e.window)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}

	analysis := performance.Analyze(sessions)
	adj := difficulty.Decide(p.CurrentLevel, analysis, e.cfg)

	e.logger.Info("adaptation analysis",
		zap.String("path_id", pathID),
		zap.Int("sessions", analysis.SessionCount),
		zap.Float64("avg_comprehension", analysis.AvgComprehension),
		zap.String("trend", string(analysis.Trend)),
		zap.Float64("consistency", analysis.Consistency),
		zap.Bool("adjusting", adj != nil),
	)

	if adj == nil {
		return &AdaptOutcome{Path: p, Analysis: analysis}, nil
	}

	updated, err := e.applier.Apply(ctx, pathID, adj)
	if err != nil {
		return nil, err
	}
	return &AdaptOutcome{Path: updated, Analysis: analysis, Adjustment: adj}, nil
}

// NextContent sequences the path's objectives for the learner's current
// completion and mastery state. A structurally broken objective set
// (duplicate IDs, dangling prerequisites, cycles) is an error.
func (e *Engine) NextContent(ctx context.Context, userID, pathID string) (sequencer.Result, error) {
	p, err := e.paths.Find(ctx, pathID)
	if err != nil {
		return sequencer.Result{}, fmt.Errorf("find path: %w", err)
	}
	if err := sequencer.Validate(p.Objectives); err != nil {
		return sequencer.Result{}, fmt.Errorf("path %q: %w", pathID, err)
	}

	progress, err := e.skills.SkillProgress(ctx, userID)
	if err != nil {
		return sequencer.Result{}, fmt.Errorf("skill progress: %w", err)
	}

	result := sequencer.Sequence(p.Objectives, p.CompletedSet(), path.MasteredSet(progress))

	e.logger.Debug("content sequenced",
		zap.String("path_id", pathID),
		zap.Int("next", len(result.NextObjectives)),
		zap.Int("blocked", len(result.BlockedObjectives)),
	)
	return result, nil
}

// PlanPath returns the path's complete objective ordering, every
// objective placed after its prerequisites. The set is validated first,
// so a cyclic or otherwise broken path errors instead of producing a
// best-effort order.
func (e *Engine) PlanPath(ctx context.Context, pathID string) ([]path.Objective, error) {
	p, err := e.paths.Find(ctx, pathID)
	if err != nil {
		return nil, fmt.Errorf("find path: %w", err)
	}
	if err := sequencer.Validate(p.Objectives); err != nil {
		return nil, fmt.Errorf("path %q: %w", pathID, err)
	}

	ordered := sequencer.TopologicalOrder(p.Objectives)
	e.logger.Debug("path planned",
		zap.String("path_id", pathID),
		zap.Int("objectives", len(ordered)),
	)
	return ordered, nil
}

// EvaluateCompetency scores the learner against the checklist for the
// requested tier. The evaluation is read-only; acting on the result is
// the caller's decision.
func (e *Engine) EvaluateCompetency(ctx context.Context, userID, subject string, level difficulty.Level) (competency.Result, error) {
	progress, err := e.skills.SkillProgress(ctx, userID)
	if err != nil {
		return competency.Result{}, fmt.Errorf("skill progress: %w", err)
	}

	byID := make(map[string]path.SkillProgress, len(progress))
	for _, sp := range progress {
		byID[sp.SkillID] = sp
	}

	result, err := competency.Evaluate(subject, level, byID, e.table)
	if err != nil {
		return competency.Result{}, err
	}

	e.logger.Info("competency evaluated",
		zap.String("user_id", userID),
		zap.String("subject", subject),
		zap.String("level", level.String()),
		zap.Int("score", result.Score),
		zap.Bool("passed", result.Passed),
		zap.Bool("ready", result.ReadyForAdvancement),
	)
	return result, nil
}

// AnalyzeChallenge classifies the learner's recent comprehension against
// the optimal challenge band. Advisory only; nothing is persisted.
func (e *Engine) AnalyzeChallenge(ctx context.Context, userID, pathID string) (difficulty.ChallengeAnalysis, error) {
	sessions, err := e.sessions.RecentSessions(ctx, userID, pathID, e.window)
	if err != nil {
		return difficulty.ChallengeAnalysis{}, fmt.Errorf("recent sessions: %w", err)
	}

	scores := make([]float64, len(sessions))
	for i, s := range sessions {
		scores[i] = s.ComprehensionScore
	}

	analysis := difficulty.AnalyzeChallenge(scores, e.chCfg)
	e.logger.Info("challenge band analyzed",
		zap.String("path_id", pathID),
		zap.Float64("challenge_level", analysis.CurrentChallengeLevel),
		zap.Bool("optimal", analysis.IsOptimal),
		zap.String("recommendation", string(analysis.Adjustment)),
	)
	return analysis, nil
}
