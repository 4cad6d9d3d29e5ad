package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/learnpath/internal/competency"
	"github.com/abhisek/learnpath/internal/engine"
	"github.com/abhisek/learnpath/internal/store"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "learnpath",
	Short: "Adaptive learning path engine",
	Long: "Learnpath decides when a learning path's difficulty should change,\n" +
		"which objectives to surface next, and whether a learner is ready to\n" +
		"advance a tier. Decisions are deterministic and fully auditable.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNPATH_DB env var)")
	rootCmd.PersistentFlags().String("skill-table", "", "Path to a JSON skill-table file (defaults to built-in tables)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(adaptCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(competencyCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LEARNPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openEngine opens the store and builds an engine wired to it.
// The caller must close the returned store.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	table := competency.Table(nil)
	if tablePath, _ := cmd.Flags().GetString("skill-table"); tablePath != "" {
		table, err = competency.LoadTable(tablePath)
		if err != nil {
			st.Close()
			return nil, nil, err
		}
	}

	eng := engine.New(engine.Options{
		Paths:    st.PathStore(),
		Sessions: st.SessionStore(),
		Skills:   st.SkillStore(),
		Table:    table,
		Logger:   logger,
	})
	return eng, st, nil
}
