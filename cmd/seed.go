package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with a demo learner and path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := store.Seed(cmd.Context(), st); err != nil {
			if errors.Is(err, store.ErrAlreadySeeded) {
				fmt.Println("already seeded; nothing to do")
				return nil
			}
			return err
		}
		fmt.Println("seeded demo learner (user \"demo\", path \"demo-math\")")
		return nil
	},
}
