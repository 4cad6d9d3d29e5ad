package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/difficulty"
)

var competencyCmd = &cobra.Command{
	Use:   "competency <user-id> <subject> <level>",
	Short: "Evaluate whether a learner can advance to a difficulty tier",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := difficulty.ParseLevel(args[2])
		if err != nil {
			return err
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		result, err := eng.EvaluateCompetency(cmd.Context(), args[0], args[1], level)
		if err != nil {
			return err
		}

		fmt.Printf("skills assessed: %v\n", result.SkillsAssessed)
		fmt.Printf("score:           %d\n", result.Score)
		fmt.Printf("passed:          %t\n", result.Passed)
		if len(result.WeakAreas) > 0 {
			fmt.Printf("weak areas:      %v\n", result.WeakAreas)
		}
		fmt.Printf("ready to advance: %t\n", result.ReadyForAdvancement)
		return nil
	},
}
