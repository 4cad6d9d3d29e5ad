package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge <user-id> <path-id>",
	Short: "Check whether the learner sits in the optimal challenge band",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		analysis, err := eng.AnalyzeChallenge(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("challenge level:  %.1f%%\n", analysis.CurrentChallengeLevel)
		fmt.Printf("optimal:          %t\n", analysis.IsOptimal)
		fmt.Printf("recommendation:   %s\n", analysis.Adjustment)
		fmt.Printf("target:           %.1f%%\n", analysis.TargetComprehension)
		return nil
	},
}
