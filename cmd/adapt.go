package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var adaptCmd = &cobra.Command{
	Use:   "adapt <user-id> <path-id>",
	Short: "Analyze recent performance and adjust the path's difficulty",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		outcome, err := eng.AdaptPath(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		a := outcome.Analysis
		fmt.Printf("sessions analyzed:  %d\n", a.SessionCount)
		fmt.Printf("avg comprehension:  %.1f%%\n", a.AvgComprehension)
		fmt.Printf("trend:              %s\n", a.Trend)
		fmt.Printf("consistency:        %.1f\n", a.Consistency)
		if len(a.StrugglingAreas) > 0 {
			fmt.Printf("struggling areas:   %v\n", a.StrugglingAreas)
		}

		if outcome.Adjustment == nil {
			fmt.Printf("decision:           no change (level stays %s)\n", outcome.Path.CurrentLevel)
			return nil
		}
		fmt.Printf("decision:           %s to %s (confidence %.0f%%)\n",
			outcome.Adjustment.Direction, outcome.Adjustment.NewLevel, outcome.Adjustment.Confidence)
		fmt.Printf("reason:             %s\n", outcome.Adjustment.Reason)
		return nil
	},
}
