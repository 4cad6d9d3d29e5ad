package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next <user-id> <path-id>",
	Short: "Show the next eligible objectives for a learning path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		result, err := eng.NextContent(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		if len(result.NextObjectives) == 0 {
			fmt.Println("no objectives available")
		}
		for i, obj := range result.NextObjectives {
			fmt.Printf("%d. %s (%s, ~%s)\n", i+1, obj.Title, obj.ID, obj.EstimatedDuration)
		}
		if len(result.BlockedObjectives) > 0 {
			fmt.Printf("blocked: %d objective(s)\n", len(result.BlockedObjectives))
			for _, obj := range result.BlockedObjectives {
				fmt.Printf("  - %s (needs %v)\n", obj.ID, obj.Prerequisites)
			}
		}
		if len(result.RecommendedReview) > 0 {
			fmt.Printf("recommended review: %v\n", result.RecommendedReview)
		}
		return nil
	},
}
