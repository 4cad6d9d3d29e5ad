package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <path-id>",
	Short: "Show a path's objectives in prerequisite order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ordered, err := eng.PlanPath(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if len(ordered) == 0 {
			fmt.Println("path has no objectives")
			return nil
		}
		for i, obj := range ordered {
			fmt.Printf("%d. %s (%s, ~%s)\n", i+1, obj.Title, obj.ID, obj.EstimatedDuration)
			if len(obj.Prerequisites) > 0 {
				fmt.Printf("   after: %s\n", strings.Join(obj.Prerequisites, ", "))
			}
		}
		return nil
	},
}
