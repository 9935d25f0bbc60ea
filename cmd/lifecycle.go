package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sizedsort/harness"
)

var lifecycleCmd = &cobra.Command{
	Use:   "lifecycle",
	Short: "Walk a manually allocated value through copy, move and release",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := harness.Lifecycle()
		for _, step := range steps {
			fmt.Fprintf(cmd.OutOrStdout(), "%-32s sizes=%v live=%d\n", step.Op, step.Sizes, step.LiveBlocks)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(lifecycleCmd)
}
