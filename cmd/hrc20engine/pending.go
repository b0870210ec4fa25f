package hrc20engine

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "list pending reveals",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}
		for _, p := range orch.GetPendingReveals() {
			fmt.Printf("%s\tscript_length=%d\n", p.CommitTxID, p.ScriptLength)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pendingCmd)
}
