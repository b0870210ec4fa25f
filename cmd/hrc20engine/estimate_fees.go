package hrc20engine

import (
	"fmt"

	"github.com/spf13/cobra"
)

var estimateFeesCmd = &cobra.Command{
	Use:   "estimate-fees [payload_json]",
	Short: "estimate the commit and reveal fee for a payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}
		commitFee, revealFee := orch.EstimateFees(args[0])
		fmt.Printf("commit_fee: %d sompi\nreveal_fee: %d sompi\n", commitFee, revealFee)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(estimateFeesCmd)
}
