package hrc20engine

import (
	"fmt"

	"github.com/spf13/cobra"
)

var consolidateCmd = &cobra.Command{
	Use:   "consolidate [from_address]",
	Short: "consolidate a fragmented wallet's UTXOs into one self-pay",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}
		txID, err := orch.ConsolidateUtxos(cmdContext(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("tx_id: %s\n", txID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(consolidateCmd)
}
