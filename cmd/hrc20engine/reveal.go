package hrc20engine

import (
	"fmt"

	"github.com/spf13/cobra"
)

var revealRecipient string

var revealCmd = &cobra.Command{
	Use:   "reveal [commit_tx_id]",
	Short: "broadcast the reveal transaction for a pending commit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}
		revealTxID, err := orch.RevealOperation(cmdContext(), args[0], revealRecipient)
		if err != nil {
			return err
		}
		fmt.Printf("reveal_tx_id: %s\n", revealTxID)
		return nil
	},
}

func init() {
	revealCmd.Flags().StringVar(&revealRecipient, "recipient", "", "address to receive the revealed funds (required)")
	revealCmd.MarkFlagRequired("recipient")
	rootCmd.AddCommand(revealCmd)
}
