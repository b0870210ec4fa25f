package hrc20engine

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	mintFrom      string
	mintRecipient string
)

var mintCmd = &cobra.Command{
	Use:   "mint [tick]",
	Short: "mint an HRC-20 token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}
		var recipient *string
		if mintRecipient != "" {
			recipient = &mintRecipient
		}
		result, err := orch.MintToken(cmdContext(), mintFrom, args[0], recipient)
		if err != nil {
			return err
		}
		fmt.Printf("commit_tx_id: %s\nredeem_script_hex: %s\np2sh_address: %s\n", result.CommitTxID, result.RedeemScriptHex, result.P2SHAddress)
		return nil
	},
}

func init() {
	mintCmd.Flags().StringVar(&mintFrom, "from", "", "funding address (required)")
	mintCmd.Flags().StringVar(&mintRecipient, "to", "", "recipient address (optional)")
	mintCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(mintCmd)
}
