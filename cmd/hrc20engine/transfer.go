package hrc20engine

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	transferFrom string
	transferTo   string
	transferAmt  string
)

var transferCmd = &cobra.Command{
	Use:   "transfer [tick]",
	Short: "transfer an HRC-20 token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}
		result, err := orch.TransferToken(cmdContext(), transferFrom, args[0], transferAmt, transferTo)
		if err != nil {
			return err
		}
		fmt.Printf("commit_tx_id: %s\nredeem_script_hex: %s\np2sh_address: %s\n", result.CommitTxID, result.RedeemScriptHex, result.P2SHAddress)
		return nil
	},
}

func init() {
	transferCmd.Flags().StringVar(&transferFrom, "from", "", "funding address (required)")
	transferCmd.Flags().StringVar(&transferTo, "to", "", "recipient address (required)")
	transferCmd.Flags().StringVar(&transferAmt, "amt", "", "amount (required)")
	transferCmd.MarkFlagRequired("from")
	transferCmd.MarkFlagRequired("to")
	transferCmd.MarkFlagRequired("amt")
	rootCmd.AddCommand(transferCmd)
}
