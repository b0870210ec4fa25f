package hrc20engine

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listFrom string
	listAmt  string
)

var listCmd = &cobra.Command{
	Use:   "list [tick]",
	Short: "list an HRC-20 token for marketplace sale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}
		result, err := orch.ListToken(cmdContext(), listFrom, args[0], listAmt)
		if err != nil {
			return err
		}
		fmt.Printf("commit_tx_id: %s\nredeem_script_hex: %s\np2sh_address: %s\n", result.CommitTxID, result.RedeemScriptHex, result.P2SHAddress)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFrom, "from", "", "funding address (required)")
	listCmd.Flags().StringVar(&listAmt, "amt", "", "amount (required)")
	listCmd.MarkFlagRequired("from")
	listCmd.MarkFlagRequired("amt")
	rootCmd.AddCommand(listCmd)
}
