package hrc20engine

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	burnFrom string
	burnAmt  string
)

var burnCmd = &cobra.Command{
	Use:   "burn [tick]",
	Short: "burn an HRC-20 token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}
		result, err := orch.BurnToken(cmdContext(), burnFrom, args[0], burnAmt)
		if err != nil {
			return err
		}
		fmt.Printf("commit_tx_id: %s\nredeem_script_hex: %s\np2sh_address: %s\n", result.CommitTxID, result.RedeemScriptHex, result.P2SHAddress)
		return nil
	},
}

func init() {
	burnCmd.Flags().StringVar(&burnFrom, "from", "", "funding address (required)")
	burnCmd.Flags().StringVar(&burnAmt, "amt", "", "amount (required)")
	burnCmd.MarkFlagRequired("from")
	burnCmd.MarkFlagRequired("amt")
	rootCmd.AddCommand(burnCmd)
}
