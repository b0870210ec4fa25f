package hrc20engine

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sendFrom string

var sendCmd = &cobra.Command{
	Use:   "send [tick]",
	Short: "accept an HRC-20 marketplace listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}
		result, err := orch.SendToken(cmdContext(), sendFrom, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("commit_tx_id: %s\nredeem_script_hex: %s\np2sh_address: %s\n", result.CommitTxID, result.RedeemScriptHex, result.P2SHAddress)
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVar(&sendFrom, "from", "", "funding address (required)")
	sendCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(sendCmd)
}
