package hrc20engine

import (
	"fmt"

	"github.com/spf13/cobra"
)

var redeemScriptCmd = &cobra.Command{
	Use:   "redeem-script [commit_tx_id]",
	Short: "print the stored redeem script for a pending commit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}
		scriptHex, ok := orch.GetRedeemScript(args[0])
		if !ok {
			return fmt.Errorf("no pending reveal for commit id %s", args[0])
		}
		fmt.Println(scriptHex)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(redeemScriptCmd)
}
