package hrc20engine

import (
	"fmt"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "get the confirmed and pending balance for an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}
		bal, err := orch.GetBalance(cmdContext(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("confirmed: %d sompi\npending: %d sompi\n", bal.Confirmed, bal.Pending)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
