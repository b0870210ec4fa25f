package hrc20engine

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "print the engine's own address and public key",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}
		addr, pubkeyHex, err := orch.GetAddress()
		if err != nil {
			return err
		}
		fmt.Printf("address: %s\npublic_key: %s\n", addr, pubkeyHex)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)
}
