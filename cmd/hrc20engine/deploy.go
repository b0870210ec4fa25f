package hrc20engine

import (
	"fmt"

	"github.com/hoosat-labs/hrc20-engine/internal/commitreveal"
	"github.com/spf13/cobra"
)

var (
	deployFrom string
	deployMax  string
	deployLim  string
	deployDec  string
)

var deployCmd = &cobra.Command{
	Use:   "deploy [tick]",
	Short: "deploy an HRC-20 token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := buildOrchestrator()
		if err != nil {
			return err
		}

		var dec *string
		if deployDec != "" {
			dec = &deployDec
		}

		result, err := orch.DeployToken(cmdContext(), deployFrom, args[0], deployMax, deployLim, dec, nil)
		if err != nil {
			return err
		}

		switch result.Kind {
		case commitreveal.Consolidating:
			fmt.Printf("wallet fragmented: issued consolidation tx %s, retry deploy in ~10s\n", result.ConsolidationTxID)
		case commitreveal.Committed:
			fmt.Printf("commit_tx_id: %s\nredeem_script_hex: %s\np2sh_address: %s\n", result.CommitTxID, result.RedeemScriptHex, result.P2SHAddress)
		}
		return nil
	},
}

func init() {
	deployCmd.Flags().StringVar(&deployFrom, "from", "", "funding address (required)")
	deployCmd.Flags().StringVar(&deployMax, "max", "", "maximum supply (required)")
	deployCmd.Flags().StringVar(&deployLim, "lim", "", "per-mint limit (required)")
	deployCmd.Flags().StringVar(&deployDec, "dec", "", "decimals (optional)")
	deployCmd.MarkFlagRequired("from")
	deployCmd.MarkFlagRequired("max")
	deployCmd.MarkFlagRequired("lim")
	rootCmd.AddCommand(deployCmd)
}
