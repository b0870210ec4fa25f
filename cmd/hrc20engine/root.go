// Package hrc20engine is the operator CLI surface (spec section 6), shaped
// exactly like the teacher's cmd/root.go: a persistent flag for the node
// endpoint plus one subcommand per operator call.
package hrc20engine

import (
	"context"
	"fmt"
	"os"

	"github.com/hoosat-labs/hrc20-engine/internal/config"
	"github.com/hoosat-labs/hrc20-engine/internal/hexcodec"
	"github.com/hoosat-labs/hrc20-engine/internal/nodeclient"
	"github.com/hoosat-labs/hrc20-engine/internal/orchestrator"
	"github.com/hoosat-labs/hrc20-engine/internal/signer"
	"github.com/spf13/cobra"
)

var (
	apiURL   string
	fakeMode bool
)

var rootCmd = &cobra.Command{
	Use:   "hrc20engine",
	Short: "HRC-20 commit/reveal transaction engine for the Hoosat chain",
	Long: `hrc20engine composes, signs, and broadcasts the commit and reveal
transactions every HRC-20 token state change requires.

It holds no private keys: signing requests go to an external
threshold-signing service over NATS. Use --fake for a local dry run
against an in-memory node and signer.`,
}

// Execute runs the root command, matching the teacher's Execute() + exit(1)
// shape exactly.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "node API URL (overrides HRC20_NODE_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&fakeMode, "fake", false, "use an in-memory node client and signer for local dry runs")
}

// buildOrchestrator wires an Orchestrator from the environment and CLI
// flags, matching the teacher's pattern of reading configuration once at
// the boundary and passing it down explicitly.
func buildOrchestrator() (*orchestrator.Orchestrator, error) {
	cfg := config.FromEnv()
	if apiURL != "" {
		cfg.NodeAPIURL = apiURL
	}

	if fakeMode {
		fake, err := signer.NewFakeSigner()
		if err != nil {
			return nil, fmt.Errorf("build fake signer: %w", err)
		}
		if cfg.UseECDSA {
			cfg.SignerPubkeyHex = hexcodec.Encode(fake.ECDSAPubkey())
		} else {
			cfg.SignerPubkeyHex = hexcodec.Encode(fake.SchnorrPubkey())
		}
		node := nodeclient.NewFakeNodeClient()
		return orchestrator.New(cfg, node, fake)
	}

	node := nodeclient.NewHTTPNodeClient(cfg.NodeAPIURL)

	if cfg.NATSURL == "" {
		return nil, fmt.Errorf("NATS_URL must be set to reach the remote signer (or pass --fake for a dry run)")
	}
	nats, err := signer.NewNATSSigner(cfg.NATSURL, cfg.SignerSubjectPrefix)
	if err != nil {
		return nil, fmt.Errorf("connect remote signer: %w", err)
	}
	return orchestrator.New(cfg, node, nats)
}

func cmdContext() context.Context {
	return context.Background()
}
