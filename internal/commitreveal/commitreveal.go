// Package commitreveal assembles the commit/reveal transaction pair that
// every HRC-20 state change requires (spec section 4.4), grounded in
// other_examples' inscribe.go buildCommitTx/completeRevealTx split and its
// MPC-signing handoff.
package commitreveal

import (
	"github.com/hoosat-labs/hrc20-engine/internal/address"
	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
	"github.com/hoosat-labs/hrc20-engine/internal/payload"
	"github.com/hoosat-labs/hrc20-engine/internal/script"
	"github.com/hoosat-labs/hrc20-engine/internal/txmodel"
)

// Dust threshold constants, named per the Design Notes rather than left as
// scattered literals in fee-estimation code.
const (
	MinCommitAmount         uint64 = 1000        // sompi; floor on the commit output/change
	RecommendedCommitAmount uint64 = 10_000_000  // sompi; operator guidance, not enforced
	DeploySingleUTXOFloor   uint64 = 2_100 * 1e8 // sompi; deploy's auto-consolidate trigger
)

// CommitPair is the tuple produced by BuildCommit (spec section 3).
type CommitPair struct {
	CommitTx       *txmodel.Transaction
	RedeemScript   []byte
	P2SHScriptHash [32]byte
	P2SHAddress    string
}

// BuildCommit assembles the redeem script, derives its P2SH address, and
// builds the unsigned commit transaction.
func BuildCommit(
	networkPrefix string,
	signerPubkey []byte,
	payloadJSON string,
	sourceUTXO txmodel.UTXO,
	commitAmount uint64,
	operationFee uint64,
	changeScriptPK txmodel.ScriptPublicKey,
	changeAddress string,
	useECDSA bool,
) (*CommitPair, error) {
	if sourceUTXO.Amount < commitAmount+operationFee {
		return nil, &hrc20err.InsufficientFunds{
			Required:  commitAmount + operationFee,
			Available: sourceUTXO.Amount,
		}
	}

	redeemScript := script.BuildRedeemScript(signerPubkey, []byte(payloadJSON), useECDSA)
	p2shHash := script.HashRedeemScript(redeemScript)

	p2shAddr, err := address.Encode(networkPrefix, address.TypeP2SH, p2shHash[:])
	if err != nil {
		return nil, err
	}
	p2shScriptPK, err := address.GenerateScriptPublicKey(address.TypeP2SH, p2shHash[:])
	if err != nil {
		return nil, err
	}

	outputs := []txmodel.TxOutput{
		{Amount: commitAmount, ScriptPK: txmodel.ScriptPublicKey{Version: 0, Script: p2shScriptPK}},
	}

	changeAmount := sourceUTXO.Amount - commitAmount - operationFee
	if changeAmount >= MinCommitAmount {
		outputs = append(outputs, txmodel.TxOutput{Amount: changeAmount, ScriptPK: changeScriptPK})
	}

	tx := &txmodel.Transaction{
		Version: 0,
		Inputs: []txmodel.TxInput{
			{Outpoint: sourceUTXO.Outpoint, Sequence: 0xffffffffffffffff, SigOpCount: 1},
		},
		Outputs: outputs,
	}

	return &CommitPair{
		CommitTx:       tx,
		RedeemScript:   redeemScript,
		P2SHScriptHash: p2shHash,
		P2SHAddress:    p2shAddr,
	}, nil
}

// BuildReveal builds the single-input single-output transaction that
// spends the P2SH commit output and publishes the redeem script.
func BuildReveal(p2shUTXO txmodel.UTXO, recipientScriptPK txmodel.ScriptPublicKey, revealFee uint64) (*txmodel.Transaction, error) {
	if revealFee >= p2shUTXO.Amount {
		return nil, &hrc20err.InsufficientFunds{Required: revealFee, Available: p2shUTXO.Amount}
	}

	return &txmodel.Transaction{
		Version: 0,
		Inputs: []txmodel.TxInput{
			{Outpoint: p2shUTXO.Outpoint, Sequence: 0xffffffffffffffff, SigOpCount: 1},
		},
		Outputs: []txmodel.TxOutput{
			{Amount: p2shUTXO.Amount - revealFee, ScriptPK: recipientScriptPK},
		},
	}, nil
}

// EstimateFees returns the table-driven (commitFee, revealFee) pair for the
// operation named by payloadJSON's "op" field (spec 4.4). Unknown ops yield
// (0, 0). Mint's authoritative value is commit-only per the Design Notes'
// open-question resolution.
func EstimateFees(payloadJSON string, networkFee uint64) (commitFee uint64, revealFee uint64) {
	op, ok := payload.ParseOpField(payloadJSON)
	if !ok {
		return 0, 0
	}
	switch op {
	case "deploy":
		return 1000 * 1e8, 1000 * 1e8
	case "mint":
		return 100_000_000, 0
	case "transfer", "burn", "list", "send":
		return networkFee, networkFee
	default:
		return 0, 0
	}
}

// DeployResultKind tags DeployResult's two variants per the Design Notes'
// "cleaner rewrite" suggestion: a sum type instead of a magic-string prefix.
type DeployResultKind int

const (
	// Committed means the commit transaction was built, signed, and
	// broadcast normally.
	Committed DeployResultKind = iota
	// Consolidating means no single UTXO met the deploy threshold, so the
	// orchestrator issued a self-pay instead and the caller must retry.
	Consolidating
)

// DeployResult is the distinguished result deploy_token returns: either a
// normal commit result or a "consolidation in progress, retry later"
// signal. Exactly one of the two field groups is meaningful, selected by
// Kind.
type DeployResult struct {
	Kind DeployResultKind

	// valid when Kind == Committed
	CommitTxID     string
	RedeemScriptHex string
	P2SHAddress    string

	// valid when Kind == Consolidating
	ConsolidationTxID string
}
