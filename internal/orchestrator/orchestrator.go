// Package orchestrator implements the operation orchestrator state machine
// (spec section 4.8): it turns a high-level HRC-20 intent into a committed
// and, on a later call, revealed transaction pair, maintaining the
// persistent pending-reveal registry across the two phases. Call
// sequencing (build payload -> select funds -> sign -> serialize -> submit,
// logging each broadcast) mirrors the teacher's BuildAndSignHTLCClaimTx
// (services/node/zcash_tx.go).
package orchestrator

import (
	"context"
	"fmt"
	"log"

	"github.com/hoosat-labs/hrc20-engine/internal/address"
	"github.com/hoosat-labs/hrc20-engine/internal/commitreveal"
	"github.com/hoosat-labs/hrc20-engine/internal/config"
	"github.com/hoosat-labs/hrc20-engine/internal/hexcodec"
	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
	"github.com/hoosat-labs/hrc20-engine/internal/nodeclient"
	"github.com/hoosat-labs/hrc20-engine/internal/payload"
	"github.com/hoosat-labs/hrc20-engine/internal/registry"
	"github.com/hoosat-labs/hrc20-engine/internal/script"
	"github.com/hoosat-labs/hrc20-engine/internal/sighash"
	"github.com/hoosat-labs/hrc20-engine/internal/signer"
	"github.com/hoosat-labs/hrc20-engine/internal/txmodel"
	"github.com/hoosat-labs/hrc20-engine/internal/utxo"
)

// chainVisibilityDelayHintSeconds is operational guidance only (spec section 5):
// callers should wait roughly this long between a commit broadcast and a
// reveal attempt. The engine never enforces it.
const chainVisibilityDelayHintSeconds = 10

// NetworkFeeSompi is the flat network-only fee used for transfer, burn,
// list, and send commit/reveal fee estimates.
const NetworkFeeSompi = 2000

// Orchestrator ties the engine's components together behind the operator
// interface (spec section 6).
type Orchestrator struct {
	cfg      config.Config
	node     nodeclient.NodeClient
	signer   signer.Signer
	registry *registry.Registry
	pubkey   []byte
}

// New builds an orchestrator. Callers must call registry.Load (or rely on
// New's internal Load call below) before issuing operations, so a restart
// resumes with the persisted pending-reveal set (spec invariant 7).
func New(cfg config.Config, node nodeclient.NodeClient, sgn signer.Signer) (*Orchestrator, error) {
	pubkey, err := hexcodec.Decode(cfg.SignerPubkeyHex)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: decode signer pubkey: %w", err)
	}
	if err := validatePubkeyLength(pubkey, cfg.UseECDSA); err != nil {
		return nil, err
	}

	reg := registry.New(cfg.RegistryPath)
	if err := reg.Load(); err != nil {
		return nil, fmt.Errorf("orchestrator: load registry: %w", err)
	}

	return &Orchestrator{cfg: cfg, node: node, signer: sgn, registry: reg, pubkey: pubkey}, nil
}

// validatePubkeyLength enforces the curve's fixed pubkey length (32-byte
// x-only for Schnorr, 33-byte compressed for ECDSA) before the key is ever
// handed to the script/address builders, per the engine's error taxonomy
// (spec section 7).
func validatePubkeyLength(pubkey []byte, useECDSA bool) error {
	want := 32
	curveName := "schnorr"
	if useECDSA {
		want = 33
		curveName = "ecdsa"
	}
	if len(pubkey) != want {
		return &hrc20err.InvalidPubkey{Reason: fmt.Sprintf("expected %d-byte %s public key, got %d", want, curveName, len(pubkey))}
	}
	return nil
}

func (o *Orchestrator) curve() signer.Curve {
	if o.cfg.UseECDSA {
		return signer.CurveECDSA
	}
	return signer.CurveSchnorr
}

func (o *Orchestrator) addrType() address.Type {
	if o.cfg.UseECDSA {
		return address.TypeECDSA
	}
	return address.TypeSchnorr
}

// GetAddress implements the get_address operator call.
func (o *Orchestrator) GetAddress() (addr string, pubkeyHex string, err error) {
	addr, err = address.Encode(o.cfg.NetworkPrefix, o.addrType(), o.pubkey)
	if err != nil {
		return "", "", err
	}
	return addr, hexcodec.Encode(o.pubkey), nil
}

// GetBalance implements the get_balance operator call.
func (o *Orchestrator) GetBalance(ctx context.Context, addr string) (nodeclient.Balance, error) {
	return o.node.GetBalance(ctx, addr)
}

// GetPendingReveals implements the get_pending_reveals operator call.
func (o *Orchestrator) GetPendingReveals() []struct {
	CommitTxID   string
	ScriptLength int
} {
	return o.registry.List()
}

// GetRedeemScript implements the get_redeem_script operator call.
func (o *Orchestrator) GetRedeemScript(commitTxID string) (string, bool) {
	redeemScript, ok := o.registry.Get(commitTxID)
	if !ok {
		return "", false
	}
	return hexcodec.Encode(redeemScript), true
}

// EstimateFees implements the estimate_fees operator call.
func (o *Orchestrator) EstimateFees(payloadJSON string) (commitFee uint64, revealFee uint64) {
	return commitreveal.EstimateFees(payloadJSON, NetworkFeeSompi)
}

// ConsolidateUtxos implements the consolidate_utxos operator call directly
// (as distinct from the deploy-triggered auto-consolidation fallback).
func (o *Orchestrator) ConsolidateUtxos(ctx context.Context, fromAddress string) (string, error) {
	candidates, err := o.node.GetUTXOs(ctx, fromAddress)
	if err != nil {
		return "", &hrc20err.NetworkError{Message: err.Error()}
	}

	selfScriptPK, err := address.GenerateScriptPublicKey(o.addrType(), o.pubkey)
	if err != nil {
		return "", err
	}

	tx, err := utxo.BuildConsolidation(candidates, txmodel.ScriptPublicKey{Version: 0, Script: selfScriptPK})
	if err != nil {
		return "", err
	}

	if err := o.signInputsP2PK(tx, candidates); err != nil {
		return "", err
	}

	txID, err := o.node.SubmitTransaction(ctx, tx)
	if err != nil {
		return "", &hrc20err.NetworkError{Message: err.Error()}
	}
	log.Printf("orchestrator: consolidation broadcast tx=%s inputs=%d", txID, len(tx.Inputs))
	return txID, nil
}

// commitResult is the shape shared by every non-deploy commit_* operator
// call.
type commitResult struct {
	CommitTxID      string
	RedeemScriptHex string
	P2SHAddress     string
}

// executeCommit builds, signs, and broadcasts a commit transaction for op,
// then registers the pending reveal. It is the PLANNED -> COMMITTED
// transition shared by deploy/mint/transfer/burn/list/send (spec 4.8).
func (o *Orchestrator) executeCommit(ctx context.Context, fromAddress string, op payload.Operation, commitAmount uint64) (*commitResult, error) {
	payloadJSON, err := payload.Format(op)
	if err != nil {
		return nil, err
	}
	commitFee, _ := commitreveal.EstimateFees(payloadJSON, NetworkFeeSompi)
	if commitFee == 0 {
		commitFee = NetworkFeeSompi
	}

	candidates, err := o.node.GetUTXOs(ctx, fromAddress)
	if err != nil {
		return nil, &hrc20err.NetworkError{Message: err.Error()}
	}
	sourceUTXO, ok := utxo.SelectForSingleUTXOThreshold(candidates, commitAmount+commitFee)
	if !ok {
		return nil, &hrc20err.InsufficientFunds{Required: commitAmount + commitFee, Available: sumAmounts(candidates)}
	}

	changeScriptPK, err := address.GenerateScriptPublicKey(o.addrType(), o.pubkey)
	if err != nil {
		return nil, err
	}

	pair, err := commitreveal.BuildCommit(
		o.cfg.NetworkPrefix, o.pubkey, payloadJSON, sourceUTXO,
		commitAmount, commitFee,
		txmodel.ScriptPublicKey{Version: 0, Script: changeScriptPK}, fromAddress,
		o.cfg.UseECDSA,
	)
	if err != nil {
		return nil, err
	}

	if err := o.signInput(pair.CommitTx, 0, sourceUTXO.ScriptPK, sourceUTXO.Amount); err != nil {
		return nil, err
	}

	txID, err := o.node.SubmitTransaction(ctx, pair.CommitTx)
	if err != nil {
		// Commit-broadcast failures leave no registry entry: no ghost
		// reveals (spec 4.8 failure semantics).
		return nil, &hrc20err.NetworkError{Message: err.Error()}
	}

	o.registry.Add(txID, pair.RedeemScript)
	if err := o.registry.Flush(); err != nil {
		log.Printf("orchestrator: registry flush failed after commit %s: %v", txID, err)
	}

	log.Printf("orchestrator: commit broadcast tx=%s p2sh=%s op=%s", txID, pair.P2SHAddress, op.Kind)

	return &commitResult{
		CommitTxID:      txID,
		RedeemScriptHex: hexcodec.Encode(pair.RedeemScript),
		P2SHAddress:     pair.P2SHAddress,
	}, nil
}

func sumAmounts(utxos []txmodel.UTXO) uint64 {
	var total uint64
	for _, u := range utxos {
		total += u.Amount
	}
	return total
}

// DeployToken implements deploy_token (spec 4.4, 4.5, 4.8, 8.S6). It is the
// only operation with the auto-consolidation fallback: if no single UTXO
// meets DeploySingleUTXOFloor, it issues a self-pay consolidation instead
// and returns a Consolidating result signalling "retry later" (spec 7's
// policy carve-out).
func (o *Orchestrator) DeployToken(ctx context.Context, fromAddress string, tick, max, lim string, dec, pre *string) (*commitreveal.DeployResult, error) {
	candidates, err := o.node.GetUTXOs(ctx, fromAddress)
	if err != nil {
		return nil, &hrc20err.NetworkError{Message: err.Error()}
	}

	if _, ok := utxo.SelectForSingleUTXOThreshold(candidates, commitreveal.DeploySingleUTXOFloor); !ok {
		consolidationTxID, err := o.ConsolidateUtxos(ctx, fromAddress)
		if err != nil {
			return nil, err
		}
		return &commitreveal.DeployResult{Kind: commitreveal.Consolidating, ConsolidationTxID: consolidationTxID}, nil
	}

	op := payload.Operation{Kind: payload.KindDeploy, Tick: tick, Max: max, Lim: lim, Dec: dec, Pre: pre}
	res, err := o.executeCommit(ctx, fromAddress, op, commitreveal.MinCommitAmount)
	if err != nil {
		return nil, err
	}
	return &commitreveal.DeployResult{
		Kind:            commitreveal.Committed,
		CommitTxID:      res.CommitTxID,
		RedeemScriptHex: res.RedeemScriptHex,
		P2SHAddress:     res.P2SHAddress,
	}, nil
}

// MintToken implements mint_token.
func (o *Orchestrator) MintToken(ctx context.Context, fromAddress, tick string, recipient *string) (*commitResult, error) {
	op := payload.Operation{Kind: payload.KindMint, Tick: tick, To: recipient}
	return o.executeCommit(ctx, fromAddress, op, commitreveal.MinCommitAmount)
}

// TransferToken implements transfer.
func (o *Orchestrator) TransferToken(ctx context.Context, fromAddress, tick, amt, to string) (*commitResult, error) {
	op := payload.Operation{Kind: payload.KindTransfer, Tick: tick, Amt: amt, To: &to}
	return o.executeCommit(ctx, fromAddress, op, commitreveal.MinCommitAmount)
}

// BurnToken implements burn.
func (o *Orchestrator) BurnToken(ctx context.Context, fromAddress, tick, amt string) (*commitResult, error) {
	op := payload.Operation{Kind: payload.KindBurn, Tick: tick, Amt: amt}
	return o.executeCommit(ctx, fromAddress, op, commitreveal.MinCommitAmount)
}

// ListToken implements list (tick is lowercased by the payload formatter).
func (o *Orchestrator) ListToken(ctx context.Context, fromAddress, tick, amt string) (*commitResult, error) {
	op := payload.Operation{Kind: payload.KindList, Tick: tick, Amt: amt}
	return o.executeCommit(ctx, fromAddress, op, commitreveal.MinCommitAmount)
}

// SendToken implements send (tick is lowercased by the payload formatter).
func (o *Orchestrator) SendToken(ctx context.Context, fromAddress, tick string) (*commitResult, error) {
	op := payload.Operation{Kind: payload.KindSend, Tick: tick}
	return o.executeCommit(ctx, fromAddress, op, commitreveal.MinCommitAmount)
}

// RevealOperation implements the REVEAL_PENDING -> DONE transition (spec
// 4.8): look up the registered redeem script, fetch the P2SH UTXO, verify
// the reveal-binding invariant, build and sign the reveal transaction, and
// remove the pending entry only after a successful broadcast.
func (o *Orchestrator) RevealOperation(ctx context.Context, commitTxID string, recipient string) (string, error) {
	redeemScript, ok := o.registry.Get(commitTxID)
	if !ok {
		return "", &hrc20err.InvalidTransaction{Message: "no pending reveal for commit id " + commitTxID}
	}

	p2shHash := script.HashRedeemScript(redeemScript)
	p2shScriptPK, err := address.GenerateScriptPublicKey(address.TypeP2SH, p2shHash[:])
	if err != nil {
		return "", err
	}

	p2shUTXO, err := o.findP2SHUTXO(ctx, commitTxID, p2shScriptPK)
	if err != nil {
		return "", err
	}

	// Reveal binding check (spec invariant 8): re-hashing the stored
	// redeem script must equal the scriptHash encoded in the commit
	// transaction's P2SH output. Reveal refuses to sign if this fails.
	if !scriptPKMatches(p2shUTXO.ScriptPK.Script, p2shScriptPK) {
		return "", &hrc20err.InvalidTransaction{Message: "reveal binding check failed: redeem script does not match P2SH output"}
	}

	recipientType, recipientPayload, err := address.Decode(recipient, o.cfg.NetworkPrefix)
	if err != nil {
		return "", err
	}
	recipientScriptPK, err := address.GenerateScriptPublicKey(recipientType, recipientPayload)
	if err != nil {
		return "", err
	}

	// Recover the committed operation from the redeem script itself so the
	// reveal fee matches spec 4.4's per-op table (e.g. deploy reveals cost
	// 1000 HTN, mint reveals are free) instead of always charging the
	// transfer/networkFee rate.
	committedPayload, err := script.ExtractPayload(redeemScript)
	if err != nil {
		return "", err
	}
	if _, ok := payload.ParseOpField(string(committedPayload)); !ok {
		return "", &hrc20err.InvalidTransaction{Message: "redeem script payload missing op field"}
	}
	_, revealFee := commitreveal.EstimateFees(string(committedPayload), NetworkFeeSompi)

	tx, err := commitreveal.BuildReveal(p2shUTXO, txmodel.ScriptPublicKey{Version: 0, Script: recipientScriptPK}, revealFee)
	if err != nil {
		return "", err
	}

	if err := o.signP2SHInput(tx, 0, redeemScript, p2shUTXO.ScriptPK, p2shUTXO.Amount); err != nil {
		return "", err
	}

	revealTxID, err := o.node.SubmitTransaction(ctx, tx)
	if err != nil {
		// Reveal failures keep the registry entry so the operation can be
		// retried (spec 4.8 failure semantics).
		return "", &hrc20err.NetworkError{Message: err.Error()}
	}

	o.registry.Remove(commitTxID)
	if err := o.registry.Flush(); err != nil {
		log.Printf("orchestrator: registry flush failed after reveal %s: %v", revealTxID, err)
	}

	log.Printf("orchestrator: reveal broadcast commit=%s reveal=%s", commitTxID, revealTxID)
	return revealTxID, nil
}

func scriptPKMatches(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// findP2SHUTXO locates the P2SH output of commitTxID among the node's
// reported UTXOs for the derived P2SH address. The node surface (spec 6)
// is address-indexed, so the engine queries the P2SH address directly
// rather than scanning by transaction id.
func (o *Orchestrator) findP2SHUTXO(ctx context.Context, commitTxID string, p2shScriptPK []byte) (txmodel.UTXO, error) {
	addr, err := addressFromScriptPK(o.cfg.NetworkPrefix, p2shScriptPK)
	if err != nil {
		return txmodel.UTXO{}, err
	}

	utxos, err := o.node.GetUTXOs(ctx, addr)
	if err != nil {
		return txmodel.UTXO{}, &hrc20err.NetworkError{Message: err.Error()}
	}
	for _, u := range utxos {
		if u.Outpoint.TxIDHex() == commitTxID {
			return u, nil
		}
	}
	return txmodel.UTXO{}, &hrc20err.InvalidTransaction{Message: "P2SH output for commit " + commitTxID + " not found on node"}
}

// addressFromScriptPK recovers the P2SH address string from its script
// public key bytes (OP_BLAKE3 OP_DATA_32 <hash> OP_EQUAL), for querying the
// node's address-indexed UTXO surface.
func addressFromScriptPK(networkPrefix string, p2shScriptPK []byte) (string, error) {
	if len(p2shScriptPK) != 35 {
		return "", &hrc20err.InvalidTransaction{Message: "malformed P2SH script public key"}
	}
	hash := p2shScriptPK[2:34]
	return address.Encode(networkPrefix, address.TypeP2SH, hash)
}

// signInput computes the sighash for inputIndex against the spent script
// public key and embeds the signed, hashtype-tagged signature as a plain
// P2PK-style signature script (used for ordinary wallet spends: the
// commit transaction's funding input and consolidation self-pay inputs).
func (o *Orchestrator) signInput(tx *txmodel.Transaction, inputIndex int, spentScriptPK txmodel.ScriptPublicKey, spentAmount uint64) error {
	rv := &sighash.ReusedValues{}
	sig, err := o.signForCurve(tx, inputIndex, spentScriptPK.Version, spentScriptPK.Script, spentAmount, rv)
	if err != nil {
		return err
	}
	tx.Inputs[inputIndex].SignatureScript = buildOrdinarySignatureScript(sig)
	return nil
}

func (o *Orchestrator) signInputsP2PK(tx *txmodel.Transaction, spent []txmodel.UTXO) error {
	byOutpoint := make(map[txmodel.Outpoint]txmodel.UTXO, len(spent))
	for _, u := range spent {
		byOutpoint[u.Outpoint] = u
	}
	for i, in := range tx.Inputs {
		u, ok := byOutpoint[in.Outpoint]
		if !ok {
			return &hrc20err.InvalidTransaction{Message: "signing input references unknown UTXO"}
		}
		if err := o.signInput(tx, i, u.ScriptPK, u.Amount); err != nil {
			return err
		}
	}
	return nil
}

// signP2SHInput signs the reveal transaction's single input against the
// redeem script (the actual signed script, per BIP16-style P2SH semantics)
// and wraps the signature plus redeem script into a P2SH signature script.
func (o *Orchestrator) signP2SHInput(tx *txmodel.Transaction, inputIndex int, redeemScript []byte, spentScriptPK txmodel.ScriptPublicKey, spentAmount uint64) error {
	rv := &sighash.ReusedValues{}
	sig, err := o.signForCurve(tx, inputIndex, spentScriptPK.Version, redeemScript, spentAmount, rv)
	if err != nil {
		return err
	}
	tx.Inputs[inputIndex].SignatureScript = script.BuildP2SHSignatureScript(sig, redeemScript)
	return nil
}

func (o *Orchestrator) signForCurve(tx *txmodel.Transaction, inputIndex int, spentScriptVersion uint16, spentScript []byte, spentAmount uint64, rv *sighash.ReusedValues) ([]byte, error) {
	var digest [32]byte
	var err error
	if o.cfg.UseECDSA {
		digest, err = sighash.SighashECDSA(tx, inputIndex, spentScriptVersion, spentScript, spentAmount, sighash.SighashAll, rv)
	} else {
		digest, err = sighash.SighashSchnorr(tx, inputIndex, spentScriptVersion, spentScript, spentAmount, sighash.SighashAll, rv)
	}
	if err != nil {
		return nil, err
	}

	raw, err := o.signer.Sign(context.Background(), o.cfg.SignerKeyName, "", digest, o.curve())
	if err != nil {
		return nil, &hrc20err.CryptographicError{Message: err.Error()}
	}

	return append(append([]byte{}, raw...), signer.SighashAll), nil
}

// buildOrdinarySignatureScript builds a direct-push signature script for
// spending a plain Schnorr/ECDSA output (not P2SH): just the signature.
func buildOrdinarySignatureScript(sig []byte) []byte {
	var buf []byte
	buf = append(buf, byte(len(sig)))
	buf = append(buf, sig...)
	return buf
}
