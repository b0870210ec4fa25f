// Package utxo implements UTXO selection, fee estimation, and the
// consolidation builder described in spec section 4.5.
package utxo

import (
	"sort"

	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
	"github.com/hoosat-labs/hrc20-engine/internal/txmodel"
)

// MaxSelectionInputs is the hard cap on inputs a single selection may use.
const MaxSelectionInputs = 10

// FeeRateSompiPerByte is the network's baseline fee rate used by the
// byte-count fee formula.
const FeeRateSompiPerByte = 1

// ConsolidationSafetyMarginPct is the percentage EstimateTxFeeWithMargin
// adds to a fee estimate to give a fee ceiling. Declared transaction fees
// (BuildConsolidation) use the un-padded EstimateTxFee.
const ConsolidationSafetyMarginPct = 20

// Select sorts candidates descending by amount and takes UTXOs in that
// order, up to MaxSelectionInputs, stopping once the running total meets
// required. It fails with InsufficientFunds if the top 10 UTXOs together
// fall short.
func Select(candidates []txmodel.UTXO, required uint64) ([]txmodel.UTXO, error) {
	sorted := make([]txmodel.UTXO, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Amount > sorted[j].Amount })

	if len(sorted) > MaxSelectionInputs {
		sorted = sorted[:MaxSelectionInputs]
	}

	var total uint64
	var selected []txmodel.UTXO
	for _, u := range sorted {
		selected = append(selected, u)
		total += u.Amount
		if total >= required {
			return selected, nil
		}
	}

	return nil, &hrc20err.InsufficientFunds{Required: required, Available: total}
}

// EstimateTxFee implements fee = (150*inputs + 35*outputs + 10) *
// fee_rate_sompi_per_byte.
func EstimateTxFee(numInputs, numOutputs int) uint64 {
	bytesEstimate := uint64(150*numInputs + 35*numOutputs + 10)
	return bytesEstimate * FeeRateSompiPerByte
}

// EstimateTxFeeWithMargin applies ConsolidationSafetyMarginPct to a fee
// estimate, for use as an upper bound rather than a declared fee. The
// orchestrator does not call it.
func EstimateTxFeeWithMargin(numInputs, numOutputs int) uint64 {
	base := EstimateTxFee(numInputs, numOutputs)
	return base + (base*ConsolidationSafetyMarginPct)/100
}

// SelectForSingleUTXOThreshold finds a single UTXO whose amount is at least
// threshold, for operations that require one undivided input (e.g. deploy).
// Returns ok=false if none qualifies.
func SelectForSingleUTXOThreshold(candidates []txmodel.UTXO, threshold uint64) (txmodel.UTXO, bool) {
	for _, u := range candidates {
		if u.Amount >= threshold {
			return u, true
		}
	}
	return txmodel.UTXO{}, false
}

// BuildConsolidation selects the top 10 UTXOs and builds a self-pay
// transaction returning sum-fee to selfAddress's script public key. It is
// idempotent: calling it again on the same (or a superset) UTXO set
// produces another valid self-pay, never a double-spend, since the node is
// the source of truth for which UTXOs remain unspent.
func BuildConsolidation(candidates []txmodel.UTXO, selfScriptPK txmodel.ScriptPublicKey) (*txmodel.Transaction, error) {
	sorted := make([]txmodel.UTXO, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Amount > sorted[j].Amount })
	if len(sorted) > MaxSelectionInputs {
		sorted = sorted[:MaxSelectionInputs]
	}
	if len(sorted) == 0 {
		return nil, &hrc20err.InsufficientFunds{Required: 1, Available: 0}
	}

	var total uint64
	inputs := make([]txmodel.TxInput, 0, len(sorted))
	for _, u := range sorted {
		total += u.Amount
		inputs = append(inputs, txmodel.TxInput{
			Outpoint:   u.Outpoint,
			Sequence:   0xffffffffffffffff,
			SigOpCount: 1,
		})
	}

	fee := EstimateTxFee(len(inputs), 1)
	if fee >= total {
		return nil, &hrc20err.InsufficientFunds{Required: fee, Available: total}
	}

	tx := &txmodel.Transaction{
		Version: 0,
		Inputs:  inputs,
		Outputs: []txmodel.TxOutput{
			{Amount: total - fee, ScriptPK: selfScriptPK},
		},
	}
	return tx, nil
}
