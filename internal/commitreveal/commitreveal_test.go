package commitreveal

import (
	"testing"

	"github.com/hoosat-labs/hrc20-engine/internal/address"
	"github.com/hoosat-labs/hrc20-engine/internal/script"
	"github.com/hoosat-labs/hrc20-engine/internal/txmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeatByte(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestBuildCommitFeeAccountingExact(t *testing.T) {
	pubkey := repeatByte(0xAB, 32)
	source := txmodel.UTXO{
		Outpoint: txmodel.Outpoint{TxID: [32]byte{9}, Index: 0},
		Amount:   1_000_000,
	}
	changeScriptPK := txmodel.ScriptPublicKey{Version: 0, Script: []byte{0x20}}

	pair, err := BuildCommit("hoosat", pubkey, `{"p":"hrc-20","op":"mint","tick":"HOOS"}`, source, 10_000, 2_000, changeScriptPK, "hoosat:qchange", false)
	require.NoError(t, err)

	var totalOut uint64
	for _, o := range pair.CommitTx.Outputs {
		totalOut += o.Amount
	}
	declaredFee := source.Amount - totalOut
	assert.Equal(t, uint64(2_000), declaredFee)
}

func TestBuildCommitOmitsDustChange(t *testing.T) {
	pubkey := repeatByte(0xAB, 32)
	source := txmodel.UTXO{Outpoint: txmodel.Outpoint{TxID: [32]byte{1}}, Amount: 10_500}
	changeScriptPK := txmodel.ScriptPublicKey{Version: 0, Script: []byte{0x20}}

	// commitAmount + fee leaves only 500 sompi change, below MinCommitAmount.
	pair, err := BuildCommit("hoosat", pubkey, `{}`, source, 10_000, 0, changeScriptPK, "hoosat:qchange", false)
	require.NoError(t, err)
	assert.Len(t, pair.CommitTx.Outputs, 1)
}

func TestBuildCommitInsufficientFunds(t *testing.T) {
	pubkey := repeatByte(0xAB, 32)
	source := txmodel.UTXO{Outpoint: txmodel.Outpoint{TxID: [32]byte{1}}, Amount: 100}
	changeScriptPK := txmodel.ScriptPublicKey{Version: 0, Script: []byte{0x20}}

	_, err := BuildCommit("hoosat", pubkey, `{}`, source, 10_000, 0, changeScriptPK, "hoosat:qchange", false)
	require.Error(t, err)
}

func TestBuildCommitDerivesP2SHAddressFromScriptHash(t *testing.T) {
	pubkey := repeatByte(0xAB, 32)
	payload := `{"p":"hrc-20","op":"mint","tick":"HOOS"}`
	source := txmodel.UTXO{Outpoint: txmodel.Outpoint{TxID: [32]byte{1}}, Amount: 1_000_000}
	changeScriptPK := txmodel.ScriptPublicKey{Version: 0, Script: []byte{0x20}}

	pair, err := BuildCommit("hoosat", pubkey, payload, source, 10_000, 2_000, changeScriptPK, "hoosat:qchange", false)
	require.NoError(t, err)

	redeemScript := script.BuildRedeemScript(pubkey, []byte(payload), false)
	wantHash := script.HashRedeemScript(redeemScript)
	assert.Equal(t, wantHash, pair.P2SHScriptHash)

	wantAddr, err := address.Encode("hoosat", address.TypeP2SH, wantHash[:])
	require.NoError(t, err)
	assert.Equal(t, wantAddr, pair.P2SHAddress)
}

func TestBuildRevealInsufficientFunds(t *testing.T) {
	p2shUTXO := txmodel.UTXO{Outpoint: txmodel.Outpoint{TxID: [32]byte{1}}, Amount: 100}
	_, err := BuildReveal(p2shUTXO, txmodel.ScriptPublicKey{Script: []byte{0x20}}, 1000)
	require.Error(t, err)
}

func TestEstimateFeesTable(t *testing.T) {
	commit, reveal := EstimateFees(`{"p":"hrc-20","op":"deploy"}`, 2000)
	assert.Equal(t, uint64(1000*1e8), commit)
	assert.Equal(t, uint64(1000*1e8), reveal)

	commit, reveal = EstimateFees(`{"p":"hrc-20","op":"mint"}`, 2000)
	assert.Equal(t, uint64(100_000_000), commit)
	assert.Equal(t, uint64(0), reveal)

	commit, reveal = EstimateFees(`{"p":"hrc-20","op":"transfer"}`, 2000)
	assert.Equal(t, uint64(2000), commit)
	assert.Equal(t, uint64(2000), reveal)

	commit, reveal = EstimateFees(`{"p":"hrc-20","op":"unknownop"}`, 2000)
	assert.Equal(t, uint64(0), commit)
	assert.Equal(t, uint64(0), reveal)
}
