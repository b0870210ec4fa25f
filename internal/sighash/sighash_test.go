package sighash

import (
	"testing"

	"github.com/hoosat-labs/hrc20-engine/internal/txmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTx() *txmodel.Transaction {
	return &txmodel.Transaction{
		Version: 0,
		Inputs: []txmodel.TxInput{
			{Outpoint: txmodel.Outpoint{TxID: [32]byte{1}, Index: 0}, Sequence: 0xffffffffffffffff, SigOpCount: 1},
			{Outpoint: txmodel.Outpoint{TxID: [32]byte{2}, Index: 1}, Sequence: 0xffffffffffffffff, SigOpCount: 1},
		},
		Outputs: []txmodel.TxOutput{
			{Amount: 1000, ScriptPK: txmodel.ScriptPublicKey{Version: 0, Script: []byte{0x20}}},
		},
	}
}

func TestSighashStability(t *testing.T) {
	tx := sampleTx()
	spentScript := []byte{0xaa, 0xbb}

	rv1 := &ReusedValues{}
	d1, err := SighashECDSA(tx, 0, 0, spentScript, 5000, SighashAll, rv1)
	require.NoError(t, err)

	rv2 := &ReusedValues{}
	// Access outputs hash first, out of the usual order, to prove the
	// ReusedValues cache is independent of access order.
	_ = rv2.OutputsHash(tx)
	d2, err := SighashECDSA(tx, 0, 0, spentScript, 5000, SighashAll, rv2)
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
}

func TestSighashDiffersPerInput(t *testing.T) {
	tx := sampleTx()
	spentScript := []byte{0xaa, 0xbb}
	rv := &ReusedValues{}

	d0, err := SighashECDSA(tx, 0, 0, spentScript, 5000, SighashAll, rv)
	require.NoError(t, err)
	d1, err := SighashECDSA(tx, 1, 0, spentScript, 5000, SighashAll, rv)
	require.NoError(t, err)

	assert.NotEqual(t, d0, d1)
}

func TestSighashSchnorrDiffersFromECDSA(t *testing.T) {
	tx := sampleTx()
	spentScript := []byte{0xaa, 0xbb}
	rv := &ReusedValues{}

	ecdsaDigest, err := SighashECDSA(tx, 0, 0, spentScript, 5000, SighashAll, rv)
	require.NoError(t, err)
	schnorrDigest, err := SighashSchnorr(tx, 0, 0, spentScript, 5000, SighashAll, rv)
	require.NoError(t, err)

	assert.NotEqual(t, ecdsaDigest, schnorrDigest)
}

func TestSighashOutOfRangeInput(t *testing.T) {
	tx := sampleTx()
	rv := &ReusedValues{}
	_, err := SighashECDSA(tx, 99, 0, nil, 0, SighashAll, rv)
	require.Error(t, err)
}
