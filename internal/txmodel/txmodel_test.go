package txmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutpointHexRoundTrip(t *testing.T) {
	var txid [32]byte
	for i := range txid {
		txid[i] = byte(i)
	}
	o := Outpoint{TxID: txid, Index: 7}

	hexStr := o.TxIDHex()
	back, err := OutpointFromHex(hexStr, o.Index)
	require.NoError(t, err)
	assert.Equal(t, o, back)
}

func TestSerializeDeterministic(t *testing.T) {
	tx := &Transaction{
		Version: 1,
		Inputs: []TxInput{
			{Outpoint: Outpoint{TxID: [32]byte{1}, Index: 0}, SignatureScript: []byte{0xaa}, Sequence: 1, SigOpCount: 1},
		},
		Outputs: []TxOutput{
			{Amount: 100, ScriptPK: ScriptPublicKey{Version: 0, Script: []byte{0x20}}},
		},
	}
	a := tx.Serialize()
	b := tx.Serialize()
	assert.Equal(t, a, b)
}

func TestOutpointFromHexRejectsWrongLength(t *testing.T) {
	_, err := OutpointFromHex("abcd", 0)
	require.Error(t, err)
}
