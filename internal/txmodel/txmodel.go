// Package txmodel defines the typed transaction structs (spec section 3)
// and their wire serialization (spec section 6), following the teacher's
// manual binary.Write/writeVarInt construction style.
package txmodel

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Outpoint identifies a previous transaction output by transaction id and
// output index. Immutable, compared by value.
type Outpoint struct {
	TxID  [32]byte
	Index uint32
}

// ScriptPublicKey is a versioned locking script.
type ScriptPublicKey struct {
	Version uint16
	Script  []byte
}

// UTXO is an unspent output as reported by the node.
type UTXO struct {
	Outpoint Outpoint
	Amount   uint64 // sompi
	ScriptPK ScriptPublicKey
	Address  string
}

// TxInput references a previous output and carries the spending proof.
// SignatureScript starts empty and is populated by the signer.
type TxInput struct {
	Outpoint        Outpoint
	SignatureScript []byte
	Sequence        uint64
	SigOpCount      uint8
}

// TxOutput pays an amount to a locking script.
type TxOutput struct {
	Amount   uint64
	ScriptPK ScriptPublicKey
}

// SubnetworkID is always the zero subnetwork in this engine.
type SubnetworkID [20]byte

// Transaction is the full typed transaction model.
type Transaction struct {
	Version      uint16
	Inputs       []TxInput
	Outputs      []TxOutput
	LockTime     uint64
	SubnetworkID SubnetworkID
	Gas          uint64
	Payload      []byte
}

// writeVarInt matches the teacher's zcash_tx.go helper, generalized to the
// wire form's varint-prefixed counts.
func writeVarInt(buf *bytes.Buffer, n uint64) {
	switch {
	case n < 0xfd:
		buf.WriteByte(byte(n))
	case n <= 0xffff:
		buf.WriteByte(0xfd)
		binary.Write(buf, binary.LittleEndian, uint16(n))
	case n <= 0xffffffff:
		buf.WriteByte(0xfe)
		binary.Write(buf, binary.LittleEndian, uint32(n))
	default:
		buf.WriteByte(0xff)
		binary.Write(buf, binary.LittleEndian, n)
	}
}

// Serialize encodes the transaction as raw bytes in the field order of
// spec section 6: little-endian integers, varint counts, varint-length-
// prefixed byte strings, and transaction ids in the engine's internal
// (reversed) byte order. Fields are not hex-encoded individually; the node
// client hex-encodes the whole result for submission.
func (tx *Transaction) Serialize() []byte {
	var buf bytes.Buffer

	binary.Write(&buf, binary.LittleEndian, tx.Version)

	writeVarInt(&buf, uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		buf.Write(in.Outpoint.TxID[:])
		binary.Write(&buf, binary.LittleEndian, in.Outpoint.Index)
		writeVarInt(&buf, uint64(len(in.SignatureScript)))
		buf.Write(in.SignatureScript)
		binary.Write(&buf, binary.LittleEndian, in.Sequence)
		buf.WriteByte(in.SigOpCount)
	}

	writeVarInt(&buf, uint64(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		binary.Write(&buf, binary.LittleEndian, out.Amount)
		binary.Write(&buf, binary.LittleEndian, out.ScriptPK.Version)
		writeVarInt(&buf, uint64(len(out.ScriptPK.Script)))
		buf.Write(out.ScriptPK.Script)
	}

	binary.Write(&buf, binary.LittleEndian, tx.LockTime)
	buf.Write(tx.SubnetworkID[:])
	binary.Write(&buf, binary.LittleEndian, tx.Gas)
	writeVarInt(&buf, uint64(len(tx.Payload)))
	buf.Write(tx.Payload)

	return buf.Bytes()
}

// TxIDHex renders an outpoint's transaction id as big-endian hex, the form
// the node HTTP surface exchanges.
func (o Outpoint) TxIDHex() string {
	reversed := make([]byte, 32)
	for i := 0; i < 32; i++ {
		reversed[i] = o.TxID[31-i]
	}
	return hex.EncodeToString(reversed)
}

// OutpointFromHex builds an Outpoint from a big-endian hex txid string and
// an output index, reversing to the engine's internal little-endian byte
// order.
func OutpointFromHex(txidHex string, index uint32) (Outpoint, error) {
	raw, err := hex.DecodeString(txidHex)
	if err != nil {
		return Outpoint{}, fmt.Errorf("decode txid: %w", err)
	}
	if len(raw) != 32 {
		return Outpoint{}, fmt.Errorf("txid must be 32 bytes, got %d", len(raw))
	}
	var out Outpoint
	for i := 0; i < 32; i++ {
		out.TxID[i] = raw[31-i]
	}
	out.Index = index
	return out, nil
}
