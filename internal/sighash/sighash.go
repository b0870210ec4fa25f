// Package sighash implements the precomputed-hash sighash scheme described
// in spec section 4.6: a ReusedValues cache computed lazily per
// transaction and reused across every input, and two entry points
// (ECDSA double-SHA-256, Schnorr BIP-340 tagged single-SHA-256). The
// preimage layout generalizes the teacher's computeSigHashForP2SH
// precomputed-hash idiom (services/node/zcash_tx.go) to Hoosat's full
// field set.
package sighash

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
	"github.com/hoosat-labs/hrc20-engine/internal/txmodel"
)

const SighashAll = 0x01

// ReusedValues holds the five lazily-computed hashes shared across every
// input's sighash within one transaction.
type ReusedValues struct {
	previousOutputs *[32]byte
	sequences       *[32]byte
	sigOpCounts     *[32]byte
	outputs         *[32]byte
	payload         *[32]byte
}

func hash256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

func (rv *ReusedValues) PreviousOutputsHash(tx *txmodel.Transaction) [32]byte {
	if rv.previousOutputs == nil {
		var buf bytes.Buffer
		for _, in := range tx.Inputs {
			buf.Write(in.Outpoint.TxID[:])
			binary.Write(&buf, binary.LittleEndian, in.Outpoint.Index)
		}
		h := hash256(buf.Bytes())
		rv.previousOutputs = &h
	}
	return *rv.previousOutputs
}

func (rv *ReusedValues) SequencesHash(tx *txmodel.Transaction) [32]byte {
	if rv.sequences == nil {
		var buf bytes.Buffer
		for _, in := range tx.Inputs {
			binary.Write(&buf, binary.LittleEndian, in.Sequence)
		}
		h := hash256(buf.Bytes())
		rv.sequences = &h
	}
	return *rv.sequences
}

func (rv *ReusedValues) SigOpCountsHash(tx *txmodel.Transaction) [32]byte {
	if rv.sigOpCounts == nil {
		var buf bytes.Buffer
		for _, in := range tx.Inputs {
			buf.WriteByte(in.SigOpCount)
		}
		h := hash256(buf.Bytes())
		rv.sigOpCounts = &h
	}
	return *rv.sigOpCounts
}

func (rv *ReusedValues) OutputsHash(tx *txmodel.Transaction) [32]byte {
	if rv.outputs == nil {
		var buf bytes.Buffer
		for _, out := range tx.Outputs {
			binary.Write(&buf, binary.LittleEndian, out.Amount)
			binary.Write(&buf, binary.LittleEndian, out.ScriptPK.Version)
			binary.Write(&buf, binary.LittleEndian, uint64(len(out.ScriptPK.Script)))
			buf.Write(out.ScriptPK.Script)
		}
		h := hash256(buf.Bytes())
		rv.outputs = &h
	}
	return *rv.outputs
}

func (rv *ReusedValues) PayloadHash(tx *txmodel.Transaction) [32]byte {
	if rv.payload == nil {
		h := hash256(tx.Payload)
		rv.payload = &h
	}
	return *rv.payload
}

// preimage builds the per-input digest preimage common to both curves.
func preimage(tx *txmodel.Transaction, inputIndex int, spentScriptVersion uint16, spentScript []byte, spentAmount uint64, hashType byte, rv *ReusedValues) ([]byte, error) {
	if inputIndex < 0 || inputIndex >= len(tx.Inputs) {
		return nil, &hrc20err.CryptographicError{Message: "input index out of range"}
	}
	in := tx.Inputs[inputIndex]

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, tx.Version)

	prevOut := rv.PreviousOutputsHash(tx)
	buf.Write(prevOut[:])
	seq := rv.SequencesHash(tx)
	buf.Write(seq[:])
	sigOps := rv.SigOpCountsHash(tx)
	buf.Write(sigOps[:])

	buf.Write(in.Outpoint.TxID[:])
	binary.Write(&buf, binary.LittleEndian, in.Outpoint.Index)

	binary.Write(&buf, binary.LittleEndian, spentScriptVersion)
	writeLenPrefixed(&buf, spentScript)
	binary.Write(&buf, binary.LittleEndian, spentAmount)

	binary.Write(&buf, binary.LittleEndian, in.Sequence)
	buf.WriteByte(in.SigOpCount)

	out := rv.OutputsHash(tx)
	buf.Write(out[:])

	binary.Write(&buf, binary.LittleEndian, tx.LockTime)
	buf.Write(tx.SubnetworkID[:])
	binary.Write(&buf, binary.LittleEndian, tx.Gas)

	pl := rv.PayloadHash(tx)
	buf.Write(pl[:])

	buf.WriteByte(hashType)

	return buf.Bytes(), nil
}

func writeLenPrefixed(buf *bytes.Buffer, b []byte) {
	binary.Write(buf, binary.LittleEndian, uint64(len(b)))
	buf.Write(b)
}

// SighashECDSA computes the double-SHA-256 digest a secp256k1-ECDSA signer
// signs for the given input.
func SighashECDSA(tx *txmodel.Transaction, inputIndex int, spentScriptVersion uint16, spentScript []byte, spentAmount uint64, hashType byte, rv *ReusedValues) ([32]byte, error) {
	pre, err := preimage(tx, inputIndex, spentScriptVersion, spentScript, spentAmount, hashType, rv)
	if err != nil {
		return [32]byte{}, err
	}
	return hash256(pre), nil
}

// SighashSchnorr computes the domain-separated BIP-340 tagged single-
// SHA-256 digest a Schnorr signer signs for the given input.
func SighashSchnorr(tx *txmodel.Transaction, inputIndex int, spentScriptVersion uint16, spentScript []byte, spentAmount uint64, hashType byte, rv *ReusedValues) ([32]byte, error) {
	pre, err := preimage(tx, inputIndex, spentScriptVersion, spentScript, spentAmount, hashType, rv)
	if err != nil {
		return [32]byte{}, err
	}
	tagged := schnorr.TaggedHash([]byte("TransactionSigningHash"), pre)
	var out [32]byte
	copy(out[:], tagged[:])
	return out, nil
}
