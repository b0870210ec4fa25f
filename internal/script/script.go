// Package script builds raw Hoosat script bytes: minimal push-data
// encoding, the HRC-20 OP_FALSE OP_IF envelope, P2SH signature scripts, and
// redeem-script hashing. Mirrors the teacher's manual
// bytes.Buffer-based script construction, generalized to the HRC-20
// envelope and its 520-byte push-data chunking limit.
package script

import (
	"bytes"

	"github.com/hoosat-labs/hrc20-engine/internal/hashutil"
	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
)

const (
	opFalse      = 0x00
	opIf         = 0x63
	opEndIf      = 0x68
	opPushData1  = 0x4c
	opPushData2  = 0x4d
	opCheckSig   = 0xAC
	opCheckSigEC = 0xAB

	maxDirectPush = 75
	maxPushData1  = 255
	maxPushData2  = 65535
	maxChunkSize  = 520
)

// PushData appends the minimal push opcode for data: a direct length byte
// for 1-75 bytes, OP_PUSHDATA1 for up to 255, OP_PUSHDATA2 for up to 65535.
func PushData(buf *bytes.Buffer, data []byte) {
	n := len(data)
	switch {
	case n <= maxDirectPush:
		buf.WriteByte(byte(n))
	case n <= maxPushData1:
		buf.WriteByte(opPushData1)
		buf.WriteByte(byte(n))
	case n <= maxPushData2:
		buf.WriteByte(opPushData2)
		buf.WriteByte(byte(n))
		buf.WriteByte(byte(n >> 8))
	default:
		// Callers must chunk before calling PushData; this function never
		// emits OP_PUSHDATA4 because the HRC-20 envelope never needs it.
		buf.WriteByte(opPushData2)
		buf.WriteByte(byte(n))
		buf.WriteByte(byte(n >> 8))
	}
	buf.Write(data)
}

// chunk splits payload into successive pieces no larger than maxChunkSize,
// so no single push-data op violates the script engine's push limit.
func chunk(payload []byte) [][]byte {
	if len(payload) == 0 {
		return [][]byte{{}}
	}
	var chunks [][]byte
	for len(payload) > 0 {
		n := maxChunkSize
		if n > len(payload) {
			n = len(payload)
		}
		chunks = append(chunks, payload[:n])
		payload = payload[n:]
	}
	return chunks
}

// BuildRedeemScript emits <pubkey-push> <CHECKSIG|CHECKSIG_ECDSA> OP_FALSE
// OP_IF <payload push-data chunks> OP_ENDIF, per spec 4.2/4.4.
func BuildRedeemScript(pubkey []byte, payload []byte, useECDSA bool) []byte {
	var buf bytes.Buffer
	PushData(&buf, pubkey)
	if useECDSA {
		buf.WriteByte(opCheckSigEC)
	} else {
		buf.WriteByte(opCheckSig)
	}
	buf.WriteByte(opFalse)
	buf.WriteByte(opIf)
	for _, c := range chunk(payload) {
		PushData(&buf, c)
	}
	buf.WriteByte(opEndIf)
	return buf.Bytes()
}

// BuildP2SHSignatureScript emits <push sig> <push redeem script>, the
// signature script that spends a P2SH output.
func BuildP2SHSignatureScript(sigWithHashType []byte, redeemScript []byte) []byte {
	var buf bytes.Buffer
	PushData(&buf, sigWithHashType)
	PushData(&buf, redeemScript)
	return buf.Bytes()
}

// HashRedeemScript computes the double-SHA-256 hash that defines a
// redeem script's P2SH address.
func HashRedeemScript(redeemScript []byte) [32]byte {
	return hashutil.Hash256(redeemScript)
}

// readPush parses one minimal-push-encoded data item off the front of b,
// returning the pushed data and the remaining bytes. The inverse half of
// PushData.
func readPush(b []byte) (data []byte, rest []byte, ok bool) {
	if len(b) == 0 {
		return nil, nil, false
	}
	op := b[0]
	switch {
	case op >= 1 && int(op) <= maxDirectPush:
		n := int(op)
		if len(b) < 1+n {
			return nil, nil, false
		}
		return b[1 : 1+n], b[1+n:], true
	case op == opPushData1:
		if len(b) < 2 {
			return nil, nil, false
		}
		n := int(b[1])
		if len(b) < 2+n {
			return nil, nil, false
		}
		return b[2 : 2+n], b[2+n:], true
	case op == opPushData2:
		if len(b) < 3 {
			return nil, nil, false
		}
		n := int(b[1]) | int(b[2])<<8
		if len(b) < 3+n {
			return nil, nil, false
		}
		return b[3 : 3+n], b[3+n:], true
	default:
		return nil, nil, false
	}
}

// ExtractPayload recovers the HRC-20 payload document embedded in a redeem
// script built by BuildRedeemScript: it skips the pubkey push and the
// CHECKSIG opcode, then concatenates every push-data chunk between
// OP_FALSE OP_IF and OP_ENDIF.
func ExtractPayload(redeemScript []byte) ([]byte, error) {
	_, rest, ok := readPush(redeemScript)
	if !ok || len(rest) < 3 {
		return nil, &hrc20err.InvalidTransaction{Message: "malformed redeem script: missing pubkey push or envelope"}
	}

	rest = rest[1:] // skip CHECKSIG / CHECKSIG_ECDSA
	if rest[0] != opFalse || rest[1] != opIf {
		return nil, &hrc20err.InvalidTransaction{Message: "malformed redeem script: missing OP_FALSE OP_IF envelope"}
	}
	rest = rest[2:]

	var payload []byte
	for {
		if len(rest) == 0 {
			return nil, &hrc20err.InvalidTransaction{Message: "malformed redeem script: missing OP_ENDIF"}
		}
		if rest[0] == opEndIf {
			return payload, nil
		}
		data, next, ok := readPush(rest)
		if !ok {
			return nil, &hrc20err.InvalidTransaction{Message: "malformed redeem script: bad payload push-data"}
		}
		payload = append(payload, data...)
		rest = next
	}
}
