// Package address implements the CashAddr-style address codec described in
// spec section 4.1: encode/decode of Schnorr, ECDSA, and P2SH addresses and
// derivation of their script public keys.
package address

import (
	"strings"

	"github.com/hoosat-labs/hrc20-engine/internal/bech32cash"
	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
)

// Type tags an address by its payload shape and signing curve.
type Type byte

const (
	TypeSchnorr Type = 0 // 32-byte payload
	TypeECDSA   Type = 1 // 33-byte payload
	TypeP2SH    Type = 8 // 32-byte payload (script hash)
)

func payloadLen(t Type) (int, bool) {
	switch t {
	case TypeSchnorr:
		return 32, true
	case TypeECDSA:
		return 33, true
	case TypeP2SH:
		return 32, true
	default:
		return 0, false
	}
}

// Address is a decoded CashAddr-style address: the human-readable prefix it
// was generated with, its type, and the raw payload bytes.
type Address struct {
	Prefix  string
	Type    Type
	Payload []byte
}

// String renders the address in "<prefix>:<body>" canonical form, using the
// prefix case the address was built with (spec 4.1's mixed-case rule).
func (a Address) String() string {
	return a.Prefix + ":" + encodeBody(a.Prefix, a.Type, a.Payload)
}

// Encode builds the canonical address string for hrp/addrType/payload.
// payload must match the expected length for addrType.
func Encode(hrp string, addrType Type, payload []byte) (string, error) {
	want, ok := payloadLen(addrType)
	if !ok {
		return "", &hrc20err.InvalidAddress{Reason: "unknown address type"}
	}
	if len(payload) != want {
		return "", &hrc20err.InvalidAddress{Reason: "payload length mismatch"}
	}
	return hrp + ":" + encodeBody(hrp, addrType, payload), nil
}

func encodeBody(hrp string, addrType Type, payload []byte) string {
	tagged := make([]byte, 0, 1+len(payload))
	tagged = append(tagged, byte(addrType))
	tagged = append(tagged, payload...)

	fiveBit, _ := bech32cash.ConvertBits(tagged, 8, 5, true)
	checksum := bech32cash.ChecksumSymbols(hrp, fiveBit)

	symbols := make([]byte, 0, len(fiveBit)+len(checksum))
	symbols = append(symbols, fiveBit...)
	symbols = append(symbols, checksum...)
	return bech32cash.Encode5Bit(symbols)
}

// Decode parses addrStr into its type and payload. If expectedHRP is
// non-empty, the prefix must match (case-insensitively); otherwise any
// recognized prefix is accepted.
func Decode(addrStr string, expectedHRP string) (Type, []byte, error) {
	parts := strings.SplitN(addrStr, ":", 2)
	if len(parts) != 2 {
		return 0, nil, &hrc20err.InvalidAddress{Reason: "missing prefix separator"}
	}
	prefix, body := parts[0], parts[1]
	if expectedHRP != "" && !strings.EqualFold(prefix, expectedHRP) {
		return 0, nil, &hrc20err.InvalidAddress{Reason: "prefix mismatch"}
	}

	symbols, err := bech32cash.Decode5Bit(body)
	if err != nil {
		return 0, nil, err
	}
	if len(symbols) < 8 {
		return 0, nil, &hrc20err.InvalidAddress{Reason: "body too short for checksum"}
	}
	if !bech32cash.VerifyChecksum(prefix, symbols) {
		return 0, nil, &hrc20err.InvalidAddress{Reason: "checksum mismatch"}
	}

	fiveBit := symbols[:len(symbols)-8]
	tagged, err := bech32cash.ConvertBits(fiveBit, 5, 8, false)
	if err != nil {
		return 0, nil, &hrc20err.InvalidAddress{Reason: "bit conversion failed"}
	}
	if len(tagged) < 1 {
		return 0, nil, &hrc20err.InvalidAddress{Reason: "empty payload"}
	}

	addrType := Type(tagged[0])
	payload := tagged[1:]
	want, ok := payloadLen(addrType)
	if !ok {
		return 0, nil, &hrc20err.InvalidAddress{Reason: "unknown address type"}
	}
	if len(payload) != want {
		return 0, nil, &hrc20err.InvalidAddress{Reason: "tag/payload-length mismatch"}
	}
	return addrType, payload, nil
}

// GenerateScriptPublicKey builds the locking script for a payload of the
// given type: Schnorr -> OP_DATA_32 <pk> OP_CHECKSIG, ECDSA -> OP_DATA_33
// <pk> OP_CHECKSIG_ECDSA, P2SH -> OP_BLAKE3 OP_DATA_32 <hash> OP_EQUAL.
func GenerateScriptPublicKey(addrType Type, payload []byte) ([]byte, error) {
	want, ok := payloadLen(addrType)
	if !ok {
		return nil, &hrc20err.InvalidAddress{Reason: "unknown address type"}
	}
	if len(payload) != want {
		return nil, &hrc20err.InvalidAddress{Reason: "payload length mismatch"}
	}

	switch addrType {
	case TypeSchnorr:
		out := make([]byte, 0, 34)
		out = append(out, 0x20)
		out = append(out, payload...)
		out = append(out, 0xAC)
		return out, nil
	case TypeECDSA:
		out := make([]byte, 0, 35)
		out = append(out, 0x21)
		out = append(out, payload...)
		out = append(out, 0xAB)
		return out, nil
	case TypeP2SH:
		const opBlake3 = 0xAA
		const opEqual = 0x87
		out := make([]byte, 0, 35)
		out = append(out, opBlake3, 0x20)
		out = append(out, payload...)
		out = append(out, opEqual)
		return out, nil
	default:
		return nil, &hrc20err.InvalidAddress{Reason: "unknown address type"}
	}
}
