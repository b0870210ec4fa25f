// Package bech32cash implements the CashAddr-style bech32 variant used by
// the address codec: 8-bit/5-bit conversion (reused from btcutil/bech32),
// a hand-written 40-bit polymod checksum, and the CashAddr charset.
//
// The bit-squashing step is identical to standard bech32 and is not
// reimplemented here; the checksum polynomial is CashAddr/Hoosat-specific
// and has no stdlib or pack-library equivalent.
package bech32cash

import (
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var charsetIndex = func() map[byte]byte {
	m := make(map[byte]byte, len(charset))
	for i := 0; i < len(charset); i++ {
		m[charset[i]] = byte(i)
	}
	return m
}()

// ConvertBits re-exports btcutil/bech32's 8-bit/5-bit group conversion with
// MSB-first padding, as used by the address codec on both encode and decode.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	return bech32.ConvertBits(data, fromBits, toBits, pad)
}

// polymod computes the CashAddr 40-bit checksum polynomial over a sequence
// of 5-bit values.
func polymod(values []byte) uint64 {
	gen := [5]uint64{0x98f2bc8e61, 0x79b76d99e2, 0xf33e5fb3c4, 0xae2eabe2a8, 0x1e4f43e470}
	c := uint64(1)
	for _, d := range values {
		c0 := byte(c >> 35)
		c = ((c & 0x07ffffffff) << 5) ^ uint64(d)
		for i := 0; i < 5; i++ {
			if (c0>>uint(i))&1 != 0 {
				c ^= gen[i]
			}
		}
	}
	return c ^ 1
}

// expandPrefix lowercases hrp and maps each byte to its lower 5 bits,
// appending a zero separator, per the CashAddr checksum definition.
func expandPrefix(hrp string) []byte {
	lower := strings.ToLower(hrp)
	out := make([]byte, 0, len(lower)+1)
	for i := 0; i < len(lower); i++ {
		out = append(out, lower[i]&0x1f)
	}
	out = append(out, 0)
	return out
}

// ChecksumSymbols computes the 8 trailing 5-bit checksum symbols for hrp
// and the 5-bit payload (tag + payload, already converted to 5-bit groups,
// not yet including the checksum placeholder).
func ChecksumSymbols(hrp string, fiveBitPayload []byte) []byte {
	values := make([]byte, 0, len(fiveBitPayload)+8)
	values = append(values, fiveBitPayload...)
	values = append(values, make([]byte, 8)...)
	full := append(expandPrefix(hrp), values...)
	mod := polymod(full)
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte((mod >> uint(5*(7-i))) & 0x1f)
	}
	return out
}

// Encode5Bit maps 5-bit values to their CashAddr charset characters.
func Encode5Bit(values []byte) string {
	var sb strings.Builder
	sb.Grow(len(values))
	for _, v := range values {
		sb.WriteByte(charset[v])
	}
	return sb.String()
}

// Decode5Bit maps CashAddr charset characters back to 5-bit values,
// failing with InvalidAddress on any character outside the alphabet.
func Decode5Bit(body string) ([]byte, error) {
	out := make([]byte, len(body))
	lower := strings.ToLower(body)
	for i := 0; i < len(lower); i++ {
		v, ok := charsetIndex[lower[i]]
		if !ok {
			return nil, &hrc20err.InvalidAddress{Reason: "alphabet violation"}
		}
		out[i] = v
	}
	return out, nil
}

// VerifyChecksum recomputes the polymod over the full symbol sequence
// (including the trailing checksum) and reports whether it equals zero, the
// CashAddr validity condition.
func VerifyChecksum(hrp string, fiveBitWithChecksum []byte) bool {
	full := append(expandPrefix(hrp), fiveBitWithChecksum...)
	return polymod(full) == 0
}
