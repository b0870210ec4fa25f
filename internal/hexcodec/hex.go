// Package hexcodec implements lowercase hex encoding and strict hex
// decoding with explicit parity and alphabet checks, rather than relying
// on the stdlib error text.
package hexcodec

import (
	"encoding/hex"

	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
)

// Encode lowercases-encodes b as hex. encoding/hex already emits lowercase.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// Decode parses s as strict hex: odd length or any non-hex digit is
// rejected with hrc20err.InvalidHex. Upper- and lowercase digits are both
// accepted.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, &hrc20err.InvalidHex{Reason: "odd length"}
	}
	for _, c := range s {
		if !isHexDigit(c) {
			return nil, &hrc20err.InvalidHex{Reason: "non-hex digit"}
		}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &hrc20err.InvalidHex{Reason: err.Error()}
	}
	return b, nil
}

func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
