package address

import (
	"bytes"
	"testing"

	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
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

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		hrp     string
		addrType Type
		payload []byte
	}{
		{"schnorr", "hoosat", TypeSchnorr, repeatByte(0xAB, 32)},
		{"ecdsa", "hoosat", TypeECDSA, append([]byte{0x02}, repeatByte(0xAB, 32)...)},
		{"p2sh", "hoosattest", TypeP2SH, repeatByte(0xCD, 32)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			addrStr, err := Encode(tc.hrp, tc.addrType, tc.payload)
			require.NoError(t, err)

			gotType, gotPayload, err := Decode(addrStr, tc.hrp)
			require.NoError(t, err)
			assert.Equal(t, tc.addrType, gotType)
			assert.True(t, bytes.Equal(tc.payload, gotPayload))
		})
	}
}

func TestDecodeAnyPrefixWhenUnspecified(t *testing.T) {
	addrStr, err := Encode("hoosattest", TypeSchnorr, repeatByte(0x11, 32))
	require.NoError(t, err)
	_, _, err = Decode(addrStr, "")
	require.NoError(t, err)
}

func TestDecodeRejectsMutatedChecksum(t *testing.T) {
	addrStr, err := Encode("hoosat", TypeSchnorr, repeatByte(0x42, 32))
	require.NoError(t, err)

	parts := []byte(addrStr)
	last := len(parts) - 1
	mutated := make([]byte, len(parts))
	copy(mutated, parts)
	if mutated[last] == 'q' {
		mutated[last] = 'p'
	} else {
		mutated[last] = 'q'
	}

	_, _, err = Decode(string(mutated), "hoosat")
	require.Error(t, err)
	var invalidAddr *hrc20err.InvalidAddress
	assert.ErrorAs(t, err, &invalidAddr)
}

func TestEncodeRejectsWrongPayloadLength(t *testing.T) {
	_, err := Encode("hoosat", TypeSchnorr, repeatByte(0x01, 31))
	require.Error(t, err)
}

func TestGenerateScriptPublicKeyShapes(t *testing.T) {
	schnorrPK, err := GenerateScriptPublicKey(TypeSchnorr, repeatByte(0xAB, 32))
	require.NoError(t, err)
	assert.Len(t, schnorrPK, 34)
	assert.Equal(t, byte(0x20), schnorrPK[0])
	assert.Equal(t, byte(0xAC), schnorrPK[len(schnorrPK)-1])

	ecdsaPK, err := GenerateScriptPublicKey(TypeECDSA, append([]byte{0x02}, repeatByte(0xAB, 32)...))
	require.NoError(t, err)
	assert.Len(t, ecdsaPK, 35)
	assert.Equal(t, byte(0x21), ecdsaPK[0])
	assert.Equal(t, byte(0xAB), ecdsaPK[len(ecdsaPK)-1])
}
