package bech32cash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumRoundTrip(t *testing.T) {
	payload := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	checksum := ChecksumSymbols("hoosat", payload)
	require.Len(t, checksum, 8)

	full := append(append([]byte{}, payload...), checksum...)
	assert.True(t, VerifyChecksum("hoosat", full))
}

func TestChecksumDetectsMutation(t *testing.T) {
	payload := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	checksum := ChecksumSymbols("hoosat", payload)
	full := append(append([]byte{}, payload...), checksum...)
	full[0] ^= 1

	assert.False(t, VerifyChecksum("hoosat", full))
}

func TestChecksumIsPrefixSensitive(t *testing.T) {
	payload := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	checksum := ChecksumSymbols("hoosat", payload)
	full := append(append([]byte{}, payload...), checksum...)

	assert.False(t, VerifyChecksum("hoosattest", full))
}

func TestEncodeDecode5BitRoundTrip(t *testing.T) {
	values := []byte{0, 5, 10, 31, 17}
	encoded := Encode5Bit(values)
	decoded, err := Decode5Bit(encoded)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestDecode5BitRejectsOutOfAlphabet(t *testing.T) {
	_, err := Decode5Bit("b1io") // '1', 'i', 'o' are not in the CashAddr charset
	require.Error(t, err)
}

func TestConvertBitsRoundTrip(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	fiveBit, err := ConvertBits(data, 8, 5, true)
	require.NoError(t, err)

	back, err := ConvertBits(fiveBit, 5, 8, false)
	require.NoError(t, err)
	assert.Equal(t, data, back[:len(data)])
}
