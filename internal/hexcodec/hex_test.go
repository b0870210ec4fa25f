package hexcodec

import (
	"testing"

	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0xde, 0xad, 0xbe, 0xef},
		make([]byte, 64),
	}
	for _, b := range cases {
		encoded := Encode(b)
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, b, decoded)
	}
}

func TestDecodeOddLength(t *testing.T) {
	_, err := Decode("abc")
	require.Error(t, err)
	var invalidHex *hrc20err.InvalidHex
	assert.ErrorAs(t, err, &invalidHex)
}

func TestDecodeNonHexDigit(t *testing.T) {
	_, err := Decode("zz")
	require.Error(t, err)
	var invalidHex *hrc20err.InvalidHex
	assert.ErrorAs(t, err, &invalidHex)
}
