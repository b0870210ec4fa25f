package script

import (
	"bytes"
	"crypto/sha256"
	"testing"

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

func TestBuildRedeemScriptDeterministic(t *testing.T) {
	pubkey := repeatByte(0xAB, 32)
	payload := []byte(`{"p":"hrc-20","op":"deploy","tick":"HOOS","max":"1","lim":"1"}`)

	s1 := BuildRedeemScript(pubkey, payload, false)
	s2 := BuildRedeemScript(pubkey, payload, false)
	assert.True(t, bytes.Equal(s1, s2))

	differentPayload := append(append([]byte{}, payload...), 'x')
	s3 := BuildRedeemScript(pubkey, differentPayload, false)
	assert.False(t, bytes.Equal(s1, s3))
}

func TestBuildRedeemScriptEnvelopeShape(t *testing.T) {
	pubkey := repeatByte(0xAB, 32)
	payload := []byte("hello")
	s := BuildRedeemScript(pubkey, payload, false)

	require.True(t, len(s) > 0)
	assert.Equal(t, byte(32), s[0]) // direct push of the 32-byte pubkey
	assert.Equal(t, byte(0xAC), s[33])
	assert.Equal(t, byte(opFalse), s[34])
	assert.Equal(t, byte(opIf), s[35])
	assert.Equal(t, byte(opEndIf), s[len(s)-1])
}

func TestBuildRedeemScriptChunksLargePayload(t *testing.T) {
	pubkey := repeatByte(0xAB, 32)
	payload := repeatByte(0x41, 1200)
	s := BuildRedeemScript(pubkey, payload, true)
	assert.Equal(t, byte(0xAB), s[33]) // OP_CHECKSIG_ECDSA selected
	// 1200 bytes = 520 + 520 + 160: two OP_PUSHDATA2 pushes (3+520 each)
	// and one OP_PUSHDATA1 push (2+160), after 36 bytes of pubkey push,
	// CHECKSIG, OP_FALSE, OP_IF, plus the trailing OP_ENDIF.
	assert.Equal(t, byte(opPushData2), s[36])
	assert.Len(t, s, 36+523+523+162+1)
	assert.Equal(t, byte(opEndIf), s[len(s)-1])
}

func TestHashRedeemScriptIsDoubleSHA256(t *testing.T) {
	s := BuildRedeemScript(repeatByte(0x01, 32), []byte("x"), false)
	h1 := HashRedeemScript(s)
	first := sha256.Sum256(s)
	h2 := sha256.Sum256(first[:])
	assert.Equal(t, h2, h1)
}

func TestBuildP2SHSignatureScript(t *testing.T) {
	sig := repeatByte(0x99, 65)
	redeem := repeatByte(0x01, 10)
	sigScript := BuildP2SHSignatureScript(sig, redeem)
	assert.Equal(t, byte(65), sigScript[0])
	assert.Equal(t, byte(10), sigScript[66])
}

func TestExtractPayloadRoundTrip(t *testing.T) {
	pubkey := repeatByte(0xAB, 32)
	payload := []byte(`{"p":"hrc-20","op":"mint","tick":"HOOS"}`)
	s := BuildRedeemScript(pubkey, payload, false)

	got, err := ExtractPayload(s)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestExtractPayloadRoundTripAcrossChunkBoundary(t *testing.T) {
	pubkey := repeatByte(0xAB, 32)
	payload := repeatByte(0x41, 1200) // spans multiple 520-byte push chunks
	s := BuildRedeemScript(pubkey, payload, true)

	got, err := ExtractPayload(s)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestExtractPayloadRejectsTruncatedScript(t *testing.T) {
	pubkey := repeatByte(0xAB, 32)
	s := BuildRedeemScript(pubkey, []byte("x"), false)

	_, err := ExtractPayload(s[:len(s)-2]) // drop OP_ENDIF and the last push byte
	require.Error(t, err)
}

func TestExtractPayloadRejectsMissingEnvelope(t *testing.T) {
	_, err := ExtractPayload([]byte{0x01, 0xAA})
	require.Error(t, err)
}
