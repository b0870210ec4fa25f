package hashutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash256Deterministic(t *testing.T) {
	data := []byte("hrc-20 redeem script")
	a := Hash256(data)
	b := Hash256(data)
	assert.Equal(t, a, b)
}

func TestHash256DiffersOnInputChange(t *testing.T) {
	a := Hash256([]byte("payload-a"))
	b := Hash256([]byte("payload-b"))
	assert.NotEqual(t, a, b)
}

func TestBlake3TxIDDeterministic(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	assert.Equal(t, Blake3TxID(data), Blake3TxID(data))
}

func TestBlake3ChecksumDetectsMutation(t *testing.T) {
	a := Blake3Checksum([]byte("registry-snapshot"))
	b := Blake3Checksum([]byte("registry-snapshot!"))
	assert.NotEqual(t, a, b)
}
