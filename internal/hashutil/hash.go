// Package hashutil holds the hash primitives the rest of the engine builds
// on: double-SHA-256 for script hashes and sighashes, a BLAKE3-keyed hash
// for the secondary transaction id, and a plain BLAKE3 hash for the
// registry checksum.
package hashutil

import (
	"crypto/sha256"

	"lukechampine.com/blake3"
)

// Hash256 is double-SHA-256, the hash used for redeem-script hashes and the
// ECDSA sighash digest.
func Hash256(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Blake3TxID derives a secondary content-addressed transaction id, keyed by
// a fixed domain key so it cannot collide with an unrelated BLAKE3 use of
// the same bytes elsewhere in the host runtime.
func Blake3TxID(serializedTx []byte) [32]byte {
	// Keyed BLAKE3 takes a 32-byte key, so the domain string is hashed
	// down to one.
	key := blake3.Sum256([]byte("hrc20-engine-txid"))
	h := blake3.New(32, key[:])
	h.Write(serializedTx)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Blake3Checksum computes the checksum stored alongside the persisted
// pending-reveal registry so a truncated or corrupted snapshot is caught at
// load time.
func Blake3Checksum(data []byte) [32]byte {
	return blake3.Sum256(data)
}
