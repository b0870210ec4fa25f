// Package signer adapts the engine to an external threshold-signing
// service (spec section 4.7). The engine never holds a private key: it
// hands a 32-byte digest to a Signer and gets back a raw or DER-encoded
// signature.
package signer

import "context"

// Curve selects the signing curve a digest should be signed under.
type Curve int

const (
	CurveECDSA Curve = iota
	CurveSchnorr
)

// SighashAll is the only hash type this engine produces; the engine
// appends it to the returned signature before embedding it in a script.
const SighashAll = 0x01

// Signer requests a signature over a 32-byte digest from a named key.
// Schnorr signatures are 64 raw bytes; ECDSA signatures are DER-encoded.
// Implementations must treat failures as hrc20err.CryptographicError.
type Signer interface {
	Sign(ctx context.Context, keyName string, derivationPath string, digest [32]byte, curve Curve) ([]byte, error)
}
