// FakeSigner is an in-memory Signer backed by a local keypair, used by
// orchestrator tests and the CLI's --fake debug flag. Grounded in the
// teacher's habit of keeping a manual demo/test harness alongside real
// network code (blacktrace-go/main.go's two-node demo, read before that
// directory was removed as a duplicate nested module).
package signer

import (
	"context"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
)

// FakeSigner signs with a single in-process private key, ignoring keyName
// and derivationPath. Not for production use.
type FakeSigner struct {
	priv *btcec.PrivateKey
}

// NewFakeSigner generates a fresh secp256k1 keypair for local dry runs.
func NewFakeSigner() (*FakeSigner, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, &hrc20err.CryptographicError{Message: err.Error()}
	}
	return &FakeSigner{priv: priv}, nil
}

// SchnorrPubkey returns the 32-byte x-only public key for script building.
func (f *FakeSigner) SchnorrPubkey() []byte {
	return schnorr.SerializePubKey(f.priv.PubKey())
}

// ECDSAPubkey returns the 33-byte compressed public key for script
// building.
func (f *FakeSigner) ECDSAPubkey() []byte {
	return f.priv.PubKey().SerializeCompressed()
}

// Sign signs digest under the fake signer's single keypair.
func (f *FakeSigner) Sign(_ context.Context, _ string, _ string, digest [32]byte, curve Curve) ([]byte, error) {
	switch curve {
	case CurveSchnorr:
		sig, err := schnorr.Sign(f.priv, digest[:])
		if err != nil {
			return nil, &hrc20err.CryptographicError{Message: err.Error()}
		}
		return sig.Serialize(), nil
	case CurveECDSA:
		sig := btcecdsa.Sign(f.priv, digest[:])
		return sig.Serialize(), nil
	default:
		return nil, &hrc20err.CryptographicError{Message: "unknown curve"}
	}
}
