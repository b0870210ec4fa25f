// NATSSigner requests signatures over NATS request/reply, mirroring the
// teacher's SettlementManager (services/node/settlement.go): connect with
// reconnect handlers, gate on an env-provided URL, communicate over a
// subject prefix.
package signer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hoosat-labs/hrc20-engine/internal/hexcodec"
	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
	"github.com/nats-io/nats.go"
)

// NATSSigner is a Signer backed by a NATS connection to the external
// threshold-signing service.
type NATSSigner struct {
	nc            *nats.Conn
	subjectPrefix string
	timeout       time.Duration
}

type signRequest struct {
	KeyName        string `json:"key_name"`
	DerivationPath string `json:"derivation_path"`
	Digest         string `json:"digest_hex"`
	Curve          string `json:"curve"`
}

type signReply struct {
	SignatureHex string `json:"signature_hex"`
	Error        string `json:"error,omitempty"`
}

// NewNATSSigner connects to natsURL with the same reconnect/disconnect
// logging the teacher installs on its settlement connection.
func NewNATSSigner(natsURL, subjectPrefix string) (*NATSSigner, error) {
	nc, err := nats.Connect(natsURL,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Printf("signer: NATS disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("signer: NATS reconnected to %v", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Printf("signer: NATS connection closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("signer: connect to NATS: %w", err)
	}
	return &NATSSigner{nc: nc, subjectPrefix: subjectPrefix, timeout: 30 * time.Second}, nil
}

func curveName(c Curve) string {
	if c == CurveSchnorr {
		return "schnorr"
	}
	return "ecdsa"
}

// Sign publishes a sign request to "<subjectPrefix>.sign" and waits for the
// reply, converting any failure into hrc20err.CryptographicError.
func (s *NATSSigner) Sign(ctx context.Context, keyName string, derivationPath string, digest [32]byte, curve Curve) ([]byte, error) {
	req := signRequest{
		KeyName:        keyName,
		DerivationPath: derivationPath,
		Digest:         hexcodec.Encode(digest[:]),
		Curve:          curveName(curve),
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &hrc20err.CryptographicError{Message: fmt.Sprintf("marshal sign request: %v", err)}
	}

	subject := s.subjectPrefix + ".sign"
	msg, err := s.nc.RequestWithContext(ctx, subject, body)
	if err != nil {
		return nil, &hrc20err.CryptographicError{Message: fmt.Sprintf("signer RPC: %v", err)}
	}

	var reply signReply
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return nil, &hrc20err.CryptographicError{Message: fmt.Sprintf("unmarshal sign reply: %v", err)}
	}
	if reply.Error != "" {
		return nil, &hrc20err.CryptographicError{Message: reply.Error}
	}

	sig, err := hexcodec.Decode(reply.SignatureHex)
	if err != nil {
		return nil, &hrc20err.CryptographicError{Message: fmt.Sprintf("decode signature: %v", err)}
	}
	return sig, nil
}

// Close drains and closes the underlying NATS connection.
func (s *NATSSigner) Close() {
	if s.nc != nil {
		s.nc.Close()
	}
}
