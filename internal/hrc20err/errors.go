// Package hrc20err defines the typed error kinds the engine surfaces to
// callers. Every exported error is a small struct implementing the error
// interface so callers can use errors.As instead of string matching.
package hrc20err

import "fmt"

// InvalidAddress reports an address codec failure: bad prefix, alphabet
// violation, checksum mismatch, or tag/payload-length mismatch.
type InvalidAddress struct {
	Reason string
}

func (e *InvalidAddress) Error() string {
	return fmt.Sprintf("invalid address: %s", e.Reason)
}

// InvalidHex reports odd-length or non-hex-digit input.
type InvalidHex struct {
	Reason string
}

func (e *InvalidHex) Error() string {
	return fmt.Sprintf("invalid hex: %s", e.Reason)
}

// InvalidPubkey reports a public key of the wrong length for its curve.
type InvalidPubkey struct {
	Reason string
}

func (e *InvalidPubkey) Error() string {
	return fmt.Sprintf("invalid pubkey: %s", e.Reason)
}

// InvalidTransaction reports a malformed transaction or a missing pending
// reveal entry.
type InvalidTransaction struct {
	Message string
}

func (e *InvalidTransaction) Error() string {
	return fmt.Sprintf("invalid transaction: %s", e.Message)
}

// InsufficientFunds reports that UTXO selection could not meet the
// required amount.
type InsufficientFunds struct {
	Required  uint64
	Available uint64
}

func (e *InsufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds: required %d sompi, available %d sompi", e.Required, e.Available)
}

// CryptographicError reports a signer failure or an infeasible sighash
// computation.
type CryptographicError struct {
	Message string
}

func (e *CryptographicError) Error() string {
	return fmt.Sprintf("cryptographic error: %s", e.Message)
}

// NetworkError reports a node HTTP failure.
type NetworkError struct {
	Message string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s", e.Message)
}

// Unknown is the catch-all for wrapped host errors.
type Unknown struct {
	Message string
}

func (e *Unknown) Error() string {
	return fmt.Sprintf("unknown error: %s", e.Message)
}
