// Package config loads engine configuration from the environment once at
// process start. Nothing below internal/config reads os.Getenv directly.
package config

import "os"

// Config holds the engine's boot-time environment. All fields are constants
// for the lifetime of a process, matching the teacher's settlement gate.
type Config struct {
	NetworkPrefix       string // "hoosat" or "hoosattest"
	NodeAPIURL          string
	SignerSubjectPrefix string // NATS subject prefix the remote signer listens on
	NATSURL             string // empty disables the NATS transport
	RegistryPath        string // pending-reveal registry snapshot file

	// SignerKeyName identifies the key the remote signer should use; it is
	// the third boot-time constant spec section 6's Environment paragraph
	// names alongside the network prefix and API host URL.
	SignerKeyName string
	// SignerPubkeyHex is the public key corresponding to SignerKeyName. The
	// remote signer is opaque to this engine (it never returns a public
	// key), so the key's public half must be provisioned alongside its
	// name.
	SignerPubkeyHex string
	// UseECDSA selects the ECDSA signing path over the Schnorr default.
	UseECDSA bool
}

const (
	envNetworkPrefix  = "HRC20_NETWORK_PREFIX"
	envNodeAPIURL     = "HRC20_NODE_API_URL"
	envSignerSubject  = "HRC20_SIGNER_SUBJECT_PREFIX"
	envNATSURL        = "NATS_URL"
	envRegistryPath   = "HRC20_REGISTRY_PATH"
	envSignerKeyName  = "HRC20_SIGNER_KEY_NAME"
	envSignerPubkey   = "HRC20_SIGNER_PUBKEY_HEX"
	envUseECDSA       = "HRC20_USE_ECDSA"
)

// FromEnv reads the engine's configuration from the process environment,
// applying the same defaults the teacher applies for its API URL flag.
func FromEnv() Config {
	return Config{
		NetworkPrefix:       getenvDefault(envNetworkPrefix, "hoosat"),
		NodeAPIURL:          getenvDefault(envNodeAPIURL, "http://localhost:16210"),
		SignerSubjectPrefix: getenvDefault(envSignerSubject, "hrc20.signer"),
		NATSURL:             os.Getenv(envNATSURL),
		RegistryPath:        getenvDefault(envRegistryPath, "hrc20-registry.json"),
		SignerKeyName:       getenvDefault(envSignerKeyName, "default"),
		SignerPubkeyHex:     os.Getenv(envSignerPubkey),
		UseECDSA:            os.Getenv(envUseECDSA) == "true",
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
