package bubblegum

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
)

// Keypair is a freshly generated wallet. SecretKey is the base58-encoded
// 64-byte ed25519 secret key, the form every operation here accepts as
// payerKeypair. Keep it out of logs and version control.
type Keypair struct {
	Address   string
	SecretKey string
}

// NewKeypair generates a Solana-compatible ed25519 keypair, e.g. for a
// host application bootstrapping a devnet payer wallet.
func NewKeypair() Keypair {
	acc := types.NewAccount()
	return Keypair{
		Address:   acc.PublicKey.ToBase58(),
		SecretKey: base58.Encode(acc.PrivateKey),
	}
}

// accountFromBase58 restores a signing account from a base58-encoded
// secret key. Validation boundary: base58 alphabet, the 64-byte ed25519
// length, and seed/public-key consistency as checked by AccountFromBytes.
// Address-format checks beyond the keypair are left to the on-chain
// program.
func accountFromBase58(secret string) (types.Account, error) {
	raw, err := base58.Decode(strings.TrimSpace(secret))
	if err != nil {
		return types.Account{}, fmt.Errorf("%w: %v", ErrInvalidKeypair, err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return types.Account{}, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKeypair, ed25519.PrivateKeySize, len(raw))
	}
	acc, err := types.AccountFromBytes(raw)
	if err != nil {
		return types.Account{}, fmt.Errorf("%w: %v", ErrInvalidKeypair, err)
	}
	return acc, nil
}
