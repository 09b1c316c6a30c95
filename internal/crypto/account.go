package crypto

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

// Errors
var (
	ErrInvalidSecretLength = errors.New("secret must be 32 bytes")
	ErrInvalidScalar       = errors.New("secret is not a valid secp256k1 scalar")
	ErrSourceFailed        = errors.New("byte source failed")
)

// maxRedraws bounds how many out-of-range secrets Random discards in a row.
// A uniform source hits one with probability ~2^-128, so reaching the bound
// means the source is broken.
const maxRedraws = 8

// Account is an Ethereum key pair and its address. The zero value is not a
// valid account; obtain one from Derive, Deriver or NewRandomAccount.
type Account struct {
	privateKey [PrivateKeyLength]byte
	publicKey  [PublicKeyLength]byte
	address    [AddressLength]byte
}

// PrivateKey returns a copy of the 32-byte private scalar.
func (a Account) PrivateKey() []byte { return bytes.Clone(a.privateKey[:]) }

// PublicKey returns a copy of the 64-byte uncompressed public key (X || Y).
func (a Account) PublicKey() []byte { return bytes.Clone(a.publicKey[:]) }

// Address returns a copy of the 20-byte address.
func (a Account) Address() []byte { return bytes.Clone(a.address[:]) }

func (a Account) PrivateKeyHex() string { return hexutil.Encode(a.privateKey[:]) }
func (a Account) PublicKeyHex() string  { return hexutil.Encode(a.publicKey[:]) }
func (a Account) AddressHex() string    { return hexutil.Encode(a.address[:]) }

// AddressHexInto writes AddressHex into dst without allocating and returns the
// filled part. dst must hold AddressHexLength bytes.
func (a Account) AddressHexInto(dst []byte) []byte { return AddressHexInto(dst, a.address[:]) }

// ChecksumAddress returns the EIP-55 mixed-case form of the address.
func (a Account) ChecksumAddress() string { return ChecksumAddress(a.address[:]) }

// ECDSA converts the account's private key for use with go-ethereum signing.
func (a Account) ECDSA() (*ecdsa.PrivateKey, error) {
	return gethcrypto.ToECDSA(a.privateKey[:])
}

// String prints the address only, so accounts can be logged without leaking keys.
func (a Account) String() string { return a.AddressHex() }

// Deriver turns secrets into accounts. It owns the Keccak state and scratch
// buffers so repeated derivations do not allocate them again. A Deriver is
// not safe for concurrent use; give each worker its own.
type Deriver struct {
	hasher  hash.Hash
	hashBuf [32]byte
	secret  [PrivateKeyLength]byte
}

// NewDeriver creates a deriver with a fresh Keccak-256 state.
func NewDeriver() *Deriver {
	return &Deriver{hasher: sha3.NewLegacyKeccak256()}
}

// Derive computes the public key and address for a 32-byte secret.
// The secret must be a scalar in [1, n-1].
func (d *Deriver) Derive(secret []byte) (Account, error) {
	if len(secret) != PrivateKeyLength {
		return Account{}, fmt.Errorf("%w: got %d", ErrInvalidSecretLength, len(secret))
	}

	var acct Account
	copy(acct.privateKey[:], secret)

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetBytes(&acct.privateKey); overflow != 0 || scalar.IsZero() {
		return Account{}, ErrInvalidScalar
	}

	// Q = d*G
	var point secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&scalar, &point)
	scalar.Zero()
	point.ToAffine()
	point.X.Normalize()
	point.Y.Normalize()
	point.X.PutBytesUnchecked(acct.publicKey[:32])
	point.Y.PutBytesUnchecked(acct.publicKey[32:])

	AddressInto(d.hasher, acct.publicKey[:], d.hashBuf[:], acct.address[:])
	return acct, nil
}

// Random draws 32 bytes from src and derives an account from them, redrawing
// when the bytes fall outside the scalar range.
func (d *Deriver) Random(src io.Reader) (Account, error) {
	for i := 0; i < maxRedraws; i++ {
		if _, err := io.ReadFull(src, d.secret[:]); err != nil {
			return Account{}, fmt.Errorf("%w: %w", ErrSourceFailed, err)
		}
		acct, err := d.Derive(d.secret[:])
		if errors.Is(err, ErrInvalidScalar) {
			continue
		}
		clear(d.secret[:])
		return acct, err
	}
	clear(d.secret[:])
	return Account{}, fmt.Errorf("%w: %d consecutive invalid scalars", ErrSourceFailed, maxRedraws)
}

// Derive is the allocating convenience form of (*Deriver).Derive.
func Derive(secret []byte) (Account, error) {
	return NewDeriver().Derive(secret)
}

// NewRandomAccount generates an account from the operating system CSPRNG.
func NewRandomAccount() (Account, error) {
	return NewDeriver().Random(rand.Reader)
}
