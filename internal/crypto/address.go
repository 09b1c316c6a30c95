package crypto

import (
	"encoding/hex"
	"hash"

	"github.com/ethereum/go-ethereum/common"
)

const (
	PrivateKeyLength = 32
	// Uncompressed point without the leading 0x04 format byte: X (32) + Y (32).
	PublicKeyLength = 64
	AddressLength   = 20

	// "0x" + 40 lowercase hex digits
	AddressHexLength = 2 + 2*AddressLength
)

// AddressInto hashes a 64-byte public key and writes the 20-byte address into addrBuf.
// Reuses the provided hasher to avoid allocations. hashBuf must be at least 32 bytes,
// addrBuf must be 20 bytes.
func AddressInto(hasher hash.Hash, pubKey, hashBuf, addrBuf []byte) {
	hasher.Reset()
	hasher.Write(pubKey)
	sum := hasher.Sum(hashBuf[:0])
	copy(addrBuf, sum[12:32])
}

// AddressHexInto renders addr as 0x-prefixed lowercase hex into dst and returns
// the filled part of dst. dst must hold at least 2+2*len(addr) bytes.
func AddressHexInto(dst, addr []byte) []byte {
	dst[0] = '0'
	dst[1] = 'x'
	n := hex.Encode(dst[2:], addr)
	return dst[:2+n]
}

// ChecksumAddress converts a 20-byte address to its EIP-55 checksummed string.
// Only call when you need the string (e.g. for result output).
func ChecksumAddress(addr20 []byte) string {
	return common.BytesToAddress(addr20).Hex()
}
