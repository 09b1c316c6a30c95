package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mrand "math/rand/v2"
)

// SourceFunc hands each worker its own byte source. Workers never share the
// reader they are given.
type SourceFunc func(worker int) io.Reader

// SystemSource returns the operating system CSPRNG for every worker.
func SystemSource(int) io.Reader {
	return rand.Reader
}

// SeededSource returns deterministic ChaCha8 streams keyed by seed and worker
// index. Keys drawn from it are reproducible and must never hold funds; it
// exists so searches can be replayed in tests.
func SeededSource(seed uint64) SourceFunc {
	return func(worker int) io.Reader {
		var key [32]byte
		binary.LittleEndian.PutUint64(key[0:8], seed)
		binary.LittleEndian.PutUint64(key[8:16], uint64(worker))
		return mrand.NewChaCha8(key)
	}
}
