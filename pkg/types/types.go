package types

import (
	"time"

	"github.com/screa/eth-vanity-miner/internal/crypto"
	"github.com/screa/eth-vanity-miner/pkg/pattern"
)

// Result represents a mining result
type Result struct {
	Account  crypto.Account
	Attempts uint64
	Duration time.Duration
}

// Rate returns attempts per second, or 0 when no time has elapsed.
func (r *Result) Rate() float64 {
	if r.Duration.Seconds() <= 0 {
		return 0
	}
	return float64(r.Attempts) / r.Duration.Seconds()
}

// WorkerConfig contains configuration shared by all workers of one search
type WorkerConfig struct {
	Pattern   *pattern.Pattern
	Verbosity int

	// Candidates receives every generated address at verbosity 2 and above.
	// Nil disables streaming.
	Candidates CandidateSink
}

// CandidateSink receives generated addresses as 0x-prefixed hex. The slice is
// only valid for the duration of the call.
type CandidateSink interface {
	Candidate(addrHex []byte)
}

// WorkerResult represents a single attempt by one worker
type WorkerResult struct {
	Account crypto.Account
	IsMatch bool
}
