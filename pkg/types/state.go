package types

import (
	"sync/atomic"

	"github.com/screa/eth-vanity-miner/internal/crypto"
)

// SearchStatus is the lifecycle of one search. It only ever leaves Active, once.
type SearchStatus int32

const (
	Active SearchStatus = iota
	Won
	Cancelled
	Failed
)

// String returns the status name.
func (s SearchStatus) String() string {
	switch s {
	case Active:
		return "active"
	case Won:
		return "won"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// SearchState is the termination gate shared by all workers of a search.
//
// Workers poll Active on every iteration without synchronizing with each
// other. Leaving the Active state is a single compare-and-swap, so exactly one
// of Claim, Cancel or Fail ever succeeds and the result slot is written at
// most once. Once every worker has returned, the result is non-nil iff the
// status is Won.
type SearchState struct {
	status   atomic.Int32
	result   atomic.Pointer[crypto.Account]
	attempts atomic.Uint64
}

// NewSearchState returns a state in the Active status.
func NewSearchState() *SearchState {
	return &SearchState{}
}

// Active reports whether the search is still running.
func (s *SearchState) Active() bool {
	return SearchStatus(s.status.Load()) == Active
}

// Status returns the current status.
func (s *SearchState) Status() SearchStatus {
	return SearchStatus(s.status.Load())
}

// Claim tries to end the search with acct as the winner. It returns false if
// another worker already won or the search was stopped, in which case acct
// must be discarded.
func (s *SearchState) Claim(acct crypto.Account) bool {
	if !s.status.CompareAndSwap(int32(Active), int32(Won)) {
		return false
	}
	s.result.Store(&acct)
	return true
}

// Cancel stops an active search without a winner.
func (s *SearchState) Cancel() bool {
	return s.status.CompareAndSwap(int32(Active), int32(Cancelled))
}

// Fail stops an active search because a worker broke.
func (s *SearchState) Fail() bool {
	return s.status.CompareAndSwap(int32(Active), int32(Failed))
}

// Result returns the winning account, or nil if nobody has won.
func (s *SearchState) Result() *crypto.Account {
	return s.result.Load()
}

// AddAttempt counts one generated candidate.
func (s *SearchState) AddAttempt() {
	s.attempts.Add(1)
}

// Attempts returns the approximate number of candidates generated so far.
func (s *SearchState) Attempts() uint64 {
	return s.attempts.Load()
}
