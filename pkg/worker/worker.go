package worker

import (
	"io"

	"github.com/screa/eth-vanity-miner/internal/crypto"
	"github.com/screa/eth-vanity-miner/pkg/types"
)

// Worker generates random accounts and tests them against the shared pattern
type Worker struct {
	id      int
	config  *types.WorkerConfig
	source  io.Reader
	deriver *crypto.Deriver

	// Pre-allocated buffer for the 0x-prefixed address text
	hexBuffer [crypto.AddressHexLength]byte
}

// NewWorker creates a new worker instance. src is owned by this worker.
func NewWorker(id int, config *types.WorkerConfig, src io.Reader) *Worker {
	return &Worker{
		id:      id,
		config:  config,
		source:  src,
		deriver: crypto.NewDeriver(),
	}
}

// ID returns the worker index within its search.
func (w *Worker) ID() int {
	return w.id
}

// GenerateAddress generates a single account and checks if its address matches.
func (w *Worker) GenerateAddress(state *types.SearchState) (types.WorkerResult, error) {
	acct, err := w.deriver.Random(w.source)
	if err != nil {
		return types.WorkerResult{}, err
	}

	state.AddAttempt()

	addrHex := acct.AddressHexInto(w.hexBuffer[:])
	if w.config.Verbosity >= 2 && w.config.Candidates != nil {
		w.config.Candidates.Candidate(addrHex)
	}

	return types.WorkerResult{
		Account: acct,
		IsMatch: w.config.Pattern.Match(addrHex),
	}, nil
}

// Run generates accounts until the search leaves the Active state. A match
// claims the search; losing that race discards the candidate.
func (w *Worker) Run(state *types.SearchState) error {
	for state.Active() {
		result, err := w.GenerateAddress(state)
		if err != nil {
			return err
		}
		if result.IsMatch {
			state.Claim(result.Account)
			return nil
		}
	}
	return nil
}
