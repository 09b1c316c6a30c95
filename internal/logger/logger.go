package logger

import (
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"
)

// Log flags
const (
	LstdFlags     = log.LstdFlags
	Lmicroseconds = log.Lmicroseconds
)

// Verbosity levels
const (
	LevelSilent = 0
	LevelResult = 1
	LevelDebug  = 2
)

// Logger wraps the standard log.Logger with a verbosity level and a separate
// stream for candidate addresses.
type Logger struct {
	*log.Logger
	verbosity  atomic.Int32
	candidates io.Writer

	mu   sync.Mutex
	line []byte // candidate scratch, guarded by mu
}

// New creates a new logger writing messages to stdout and candidates to stderr
func New() *Logger {
	return NewWriter(os.Stdout)
}

// NewWriter creates a new logger that writes to the provided writer
func NewWriter(w io.Writer) *Logger {
	l := &Logger{
		Logger:     log.New(w, "", log.LstdFlags),
		candidates: os.Stderr,
	}
	l.verbosity.Store(LevelResult)
	return l
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	l := NewWriter(io.Discard)
	l.candidates = io.Discard
	l.verbosity.Store(LevelSilent)
	return l
}

// SetOutput sets the output destination for the logger
func (l *Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// SetFlags sets the output flags for the logger
func (l *Logger) SetFlags(flag int) {
	l.Logger.SetFlags(flag)
}

// SetCandidateOutput sets where streamed candidate addresses go.
// Must not be called while a search is running.
func (l *Logger) SetCandidateOutput(w io.Writer) {
	l.candidates = w
}

func (l *Logger) SetVerbosity(level int) {
	l.verbosity.Store(int32(level))
}

func (l *Logger) Verbosity() int {
	return int(l.verbosity.Load())
}

// Infof logs at verbosity 1 and above.
func (l *Logger) Infof(format string, v ...any) {
	if l.Verbosity() >= LevelResult {
		l.Printf(format, v...)
	}
}

// Debugf logs at verbosity 2 and above.
func (l *Logger) Debugf(format string, v ...any) {
	if l.Verbosity() >= LevelDebug {
		l.Printf(format, v...)
	}
}

// Candidate writes one generated address followed by a carriage return, so a
// terminal keeps overwriting the same line. Each candidate is a single Write.
func (l *Logger) Candidate(addrHex []byte) {
	if l.Verbosity() < LevelDebug {
		return
	}
	l.mu.Lock()
	l.line = append(append(l.line[:0], addrHex...), '\r')
	_, _ = l.candidates.Write(l.line)
	l.mu.Unlock()
}
