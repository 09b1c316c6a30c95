package config

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"runtime"
	"strings"
	"time"
)

// Errors
var (
	ErrNoTargetSpecified  = errors.New("must specify a pattern, --prefix, or --suffix")
	ErrInvalidWorkers     = errors.New("worker count must be positive")
	ErrInvalidHex         = errors.New("prefix and suffix must be hex digits")
	ErrTargetTooLong      = errors.New("prefix and suffix together exceed 40 hex digits")
	ErrInvalidLogInterval = errors.New("log interval must not be negative")
)

// addressDigits is the number of hex digits in an address after 0x.
const addressDigits = 40

// Config holds the application configuration
type Config struct {
	Workers     int
	Pattern     string // Regular expression searched in the 0x-prefixed address
	Prefix      string // Hex digits the address must start with (after 0x)
	Suffix      string // Hex digits the address must end with
	Verbosity   int    // 0 silent, 1 result, 2+ progress and candidate stream
	LogFile     string
	LogInterval int // Logging interval in seconds
	Timeout     time.Duration
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Workers:     runtime.NumCPU(),
		Verbosity:   1,
		LogInterval: 5, // Default 5 seconds
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	prefix, suffix := c.cleanPrefix(), c.cleanSuffix()
	if c.Pattern == "" && prefix == "" && suffix == "" {
		return ErrNoTargetSpecified
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if !isHex(prefix) || !isHex(suffix) {
		return ErrInvalidHex
	}
	if len(prefix)+len(suffix) > addressDigits {
		return ErrTargetTooLong
	}
	if c.LogInterval < 0 {
		return ErrInvalidLogInterval
	}
	return nil
}

// Expression returns the regular expression workers match against.
// An explicit pattern wins over prefix and suffix.
func (c *Config) Expression() string {
	if c.Pattern != "" {
		return c.Pattern
	}

	prefix := regexp.QuoteMeta(c.cleanPrefix())
	suffix := regexp.QuoteMeta(c.cleanSuffix())
	switch {
	case prefix != "" && suffix != "":
		return "^0x" + prefix + ".*" + suffix + "$"
	case prefix != "":
		return "^0x" + prefix
	case suffix != "":
		return suffix + "$"
	}
	return ""
}

// GetTargetDescription returns a human-readable description of the target
func (c *Config) GetTargetDescription() string {
	if c.Pattern != "" {
		return "pattern: " + c.Pattern
	}
	prefix, suffix := c.cleanPrefix(), c.cleanSuffix()
	switch {
	case prefix != "" && suffix != "":
		return "prefix: " + prefix + ", suffix: " + suffix
	case prefix != "":
		return "prefix: " + prefix
	case suffix != "":
		return "suffix: " + suffix
	}
	return "unknown"
}

// Difficulty returns the expected number of attempts for prefix/suffix targets,
// or 0 when it cannot be estimated (free-form patterns). Saturates at MaxUint64.
func (c *Config) Difficulty() uint64 {
	if c.Pattern != "" {
		return 0
	}
	digits := len(c.cleanPrefix()) + len(c.cleanSuffix())
	if digits == 0 {
		return 0
	}
	if digits >= 16 {
		return math.MaxUint64
	}
	return uint64(1) << (4 * digits)
}

// cleanPrefix strips an optional 0x and lowercases the prefix
func (c *Config) cleanPrefix() string {
	p := strings.ToLower(strings.TrimSpace(c.Prefix))
	return strings.TrimPrefix(p, "0x")
}

func (c *Config) cleanSuffix() string {
	return strings.ToLower(strings.TrimSpace(c.Suffix))
}

func isHex(s string) bool {
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')) {
			return false
		}
	}
	return true
}
