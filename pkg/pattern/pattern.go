// Package pattern compiles the expression an address has to satisfy.
//
// Matching is an unanchored regular expression search over the 0x-prefixed
// lowercase hex form of the address. The 0x prefix is part of the searched
// text, so "^0xdead" selects a prefix and "beef$" a suffix.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
)

// Errors
var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrEmptyPattern   = fmt.Errorf("%w: empty expression", ErrInvalidPattern)
)

// Pattern is a compiled expression. It is immutable and safe for concurrent use.
type Pattern struct {
	re *regexp.Regexp
}

// Compile parses expr. Every failure wraps ErrInvalidPattern.
func Compile(expr string) (*Pattern, error) {
	if expr == "" {
		return nil, ErrEmptyPattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &Pattern{re: re}, nil
}

// Match reports whether the hex address contains a match. Used on the hot path
// with a reused buffer.
func (p *Pattern) Match(addrHex []byte) bool {
	return p.re.Match(addrHex)
}

// MatchString is Match for string input.
func (p *Pattern) MatchString(addrHex string) bool {
	return p.re.MatchString(addrHex)
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.re.String()
}
