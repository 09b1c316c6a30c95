package pattern

import (
	"errors"
	"testing"
)

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want error
	}{
		{"unclosed group", "(unclosed", ErrInvalidPattern},
		{"bad repetition", "*abc", ErrInvalidPattern},
		{"empty", "", ErrEmptyPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.expr)
			if p != nil {
				t.Errorf("Compile(%q) returned a pattern", tt.expr)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.expr, err, tt.want)
			}
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("Compile(%q) error does not wrap ErrInvalidPattern", tt.expr)
			}
		})
	}
}

func TestPatternMatches(t *testing.T) {
	const addr = "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf"
	tests := []struct {
		name     string
		expr     string
		expected bool
	}{
		{"substring anywhere", "a691", true},
		{"prefix anchored", "^0x7e5f", true},
		{"suffix anchored", "5bdf$", true},
		{"anchored prefix miss", "^0x5bdf", false},
		{"absent", "dead", false},
		{"prefix is searchable", "0x7", true},
		{"alternation", "(dead|cafe|9029)", true},
		{"uppercase never matches lowercase text", "A691", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.expr)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.expr, err)
			}
			if got := p.MatchString(addr); got != tt.expected {
				t.Errorf("MatchString() = %v, want %v", got, tt.expected)
			}
			if got := p.Match([]byte(addr)); got != tt.expected {
				t.Errorf("Match() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPatternString(t *testing.T) {
	p, err := Compile("^0xdead")
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "^0xdead" {
		t.Errorf("String() = %q", p.String())
	}
}
