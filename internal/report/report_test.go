package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/screa/eth-vanity-miner/internal/config"
	"github.com/screa/eth-vanity-miner/internal/crypto"
	"github.com/screa/eth-vanity-miner/pkg/types"
)

func init() {
	color.NoColor = true
}

func TestPrintFound(t *testing.T) {
	secret := make([]byte, 32)
	secret[31] = 1
	acct, err := crypto.Derive(secret)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	PrintFound(&buf, &types.Result{Account: acct, Attempts: 12345, Duration: 2 * time.Second})
	out := buf.String()

	for _, want := range []string{
		"found matching account in 2.0s.",
		"searched through 12,345 addresses (6,172/s).",
		"private key: 0x0000000000000000000000000000000000000000000000000000000000000001",
		"public key:  0x79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		"address:     0x7e5f4552091a69125d5dfcb7b8c2659029395bdf",
		"checksummed: 0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSearchHeader(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Prefix = "abc"
	cfg.Workers = 4

	var buf bytes.Buffer
	PrintSearchHeader(&buf, cfg)
	out := buf.String()

	for _, want := range []string{"prefix: abc", "using 4 workers.", "expecting about 4,096 attempts."} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	cfg.Pattern = "(dead|beef)"
	PrintSearchHeader(&buf, cfg)
	if strings.Contains(buf.String(), "expecting") {
		t.Errorf("free-form pattern printed a difficulty:\n%s", buf.String())
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{18446744073709551615, "18,446,744,073,709,551,615"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m 30s"},
		{2*time.Hour + 5*time.Minute, "2h 5m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
