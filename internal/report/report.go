// Package report renders search headers and found accounts for a terminal.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/screa/eth-vanity-miner/internal/config"
	"github.com/screa/eth-vanity-miner/pkg/types"
)

var (
	summary = color.New(color.FgMagenta)
	label   = color.New(color.FgYellow)
	value   = color.New(color.FgCyan)
	warning = color.New(color.FgRed, color.Bold)
)

// PrintSearchHeader describes the search about to start.
func PrintSearchHeader(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "searching for address matching %s.\n", cfg.GetTargetDescription())
	fmt.Fprintf(w, "using %d workers.\n", cfg.Workers)
	fmt.Fprintf(w, "using level %d verbosity.\n", cfg.Verbosity)
	if d := cfg.Difficulty(); d > 0 {
		fmt.Fprintf(w, "expecting about %s attempts.\n", FormatNumber(d))
	}
	fmt.Fprintln(w)
}

// PrintFound prints the winning account and the search statistics.
func PrintFound(w io.Writer, res *types.Result) {
	summary.Fprintf(w, "\nfound matching account in %s.\n", FormatDuration(res.Duration))
	summary.Fprintf(w, "searched through %s addresses (%s/s).\n\n",
		FormatNumber(res.Attempts), FormatNumber(uint64(res.Rate())))

	field(w, "private key: ", res.Account.PrivateKeyHex())
	field(w, "public key:  ", res.Account.PublicKeyHex())
	field(w, "address:     ", res.Account.AddressHex())
	field(w, "checksummed: ", res.Account.ChecksumAddress())

	warning.Fprintln(w, "\nkeep the private key secret.")
}

func field(w io.Writer, name, v string) {
	label.Fprint(w, name)
	value.Fprintln(w, v)
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if n < 1000 {
		return s
	}
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, s[i])
	}
	return string(result)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
