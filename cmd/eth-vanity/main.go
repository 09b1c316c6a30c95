package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/screa/eth-vanity-miner/internal/config"
	logpkg "github.com/screa/eth-vanity-miner/internal/logger"
	"github.com/screa/eth-vanity-miner/internal/report"
	minerpkg "github.com/screa/eth-vanity-miner/pkg/miner"
	"github.com/spf13/cobra"
)

var (
	cfg     = config.NewConfig()
	verbose int
	quiet   bool
	logger  *logpkg.Logger
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "eth-vanity [pattern]",
		Short: "Ethereum vanity address generator",
		Long: `Generates random Ethereum accounts on every core until one has an address
matching the given regular expression. The expression is searched anywhere in
the lowercase 0x-prefixed address, so anchor it for prefixes or suffixes.

Examples:
  eth-vanity 'cafe'
  eth-vanity '^0x0000'
  eth-vanity --prefix dead --suffix beef -v`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runMiner,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().IntVarP(&cfg.Workers, "workers", "w", runtime.NumCPU(), "Number of worker goroutines")
	rootCmd.Flags().StringVarP(&cfg.Prefix, "prefix", "p", "", "Address prefix to match (hex)")
	rootCmd.Flags().StringVarP(&cfg.Suffix, "suffix", "s", "", "Address suffix to match (hex)")
	rootCmd.Flags().CountVarP(&verbose, "verbose", "v", "Increase verbosity (-v adds progress logs and streams every candidate to stderr)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing; exit status reports success")
	rootCmd.Flags().StringVarP(&cfg.LogFile, "log-file", "l", "", "Log file for progress tracking (default: stdout)")
	rootCmd.Flags().IntVarP(&cfg.LogInterval, "log-interval", "i", 5, "Progress logging interval in seconds, 0 disables")
	rootCmd.Flags().DurationVarP(&cfg.Timeout, "timeout", "t", 0, "Give up after this long (default: never)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runMiner(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		cfg.Pattern = args[0]
	}
	// -v counts on top of the default level
	cfg.Verbosity = logpkg.LevelResult + verbose
	if quiet {
		cfg.Verbosity = logpkg.LevelSilent
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Setup logging
	if err := setupLogging(); err != nil {
		return err
	}

	// Compiling the pattern happens here, before any worker exists.
	miner, err := minerpkg.NewMiner(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Verbosity >= logpkg.LevelDebug {
		report.PrintSearchHeader(os.Stdout, cfg)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if cfg.Timeout > 0 {
		var stop context.CancelFunc
		ctx, stop = context.WithTimeout(ctx, cfg.Timeout)
		defer stop()
	}

	result, err := miner.Mine(ctx)
	switch {
	case err == nil:
		if cfg.Verbosity >= logpkg.LevelResult {
			report.PrintFound(os.Stdout, result)
		}
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		logger.Infof("No match within %v after %d attempts.", cfg.Timeout, miner.Attempts())
	case errors.Is(err, context.Canceled):
		logger.Infof("Received interrupt signal. Stopped after %d attempts.", miner.Attempts())
	}
	return err
}

func setupLogging() error {
	if cfg.LogFile != "" {
		// Log to file
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logger = logpkg.NewWriter(file)
		logger.SetFlags(logpkg.LstdFlags | logpkg.Lmicroseconds)
	} else {
		// Log to stdout
		logger = logpkg.New()
		logger.SetFlags(logpkg.LstdFlags)
	}
	logger.SetVerbosity(cfg.Verbosity)
	return nil
}
