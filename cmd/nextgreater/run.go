package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kula-app/nextgreater/internal/config"
	"github.com/kula-app/nextgreater/internal/input"
	"github.com/kula-app/nextgreater/internal/judge"
	"github.com/kula-app/nextgreater/internal/logging"
	"github.com/kula-app/nextgreater/internal/nextgreater"
	"github.com/kula-app/nextgreater/internal/output"
)

// errCasesFailed is returned in judge mode when at least one case did not pass
var errCasesFailed = errors.New("not all cases passed")

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// If the run function finishes without an error, it means the application completed.
// If the run function returns an error, it means the application failed to complete.
//
// Logs go to stderr; stdout carries only the answer.
func run(ctx context.Context, args []string, getenv func(key string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Environment first, flags override it
	cfg := config.FromEnv(getenv)

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.CasesFile, "cases", cfg.CasesFile, "Run the solver against the cases in this YAML file instead of reading stdin")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text or json)")
	if err := flags.Parse(args[1:]); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	handler, err := logging.NewHandler(stderr, cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger := slog.New(handler)

	// Cancel on Ctrl+C so a long judge run stops between cases
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.CasesFile != "" {
		return runJudge(ctx, logger, cfg.CasesFile, stdout)
	}
	return runSolve(logger, stdin, stdout)
}

// runSolve reads one sequence from stdin and prints its next greater elements
func runSolve(logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	values, err := input.Parse(stdin)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	logger.Debug("input parsed", "elements", len(values))

	result := nextgreater.Compute(values)

	if err := output.Write(stdout, result); err != nil {
		return err
	}
	logger.Debug("result written", "elements", len(result))
	return nil
}

// runJudge evaluates every case in the file and prints a line per case plus a summary
func runJudge(ctx context.Context, logger *slog.Logger, path string, stdout io.Writer) error {
	cases, err := judge.LoadCases(path)
	if err != nil {
		return err
	}
	logger.Info("cases loaded", "path", path, "count", len(cases))

	report, err := judge.New(logger).Run(ctx, cases)
	if err != nil {
		return fmt.Errorf("judge run failed: %w", err)
	}

	for _, res := range report.Results {
		var line string
		switch {
		case res.Error != nil:
			line = fmt.Sprintf("ERROR %s: %v", res.Name, res.Error)
		case res.Passed:
			line = fmt.Sprintf("PASS  %s", res.Name)
		default:
			line = fmt.Sprintf("FAIL  %s: expected %q, got %q", res.Name, res.Expected, res.Output)
		}
		if _, err := fmt.Fprintln(stdout, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if _, err := fmt.Fprintf(stdout, "%d/%d cases passed\n", report.Passed(), len(report.Results)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !report.PassedAll {
		return errCasesFailed
	}
	return nil
}
