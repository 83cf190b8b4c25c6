package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

const (
	exitCodeSuccess = 0
	exitCodeFailure = 1
	exitCodeUsage   = 2
)

var version = "dev"

// UsageError reports a command line that cannot be run, such as a wrong
// number of arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCommand := newRootCommand(stdout, stderr)
	rootCommand.SetArgs(args)
	rootCommand.SetOut(stdout)
	rootCommand.SetErr(stderr)

	if err := rootCommand.ExecuteContext(ctx); err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n%s", usageErr, rootCommand.UsageString())
			return exitCodeUsage
		}
		if _, fprintfErr := fmt.Fprintf(stderr, "failed to look up a word: %v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		return exitCodeFailure
	}
	return exitCodeSuccess
}

// setupLogger configures the default logger based on debug mode. Logs go to
// w so that standard output only carries lookup results.
func setupLogger(w io.Writer, debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: debugMode,
		})),
	)
}

func exactlyOneWord(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &UsageError{Err: fmt.Errorf("expected exactly one word, got %d arguments", len(args))}
	}
	return nil
}
