// Command textsummary summarizes English and Ukrainian text from the command
// line, or serves the HTTP API and MCP tools.
//
// Usage:
//
//	textsummary -text "..." [-n 3] [-preserve-order] [-json]
//	textsummary -file report.pdf
//	cat article.txt | textsummary
//	textsummary -serve [-addr :5000] [-mcp]
//	textsummary -mcp
//	textsummary -export-lexicon lexicon.db
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/localrivet/textsummary/internal/summarizer"
)

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, opts, os.Stdin, os.Stdout, os.Stderr)
	stop()

	if err != nil {
		if !opts.JSON {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps rejected input to 1 and everything else to 3.
func exitCode(err error) int {
	switch summarizer.KindOf(err) {
	case summarizer.KindEmptyInput,
		summarizer.KindInvalidRequestedCount,
		summarizer.KindLanguageUndetectable,
		summarizer.KindLanguageUnsupported:
		return 1
	default:
		return 3
	}
}
