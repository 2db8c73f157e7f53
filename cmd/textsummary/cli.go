package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/localrivet/textsummary"
	"github.com/localrivet/textsummary/internal/config"
	"github.com/localrivet/textsummary/internal/ingest"
	"github.com/localrivet/textsummary/internal/logger"
	"github.com/localrivet/textsummary/internal/tools"
)

// cliOptions holds the parsed command line.
type cliOptions struct {
	ConfigPath    string
	Serve         bool
	MCP           bool
	Addr          string
	Text          string
	File          string
	NumSentences  int
	PreserveOrder *bool
	JSON          bool
	ExportLexicon string
	LogLevel      string
}

// parseFlags parses args into cliOptions. Flags left unset do not override
// the configuration.
func parseFlags(args []string, output io.Writer) (cliOptions, error) {
	var opts cliOptions
	var preserveOrder bool

	fs := flag.NewFlagSet("textsummary", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.ConfigPath, "config", config.DefaultConfigFilename, "Path to the configuration file")
	fs.BoolVar(&opts.Serve, "serve", false, "Serve the HTTP API")
	fs.BoolVar(&opts.MCP, "mcp", false, "Serve the MCP tools over stdio")
	fs.StringVar(&opts.Addr, "addr", "", "HTTP listen address (overrides config)")
	fs.StringVar(&opts.Text, "text", "", "Text to summarize")
	fs.StringVar(&opts.File, "file", "", "Document to summarize (txt, md, pdf, docx, odt, rtf, html)")
	fs.IntVar(&opts.NumSentences, "n", 0, "Number of sentences (default from config)")
	fs.BoolVar(&preserveOrder, "preserve-order", false, "Keep the selected sentences in document order")
	fs.BoolVar(&opts.JSON, "json", false, "Print the result as JSON")
	fs.StringVar(&opts.ExportLexicon, "export-lexicon", "", "Write the built-in stop-words into a SQLite lexicon and exit")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "preserve-order" {
			opts.PreserveOrder = &preserveOrder
		}
	})

	if fs.NArg() > 0 {
		if opts.Text != "" || opts.File != "" {
			return cliOptions{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		}
		opts.Text = strings.Join(fs.Args(), " ")
	}
	if opts.Text != "" && opts.File != "" {
		return cliOptions{}, errors.New("-text and -file are mutually exclusive")
	}
	if opts.NumSentences < 0 {
		return cliOptions{}, errors.New("-n must be positive")
	}

	return opts, nil
}

// apply overrides cfg with the flags that were set.
func (o cliOptions) apply(cfg *config.Config) {
	if o.Addr != "" {
		cfg.HTTP.Addr = o.Addr
	}
	if o.MCP {
		cfg.MCP.Enabled = true
		if !o.Serve {
			cfg.HTTP.Addr = ""
		}
	}
	if o.NumSentences > 0 {
		cfg.Summarizer.DefaultSentences = o.NumSentences
	}
	if o.PreserveOrder != nil {
		cfg.Summarizer.PreserveDocumentOrder = *o.PreserveOrder
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
}

// run executes the command described by opts.
func run(ctx context.Context, opts cliOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.LoadConfigWithPath(opts.ConfigPath)
	if err != nil {
		return err
	}
	opts.apply(cfg)

	appLogger := logger.New(&logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Output:      stderr,
		DefaultTags: map[string]interface{}{"service": "textsummary"},
	})
	slog.SetDefault(appLogger)

	switch {
	case opts.ExportLexicon != "":
		return exportLexicon(opts.ExportLexicon, stdout)
	case opts.Serve || opts.MCP:
		return serve(ctx, cfg, appLogger)
	default:
		return summarizeOnce(ctx, cfg, opts, stdin, stdout, appLogger)
	}
}

func exportLexicon(path string, stdout io.Writer) error {
	counts, err := textsummary.ExportLexicon(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Exported %d English and %d Ukrainian stop-words to %s\n", counts["en"], counts["uk"], path)
	return nil
}

func serve(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) error {
	srv, err := textsummary.NewServer(textsummary.ServerOptions{Config: cfg, Logger: appLogger})
	if err != nil {
		return err
	}
	return srv.Start(ctx)
}

func summarizeOnce(ctx context.Context, cfg *config.Config, opts cliOptions, stdin io.Reader, stdout io.Writer, appLogger *slog.Logger) error {
	text, err := readInput(opts, stdin)
	if err != nil {
		return err
	}

	components, err := textsummary.CreateComponents(cfg, appLogger)
	if err != nil {
		return err
	}

	sum := components.Summarizer
	result, err := sum.SummarizeWithOptions(ctx, text, sum.Defaults())

	if opts.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(tools.NewSummarizeResponse(result, err)); encErr != nil {
			return encErr
		}
		return err
	}

	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, result.Summary)
	return nil
}

func readInput(opts cliOptions, stdin io.Reader) (string, error) {
	switch {
	case opts.Text != "":
		return opts.Text, nil
	case opts.File != "":
		return ingest.ReadFile(opts.File)
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}
}
