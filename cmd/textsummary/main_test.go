package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/localrivet/textsummary/internal/config"
	"github.com/localrivet/textsummary/internal/summarizer"
	"github.com/localrivet/textsummary/internal/tools"
)

const catsText = "Cats are great. Dogs are great too. Cats and dogs live together."

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, o cliOptions)
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			check: func(t *testing.T, o cliOptions) {
				if o.ConfigPath != config.DefaultConfigFilename || o.PreserveOrder != nil || o.Serve {
					t.Errorf("options = %+v", o)
				}
			},
		},
		{
			name: "text and count",
			args: []string{"-text", catsText, "-n", "2", "-preserve-order"},
			check: func(t *testing.T, o cliOptions) {
				if o.Text != catsText || o.NumSentences != 2 {
					t.Errorf("options = %+v", o)
				}
				if o.PreserveOrder == nil || !*o.PreserveOrder {
					t.Errorf("PreserveOrder = %v, want true", o.PreserveOrder)
				}
			},
		},
		{
			name: "positional text",
			args: []string{"Cats", "are", "great."},
			check: func(t *testing.T, o cliOptions) {
				if o.Text != "Cats are great." {
					t.Errorf("Text = %q", o.Text)
				}
			},
		},
		{
			name:    "text and file",
			args:    []string{"-text", "x", "-file", "y.txt"},
			wantErr: true,
		},
		{
			name:    "negative count",
			args:    []string{"-n", "-1"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-bogus"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o, err := parseFlags(tc.args, io.Discard)
			if tc.wantErr {
				if err == nil {
					t.Errorf("parseFlags(%v) succeeded, want error", tc.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags(%v) error = %v", tc.args, err)
			}
			tc.check(t, o)
		})
	}
}

func TestApply(t *testing.T) {
	off := false
	cfg := config.NewConfig()
	cfg.Summarizer.PreserveDocumentOrder = true

	cliOptions{MCP: true, NumSentences: 5, PreserveOrder: &off, LogLevel: "debug"}.apply(cfg)

	if !cfg.MCP.Enabled || cfg.HTTP.Addr != "" {
		t.Errorf("MCP-only run kept HTTP: %+v", cfg.HTTP)
	}
	if cfg.Summarizer.DefaultSentences != 5 || cfg.Summarizer.PreserveDocumentOrder {
		t.Errorf("Summarizer = %+v", cfg.Summarizer)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}

	cfg = config.NewConfig()
	cliOptions{Serve: true, MCP: true, Addr: ":8080"}.apply(cfg)
	if cfg.HTTP.Addr != ":8080" || !cfg.MCP.Enabled {
		t.Errorf("serve with MCP: HTTP.Addr = %q, MCP = %v", cfg.HTTP.Addr, cfg.MCP.Enabled)
	}
}

func testOptions(t *testing.T, args ...string) cliOptions {
	t.Helper()
	args = append([]string{"-config", filepath.Join(t.TempDir(), "missing.json"), "-log-level", "error"}, args...)
	o, err := parseFlags(args, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	return o
}

func TestRunText(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := testOptions(t, "-text", catsText, "-n", "2", "-preserve-order")

	if err := run(context.Background(), opts, strings.NewReader(""), &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "Cats are great. Cats and dogs live together." {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunStdin(t *testing.T) {
	var stdout bytes.Buffer
	opts := testOptions(t, "-n", "1")

	if err := run(context.Background(), opts, strings.NewReader(catsText), &stdout, io.Discard); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "Cats and dogs live together." {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kyiv.md")
	if err := os.WriteFile(path, []byte("Київ є столицею України. Київ — велике місто. Дніпро тече через Київ."), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var stdout bytes.Buffer
	opts := testOptions(t, "-file", path, "-n", "1")
	if err := run(context.Background(), opts, strings.NewReader(""), &stdout, io.Discard); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "Дніпро тече через Київ." {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunJSONError(t *testing.T) {
	var stdout bytes.Buffer
	opts := testOptions(t, "-json")

	err := run(context.Background(), opts, strings.NewReader("   "), &stdout, io.Discard)
	if summarizer.KindOf(err) != summarizer.KindEmptyInput {
		t.Fatalf("run() error = %v, want empty_input", err)
	}
	if exitCode(err) != 1 {
		t.Errorf("exitCode() = %d, want 1", exitCode(err))
	}

	var resp tools.SummarizeResponse
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		t.Fatalf("stdout is not JSON: %v: %s", err, stdout.String())
	}
	if resp.Status != tools.StatusError || resp.ErrorKind != string(summarizer.KindEmptyInput) {
		t.Errorf("response = %+v", resp)
	}
}

func TestRunExportLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")

	var stdout bytes.Buffer
	opts := testOptions(t, "-export-lexicon", path)
	if err := run(context.Background(), opts, strings.NewReader(""), &stdout, io.Discard); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), path) {
		t.Errorf("stdout = %q", stdout.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("lexicon database not created: %v", err)
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(io.ErrUnexpectedEOF); got != 3 {
		t.Errorf("exitCode(other) = %d, want 3", got)
	}
}
