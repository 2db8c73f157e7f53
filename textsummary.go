// Package textsummary is a frequency-based extractive summarizer for English
// and Ukrainian text, served over HTTP and MCP.
package textsummary

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/localrivet/textsummary/internal/config"
	"github.com/localrivet/textsummary/internal/detect"
	"github.com/localrivet/textsummary/internal/errortypes"
	"github.com/localrivet/textsummary/internal/httpapi"
	"github.com/localrivet/textsummary/internal/language"
	"github.com/localrivet/textsummary/internal/lexicon"
	"github.com/localrivet/textsummary/internal/server"
	"github.com/localrivet/textsummary/internal/summarizer"
	"github.com/localrivet/textsummary/internal/tokenize"
	"golang.org/x/sync/errgroup"
)

// Config represents the configuration for the TextSummary service.
type Config = config.Config

// Result is the outcome of a successful summarization.
type Result = summarizer.Result

// Options controls a single summarization.
type Options = summarizer.Options

// BatchResult is the outcome of one document of a batch.
type BatchResult = summarizer.BatchResult

// DefaultNumSentences is the summary length used when none is requested.
const DefaultNumSentences = summarizer.DefaultNumSentences

// ShutdownTimeout bounds the graceful HTTP shutdown.
const ShutdownTimeout = 10 * time.Second

// ErrNoTransport is returned by Start when neither HTTP nor MCP is enabled.
var ErrNoTransport = errors.New("no transport enabled")

// Components holds the collaborators built once at start-up and shared by
// every request.
type Components struct {
	Detector   *detect.ScriptDetector
	Tokenizer  *tokenize.Standard
	Lexicon    lexicon.Lexicon
	Summarizer *summarizer.FrequencySummarizer
}

// Server represents the TextSummary service.
type Server struct {
	config     *config.Config
	components *Components
	toolServer server.SummaryToolServer
	httpServer *httpapi.Server
	handler    http.Handler
	logger     *slog.Logger
}

// ServerOptions defines the options for creating a new Server.
type ServerOptions struct {
	Config     *Config      // Pre-filled config. If nil, ConfigPath is used.
	ConfigPath string       // Path to config file. Used if Config is nil. If both are empty, DefaultConfig() is used.
	Logger     *slog.Logger // External logger. If nil, slog.Default() is used.
}

// NewServer creates a new TextSummary Server with the given options.
// If opts.Config is provided, it will be used directly.
// Otherwise, if opts.ConfigPath is provided, configuration will be loaded from that path.
// If neither is provided, DefaultConfig() will be used.
func NewServer(opts ServerOptions) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var cfg *Config
	var err error

	if opts.Config != nil {
		cfg = opts.Config
		logger.Debug("Using provided Config object for server initialization")
	} else if opts.ConfigPath != "" {
		logger.Info("Loading configuration for server initialization", "path", opts.ConfigPath)
		cfg, err = config.LoadConfigWithPath(opts.ConfigPath)
		if err != nil {
			return nil, errortypes.ConfigError(err, "failed to load configuration from path: "+opts.ConfigPath)
		}
	} else {
		logger.Debug("No Config object or ConfigPath provided, using default configuration")
		cfg = DefaultConfig()
	}

	components, err := CreateComponents(cfg, logger)
	if err != nil {
		logger.Error("Failed to create components during server initialization", "error", err)
		return nil, err
	}

	toolServer := server.NewSummaryToolServer(components.Summarizer, components.Detector, logger)
	if err := toolServer.Initialize(); err != nil {
		return nil, errortypes.ConfigError(err, "failed to initialize MCP summary tool server")
	}

	handler := httpapi.NewRouter(components.Summarizer, httpapi.OptionsFromConfig(cfg), logger.With("component", "http"))

	logger.Info("TextSummary server successfully initialized")
	return &Server{
		config:     cfg,
		components: components,
		toolServer: toolServer,
		httpServer: httpapi.NewServer(cfg.HTTP.Addr, handler, logger.With("component", "http")),
		handler:    handler,
		logger:     logger,
	}, nil
}

// DefaultConfig returns the default configuration for the TextSummary service.
func DefaultConfig() *Config {
	return config.NewConfig()
}

// CreateComponents builds the detector, tokenizer, lexicon and summarizer
// described by cfg. When cfg.Lexicon.SQLitePath is set, the stop-words stored
// there are merged into the built-in lists; the database is read once and
// closed.
func CreateComponents(cfg *Config, logger *slog.Logger) (*Components, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tok, err := tokenize.New(tokenize.WithStemming(cfg.Summarizer.Stem))
	if err != nil {
		return nil, errortypes.ConfigError(err, "failed to build tokenizer")
	}

	lex, err := loadLexicon(cfg.Lexicon.SQLitePath, logger)
	if err != nil {
		return nil, err
	}

	det := detect.NewScriptDetector()

	sum := summarizer.NewFrequencySummarizer(summarizer.Config{
		Detector:  det,
		Tokenizer: tok,
		Lexicon:   lex,
		Defaults: summarizer.Options{
			NumSentences:          cfg.Summarizer.DefaultSentences,
			PreserveDocumentOrder: cfg.Summarizer.PreserveDocumentOrder,
		},
		Logger: logger,
	})
	if err := sum.Initialize(); err != nil {
		return nil, err
	}

	logger.Info("Components successfully initialized",
		"stemming", cfg.Summarizer.Stem,
		"default_sentences", sum.Defaults().NumSentences)

	return &Components{
		Detector:   det,
		Tokenizer:  tok,
		Lexicon:    lex,
		Summarizer: sum,
	}, nil
}

func loadLexicon(path string, logger *slog.Logger) (lexicon.Lexicon, error) {
	builtin := lexicon.Builtin()
	if path == "" {
		return builtin, nil
	}

	logger.Info("Loading stop-words from SQLite lexicon", "path", path)
	store := lexicon.NewSQLiteStore()
	if err := store.Initialize(path); err != nil {
		return nil, errortypes.DatabaseError(err, "failed to open SQLite lexicon").WithField("path", path)
	}
	defer store.Close()

	merged, err := lexicon.Merge(builtin, store)
	if err != nil {
		return nil, errortypes.DatabaseError(err, "failed to load SQLite lexicon").WithField("path", path)
	}
	return merged, nil
}

// ExportLexicon writes the built-in stop-word lists into the SQLite lexicon
// at path, creating it if needed. It returns the number of words per language.
func ExportLexicon(path string) (map[string]int, error) {
	store := lexicon.NewSQLiteStore()
	if err := store.Initialize(path); err != nil {
		return nil, errortypes.DatabaseError(err, "failed to open SQLite lexicon").WithField("path", path)
	}
	defer store.Close()

	builtin := lexicon.Builtin()
	counts := make(map[string]int)
	for _, lang := range language.Supported() {
		words := lexicon.Words(builtin, lang)
		if err := store.Store(lang, words); err != nil {
			return nil, errortypes.DatabaseError(err, "failed to export stop-words").
				WithFields(map[string]interface{}{"path": path, "language": lang.String()})
		}
		counts[lang.String()] = len(words)
	}
	return counts, nil
}

// Summarize returns the numSentences highest-scoring sentences of text using
// the configured ordering.
func (s *Server) Summarize(text string, numSentences int) (*Result, error) {
	opts := s.components.Summarizer.Defaults()
	opts.NumSentences = numSentences
	return s.components.Summarizer.SummarizeWithOptions(context.Background(), text, opts)
}

// SummarizeWithOptions summarizes text with explicit options.
func (s *Server) SummarizeWithOptions(ctx context.Context, text string, opts Options) (*Result, error) {
	return s.components.Summarizer.SummarizeWithOptions(ctx, text, opts)
}

// SummarizeBatch summarizes every text independently, bounded by
// Summarizer.BatchConcurrency. Results are in input order.
func (s *Server) SummarizeBatch(ctx context.Context, texts []string, numSentences int) ([]BatchResult, error) {
	opts := s.components.Summarizer.Defaults()
	opts.NumSentences = numSentences
	return s.components.Summarizer.SummarizeBatch(ctx, texts, opts, s.config.Summarizer.BatchConcurrency)
}

// Handler returns the HTTP handler, for embedding into another server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves HTTP on HTTP.Addr and, when MCP.Enabled, MCP over stdio. It
// blocks until ctx is done, a transport fails, or the MCP client closes
// stdin, then shuts the HTTP server down gracefully.
func (s *Server) Start(ctx context.Context) error {
	serveHTTP := s.config.HTTP.Addr != ""
	serveMCP := s.config.MCP.Enabled
	if !serveHTTP && !serveMCP {
		return errortypes.ConfigError(ErrNoTransport, "nothing to serve")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The stdio transport cannot be interrupted, so it is not waited for.
	mcpErr := make(chan error, 1)
	if serveMCP {
		go func() {
			err := s.toolServer.Start()
			mcpErr <- err
			cancel()
		}()
	}

	g, gctx := errgroup.WithContext(ctx)
	if serveHTTP {
		g.Go(func() error {
			return s.httpServer.Start()
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), ShutdownTimeout)
			defer done()
			return s.httpServer.Shutdown(shutdownCtx)
		})
	} else {
		g.Go(func() error {
			<-gctx.Done()
			return nil
		})
	}

	err := g.Wait()

	select {
	case mErr := <-mcpErr:
		if mErr != nil && err == nil {
			err = mErr
		}
	default:
	}

	if err != nil {
		errortypes.LogError(s.logger, err)
		return err
	}
	s.logger.Info("TextSummary service stopped")
	return nil
}

// Stop stops the TextSummary service.
func (s *Server) Stop() error {
	s.logger.Info("Stopping TextSummary service")
	if err := s.toolServer.Stop(); err != nil {
		s.logger.Error("Error stopping tool server", "error", err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// GetConfig returns the configuration used by the server.
func (s *Server) GetConfig() *Config {
	return s.config
}

// GetSummarizer returns the summarizer instance used by the server.
func (s *Server) GetSummarizer() *summarizer.FrequencySummarizer {
	return s.components.Summarizer
}

// GetComponents returns the shared collaborators.
func (s *Server) GetComponents() *Components {
	return s.components
}

var defaultComponents = sync.OnceValues(func() (*Components, error) {
	return CreateComponents(DefaultConfig(), slog.New(slog.DiscardHandler))
})

// Summarize summarizes text with the default configuration: built-in
// stop-word lists, no stemming, sentences in descending score order.
// numSentences must be positive; DefaultNumSentences is the usual choice.
func Summarize(text string, numSentences int) (*Result, error) {
	components, err := defaultComponents()
	if err != nil {
		return nil, err
	}
	return components.Summarizer.SummarizeWithOptions(context.Background(), text, Options{NumSentences: numSentences})
}
