package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/localrivet/configurator"
)

// Global configuration instance
var (
	// Global is the global configuration instance
	Global *Config
	// initOnce ensures initialization happens only once
	initOnce sync.Once
)

// InitGlobal initializes the global configuration
func InitGlobal(configPath string) (*Config, error) {
	var err error
	initOnce.Do(func() {
		Global, err = LoadConfigWithPath(configPath)
	})
	return Global, err
}

// Config represents the TextSummary configuration
type Config struct {
	// Summarizer contains summarization-related configuration.
	Summarizer struct {
		// DefaultSentences is the summary length when a request names none.
		DefaultSentences int `json:"default_sentences" env:"DEFAULT_SENTENCES" validate:"min:1"`

		// PreserveDocumentOrder renders summaries in document order by default.
		PreserveDocumentOrder bool `json:"preserve_document_order" env:"PRESERVE_DOCUMENT_ORDER"`

		// Stem enables Snowball stemming of English words before counting.
		Stem bool `json:"stem" env:"STEM"`

		// BatchConcurrency bounds the documents summarized in parallel by a batch.
		BatchConcurrency int `json:"batch_concurrency" env:"BATCH_CONCURRENCY" validate:"min:1"`
	} `json:"summarizer"`

	// Lexicon contains stop-word storage configuration.
	Lexicon struct {
		// SQLitePath is the path to a SQLite database of extra stop-words.
		// Empty means only the built-in lists are used.
		SQLitePath string `json:"sqlite_path" env:"LEXICON_SQLITE_PATH"`
	} `json:"lexicon"`

	// HTTP contains the HTTP transport configuration.
	HTTP struct {
		// Addr is the listen address.
		Addr string `json:"addr" env:"HTTP_ADDR" validate:"required"`

		// AllowedOrigins is a comma-separated CORS origin list.
		AllowedOrigins string `json:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`

		// RequestTimeout is the per-request timeout in seconds.
		RequestTimeout int `json:"request_timeout" env:"HTTP_REQUEST_TIMEOUT" validate:"min:1"`

		// MaxBodyBytes limits request bodies.
		MaxBodyBytes int `json:"max_body_bytes" env:"HTTP_MAX_BODY_BYTES" validate:"min:1"`
	} `json:"http"`

	// MCP contains the MCP stdio transport configuration.
	MCP struct {
		// Enabled starts the MCP stdio server alongside HTTP when serving.
		Enabled bool `json:"enabled" env:"MCP_ENABLED"`
	} `json:"mcp"`

	// Logging contains logging-related configuration.
	Logging struct {
		// Level is the minimum log level to display ("debug", "info", "warn", "error").
		Level string `json:"level" env:"LOG_LEVEL" validate:"required"`

		// Format is the log format to use ("text", "json").
		Format string `json:"format" env:"LOG_FORMAT"`
	} `json:"logging"`

	// Internal state (not saved to config file)
	configPath     string       `json:"-"`
	mutex          sync.RWMutex `json:"-"`
	lastModifiedAt time.Time    `json:"-"`
}

// Default configuration values
const (
	DefaultConfigFilename   = ".textsummaryconfig"
	DefaultEnvPrefix        = "TEXTSUMMARY"
	DefaultSentences        = 3
	DefaultBatchConcurrency = 4
	DefaultHTTPAddr         = ":5000"
	DefaultAllowedOrigins   = "*"
	DefaultRequestTimeout   = 60
	DefaultMaxBodyBytes     = 1 << 20
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
)

// NewConfig creates a new Config instance with default values
func NewConfig() *Config {
	config := &Config{}
	config.Summarizer.DefaultSentences = DefaultSentences
	config.Summarizer.BatchConcurrency = DefaultBatchConcurrency
	config.HTTP.Addr = DefaultHTTPAddr
	config.HTTP.AllowedOrigins = DefaultAllowedOrigins
	config.HTTP.RequestTimeout = DefaultRequestTimeout
	config.HTTP.MaxBodyBytes = DefaultMaxBodyBytes
	config.Logging.Level = DefaultLogLevel
	config.Logging.Format = DefaultLogFormat
	return config
}

// LoadConfig loads the configuration from the default path
func LoadConfig() (*Config, error) {
	return LoadConfigWithPath(DefaultConfigFilename)
}

// LoadConfigWithPath loads the configuration from a specific path.
// Values from a .env file in the working directory, then the config file,
// then TEXTSUMMARY_* environment variables override the defaults. A missing
// config file is not an error.
func LoadConfigWithPath(configPath string) (*Config, error) {
	// Create a default logger for configuration loading
	stdLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// A missing .env file is fine
	_ = godotenv.Load()

	cfg := NewConfig()

	// Try to find config file if path is default
	if configPath == DefaultConfigFilename {
		foundPath, err := configurator.FindConfigFile(configPath)
		if err == nil {
			configPath = foundPath
			stdLogger.Debug("Found config file at " + foundPath)
		}
	}

	config := configurator.New(stdLogger).
		WithProvider(configurator.NewDefaultProvider())

	if _, err := os.Stat(configPath); err == nil {
		stdLogger.Info("Loading configuration", "path", configPath)
		config = config.WithProvider(configurator.NewFileProvider(configPath))
	} else {
		stdLogger.Debug("Config file not found, using defaults and environment", "path", configPath)
	}

	config = config.
		WithProvider(configurator.NewEnvProvider(DefaultEnvPrefix)).
		WithValidator(configurator.NewDefaultValidator())

	if err := config.Load(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.configPath = configPath
	cfg.lastModifiedAt = time.Now()

	return cfg, nil
}

// SaveToFile saves the configuration to the specified file
func (c *Config) SaveToFile(path string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	// Create directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := configurator.SaveToFile(c, path, configurator.FormatJSON); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	c.configPath = path
	c.lastModifiedAt = time.Now()

	return nil
}

// Save saves the configuration to the last used file path
func (c *Config) Save() error {
	if c.configPath == "" {
		c.configPath = DefaultConfigFilename
	}
	return c.SaveToFile(c.configPath)
}

// GetConfigPath returns the path of the currently loaded configuration file
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// Origins splits HTTP.AllowedOrigins into its entries.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.HTTP.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{DefaultAllowedOrigins}
	}
	return origins
}

// RequestTimeoutDuration returns HTTP.RequestTimeout as a duration.
func (c *Config) RequestTimeoutDuration() time.Duration {
	if c.HTTP.RequestTimeout <= 0 {
		return DefaultRequestTimeout * time.Second
	}
	return time.Duration(c.HTTP.RequestTimeout) * time.Second
}
