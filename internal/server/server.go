// Package server provides the MCP server implementation for the TextSummary service.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/localrivet/gomcp/server"
	"github.com/localrivet/textsummary/internal/detect"
	"github.com/localrivet/textsummary/internal/errortypes"
	"github.com/localrivet/textsummary/internal/language"
	"github.com/localrivet/textsummary/internal/summarizer"
	"github.com/localrivet/textsummary/internal/tools"
)

// Common server error types
var (
	ErrServerNotInitialized = errors.New("server not initialized")
	ErrMissingDependencies  = errors.New("one or more required dependencies are nil")
)

// DefaultToolTimeout bounds a single tool call.
const DefaultToolTimeout = 60 * time.Second

// MCPSummaryToolServer implements the SummaryToolServer interface
// for handling MCP tool calls related to summarization.
type MCPSummaryToolServer struct {
	summarizer *summarizer.FrequencySummarizer
	detector   detect.Detector
	logger     *slog.Logger
	timeout    time.Duration
	mcpServer  server.Server
}

// NewSummaryToolServer creates a new MCPSummaryToolServer instance.
func NewSummaryToolServer(s *summarizer.FrequencySummarizer, detector detect.Detector, logger *slog.Logger) *MCPSummaryToolServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &MCPSummaryToolServer{
		summarizer: s,
		detector:   detector,
		logger:     logger.With("component", "mcp"),
		timeout:    DefaultToolTimeout,
	}
}

// Initialize initializes the server with dependencies and configurations.
func (s *MCPSummaryToolServer) Initialize() error {
	s.logger.Info("Initializing MCP Summary Tool Server")

	if s.summarizer == nil || s.detector == nil {
		return errortypes.ConfigError(ErrMissingDependencies, "server initialization failed")
	}

	srv := server.NewServer("textsummary")

	srv = srv.Tool(tools.ToolSummarize, "Summarize English or Ukrainian text by extracting its most important sentences",
		s.handleSummarize)

	srv = srv.Tool(tools.ToolDetectLanguage, "Detect the language of a text and report whether it can be summarized",
		s.handleDetectLanguage)

	srv = srv.Tool(tools.ToolSummarizerHealth, "Report the health and request metrics of the summarizer",
		s.handleSummarizerHealth)

	s.mcpServer = srv
	s.logger.Info("MCP Summary Tool Server initialized successfully", "tool_count", 3)
	return nil
}

// Start starts the MCP server on the stdio transport. It returns when
// stdin is closed.
func (s *MCPSummaryToolServer) Start() error {
	if s.mcpServer == nil {
		return errortypes.ConfigError(ErrServerNotInitialized, "cannot start server")
	}

	s.logger.Info("Starting MCP Summary Tool Server")

	stdioServer := s.mcpServer.AsStdio()
	return stdioServer.Run()
}

// Stop gracefully shuts down the MCP server.
func (s *MCPSummaryToolServer) Stop() error {
	s.logger.Info("Stopping MCP Summary Tool Server")
	// The server will exit when stdin is closed
	return nil
}

// handleSummarize handles the summarize MCP tool call.
func (s *MCPSummaryToolServer) handleSummarize(_ *server.Context, req tools.SummarizeRequest) (tools.SummarizeResponse, error) {
	requestID := uuid.NewString()
	log := s.logger.With("request_id", requestID)
	log.Info("Processing summarize request", "text_length", len(req.Text))

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	result, err := s.summarizer.SummarizeWithOptions(ctx, req.Text, req.Options(s.summarizer.Defaults()))
	response := tools.NewSummarizeResponse(result, err)
	response.RequestID = requestID

	if err != nil {
		log.Warn("Summarize request failed", "error_kind", response.ErrorKind, "error", err)
		return response, nil
	}

	log.Info("Summarize request completed",
		"language", response.Language,
		"sentence_count", response.SentenceCount)
	return response, nil
}

// handleDetectLanguage handles the detect_language MCP tool call.
func (s *MCPSummaryToolServer) handleDetectLanguage(_ *server.Context, req tools.DetectLanguageRequest) (tools.DetectLanguageResponse, error) {
	s.logger.Info("Processing detect_language request", "text_length", len(req.Text))

	detected, err := s.detector.Detect(req.Text)
	_, gateErr := language.Gate(detected, err)

	switch kind := summarizer.KindOf(gateErr); kind {
	case "":
		return tools.DetectLanguageResponse{Status: tools.StatusSuccess, Language: detected, Supported: true}, nil
	case summarizer.KindLanguageUnsupported:
		return tools.DetectLanguageResponse{Status: tools.StatusSuccess, Language: detected, Supported: false}, nil
	default:
		s.logger.Debug("Language detection failed", "error", gateErr)
		return tools.DetectLanguageResponse{
			Status:    tools.StatusError,
			Error:     gateErr.Error(),
			ErrorKind: string(kind),
		}, nil
	}
}

// handleSummarizerHealth handles the summarizer_health MCP tool call.
func (s *MCPSummaryToolServer) handleSummarizerHealth(_ *server.Context, _ tools.SummarizerHealthRequest) (tools.SummarizerHealthResponse, error) {
	report, err := summarizer.CreateHealthReport(s.summarizer)
	if err != nil {
		errortypes.LogError(s.logger, errortypes.InternalError(err, "failed to create health report"))
		return tools.SummarizerHealthResponse{Status: tools.StatusError, Error: err.Error()}, nil
	}
	return tools.SummarizerHealthResponse{Status: tools.StatusSuccess, Report: report}, nil
}
