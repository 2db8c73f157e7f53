package server

// SummaryToolServer defines the interface for the MCP server that handles
// summarization tool calls from MCP clients.
type SummaryToolServer interface {
	// Initialize initializes the server with dependencies and configurations.
	Initialize() error

	// Start starts the MCP server on the stdio transport.
	Start() error

	// Stop gracefully shuts down the MCP server.
	Stop() error
}

var _ SummaryToolServer = (*MCPSummaryToolServer)(nil)
