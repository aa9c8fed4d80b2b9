package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ironsheep/munsell-mcp/internal/config"
	"github.com/ironsheep/munsell-mcp/internal/imaging"
)

// ProtocolVersion is the MCP protocol revision reported by initialize.
const ProtocolVersion = "2024-11-05"

// Server handles MCP protocol communication
type Server struct {
	cfg   config.Config
	log   *slog.Logger
	info  Info
	cache *imaging.ImageCache
}

// Info identifies the server in the initialize handshake.
type Info struct {
	Name    string
	Version string
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// JSON-RPC error codes used by the server.
const (
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeToolFailed     = -32000
)

// New creates a server. A nil logger discards log output.
func New(cfg config.Config, logger *slog.Logger, info Info) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if info.Name == "" {
		info.Name = "munsell-mcp"
	}
	if info.Version == "" {
		info.Version = "dev"
	}

	return &Server{
		cfg:   cfg,
		log:   logger,
		info:  info,
		cache: imaging.NewImageCache(),
	}
}

// Run serves MCP on stdin/stdout until stdin closes or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC request per line from r and writes responses
// to w. Lines longer than the configured MaxRequestBytes end the session
// with an error.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	initial := 64 * 1024
	if s.cfg.MaxRequestBytes < initial {
		initial = s.cfg.MaxRequestBytes
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initial), s.cfg.MaxRequestBytes)

	encoder := json.NewEncoder(w)

	s.log.Info("server started", "name", s.info.Name, "version", s.info.Version)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.log.Warn("failed to parse request", "error", err)
			continue
		}

		resp := s.handleRequest(ctx, &req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				s.log.Error("failed to encode response", "method", req.Method, "error", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	s.log.Info("input closed, shutting down", "cached_images", s.cache.Len())
	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(ctx context.Context, req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		s.log.Debug("unknown method", "method", req.Method)
		return s.errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), "")
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": ProtocolVersion,
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    s.info.Name,
				"version": s.info.Version,
			},
		},
	}
}

// errorResponse creates a JSON-RPC error response. Empty data is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}
