package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/gemini-media-mcp/internal/gemini"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "generate_media").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// Every call naming a known tool returns a successful envelope:
//
//	{
//	  "content": [{"type": "text", "text": "<string>"}]
//	}
//
// Logical failures (missing parameter, file not found, API error) are
// reported inside that envelope as text beginning with "Error:". Only an
// unknown tool name or arguments that fail JSON decoding produce a
// JSON-RPC error response (-32602).
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	text, protoErr := s.executeTool(ctx, params.Name, params.Arguments)
	if protoErr != nil {
		return &MCPResponse{JSONRPC: "2.0", ID: req.ID, Error: protoErr}
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: ToolResult{
			Content: []ContentBlock{{Type: "text", Text: text}},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler.
//
// The dispatch is a closed switch over the three tool names. Each handler:
//  1. Unmarshals its typed arguments from JSON
//  2. Validates required parameters, producing "Error: <field> is required"
//  3. Calls the matching client operation
//  4. Maps the Outcome to a bare path, inline text, or "Error: <message>"
//
// A non-nil *MCPError return means the call never reached a handler.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (string, *MCPError) {
	// An absent arguments field reaches parameter validation, not a
	// protocol error
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	case toolGenerateMedia:
		var a generateMediaArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return "", &MCPError{Code: -32602, Message: "Invalid params", Data: err.Error()}
		}
		return s.safeCall(name, func() string { return s.handleGenerateMedia(ctx, a) }), nil

	case toolAnalyzeMedia:
		var a analyzeMediaArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return "", &MCPError{Code: -32602, Message: "Invalid params", Data: err.Error()}
		}
		return s.safeCall(name, func() string { return s.handleAnalyzeMedia(ctx, a) }), nil

	case toolManipulateMedia:
		var a manipulateMediaArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return "", &MCPError{Code: -32602, Message: "Invalid params", Data: err.Error()}
		}
		return s.safeCall(name, func() string { return s.handleManipulateMedia(ctx, a) }), nil

	default:
		return "", &MCPError{Code: -32602, Message: fmt.Sprintf("Unknown tool: %s", name)}
	}
}

// safeCall runs a tool handler and converts any residual panic into the
// textual error convention, so a matched tool call always yields a
// well-formed result envelope.
func (s *Server) safeCall(name string, fn func() string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("tool %s panicked: %v", name, r)
			text = fmt.Sprintf("Error: %v", r)
		}
	}()
	return fn()
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// === Tool Handlers ===

type generateMediaArgs struct {
	Prompt     string `json:"prompt"`
	OutputFile string `json:"outputFile"`
}

func (s *Server) handleGenerateMedia(ctx context.Context, a generateMediaArgs) string {
	if a.Prompt == "" {
		return "Error: prompt is required"
	}
	if a.OutputFile == "" {
		return "Error: outputFile is required"
	}

	outcome := s.client.GenerateFromText(ctx, a.Prompt, a.OutputFile)
	if !outcome.Success {
		return "Error: " + outcome.Message
	}
	return outcome.OutputPath
}

type analyzeMediaArgs struct {
	FilePath string `json:"filePath"`
	Prompt   string `json:"prompt"`
}

func (s *Server) handleAnalyzeMedia(ctx context.Context, a analyzeMediaArgs) string {
	if a.FilePath == "" {
		return "Error: filePath is required"
	}
	if a.Prompt == "" {
		return "Error: prompt is required"
	}

	outcome := s.client.AnalyzeFile(ctx, a.FilePath, a.Prompt)
	if !outcome.Success {
		return "Error: " + outcome.Message
	}
	return analysisText(outcome)
}

type manipulateMediaArgs struct {
	InputFile  string `json:"inputFile"`
	Prompt     string `json:"prompt"`
	OutputFile string `json:"outputFile"`
}

func (s *Server) handleManipulateMedia(ctx context.Context, a manipulateMediaArgs) string {
	if a.InputFile == "" {
		return "Error: inputFile is required"
	}
	if a.Prompt == "" {
		return "Error: prompt is required"
	}
	if a.OutputFile == "" {
		return "Error: outputFile is required"
	}

	outcome := s.client.TransformFile(ctx, a.InputFile, a.Prompt, a.OutputFile)
	if !outcome.Success {
		return "Error: " + outcome.Message
	}
	return outcome.OutputPath
}

// analysisText extracts the inline text from a successful analysis outcome.
func analysisText(outcome gemini.Outcome) string {
	if outcome.Data == nil {
		return ""
	}
	return outcome.Data.Text
}
