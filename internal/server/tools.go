package server

// Tool names exposed by this server. The dispatch in handlers.go is a
// closed switch over these three; adding a tool means adding a constant,
// a descriptor, and a case.
const (
	toolGenerateMedia   = "generate_media"
	toolAnalyzeMedia    = "analyze_media"
	toolManipulateMedia = "manipulate_media"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        toolGenerateMedia,
			Description: "Generate media content from a text prompt using Gemini. The result is written to a file in the output directory and its path is returned.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"prompt": map[string]interface{}{
						"type":        "string",
						"description": "Text prompt describing the content to generate",
					},
					"outputFile": map[string]interface{}{
						"type":        "string",
						"description": "Filename for the generated output. A file extension matching the returned media type is appended if missing.",
					},
				},
				"required": []string{"prompt", "outputFile"},
			},
		},
		{
			Name:        toolAnalyzeMedia,
			Description: "Analyze a local media file (image, video, or audio) with Gemini and return the analysis text inline.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"filePath": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the media file to analyze",
					},
					"prompt": map[string]interface{}{
						"type":        "string",
						"description": "What to analyze or describe about the file",
					},
				},
				"required": []string{"filePath", "prompt"},
			},
		},
		{
			Name:        toolManipulateMedia,
			Description: "Apply transformation instructions to a local media file using Gemini. The transformed result is written to a file in the output directory and its path is returned.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"inputFile": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the media file to transform",
					},
					"prompt": map[string]interface{}{
						"type":        "string",
						"description": "Transformation instructions to apply",
					},
					"outputFile": map[string]interface{}{
						"type":        "string",
						"description": "Filename for the transformed output",
					},
				},
				"required": []string{"inputFile", "prompt", "outputFile"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
