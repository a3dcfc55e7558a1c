package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ironsheep/gemini-media-mcp/internal/media"
)

// DefaultModel is used when GEMINI_MODEL is not set.
const DefaultModel = "gemini-2.0-flash-exp"

// Outcome is the result of one client operation. Operations never return
// errors; expected failure modes (missing file, API error, disk error) are
// reported through Success and Message so callers only branch on Success.
type Outcome struct {
	Success    bool
	Message    string
	OutputPath string
	Data       *Payload
}

// Payload describes the content attached to a successful Outcome: inline
// text for analysis results, or MIME type / size / dimensions for binary
// media written to disk.
type Payload struct {
	Text     string
	MIMEType string
	Bytes    int
	Width    int
	Height   int
}

// contentGenerator is the outbound model call. *genai.GenerativeModel
// satisfies it; tests substitute a stub.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Client wraps the Gemini API and owns the output directory. It is
// constructed once at startup and shared by all tool handlers.
type Client struct {
	api    *genai.Client
	gen    contentGenerator
	model  string
	outDir string
}

// NewClient builds a Client from the environment.
//
// GEMINI_API_KEY (or GOOGLE_API_KEY) is required. GEMINI_MODEL and
// MEDIA_OUTPUT_DIR are optional and defaulted.
func NewClient(ctx context.Context) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY or GOOGLE_API_KEY")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultModel
	}

	outDir := os.Getenv("MEDIA_OUTPUT_DIR")
	if outDir == "" {
		outDir = filepath.Join(os.TempDir(), "gemini-media")
	}

	api, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}

	return &Client{
		api:    api,
		gen:    api.GenerativeModel(model),
		model:  model,
		outDir: outDir,
	}, nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	if c.api == nil {
		return nil
	}
	return c.api.Close()
}

// OutputDir returns the directory generated files are written under.
func (c *Client) OutputDir() string {
	return c.outDir
}

// GenerateFromText sends a prompt to the model and writes the response under
// the output directory. A text response is written verbatim to outputFile; a
// binary media response gets an extension appended from its MIME type before
// the bytes are written. The returned path points at fully flushed content.
func (c *Client) GenerateFromText(ctx context.Context, prompt, outputFile string) Outcome {
	c.ensureOutputDir()

	resp, err := c.gen.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return failure("Generation failed: %v", err)
	}

	parts := candidateParts(resp)
	if len(parts) == 0 {
		return failure("Generation failed: no content generated")
	}

	// A binary media part wins over accompanying text; image models often
	// return a short text part alongside the blob.
	for _, part := range parts {
		if b, ok := part.(genai.Blob); ok {
			name := ensureExtension(outputFile, b.MIMEType)
			path := filepath.Join(c.outDir, name)
			if err := os.WriteFile(path, b.Data, 0o644); err != nil {
				return failure("Generation failed: %v", err)
			}
			payload := &Payload{MIMEType: b.MIMEType, Bytes: len(b.Data)}
			if info, err := media.Inspect(b.Data); err == nil {
				payload.Width = info.Width
				payload.Height = info.Height
				log.Printf("generated %s (%d bytes, %dx%d) -> %s", b.MIMEType, len(b.Data), info.Width, info.Height, path)
			} else {
				log.Printf("generated %s (%d bytes) -> %s", b.MIMEType, len(b.Data), path)
			}
			return Outcome{Success: true, Message: "generated media output", OutputPath: path, Data: payload}
		}
	}

	text := responseText(resp)
	if text == "" {
		return failure("Generation failed: no usable content in response")
	}
	path := filepath.Join(c.outDir, outputFile)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return failure("Generation failed: %v", err)
	}
	return Outcome{Success: true, Message: "generated text output", OutputPath: path}
}

// AnalyzeFile sends a local file plus a prompt to the model and returns the
// analysis text inline. The file's MIME type is inferred from its extension.
// This is the one operation that never writes to the output directory.
func (c *Client) AnalyzeFile(ctx context.Context, filePath, prompt string) Outcome {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return failure("Analysis failed: %v", err)
	}
	mimeType := mimeForPath(filePath)

	resp, err := c.gen.GenerateContent(ctx,
		genai.Text(prompt),
		genai.Blob{MIMEType: mimeType, Data: data},
	)
	if err != nil {
		return failure("Analysis failed: %v", err)
	}

	text := responseText(resp)
	if text == "" {
		return failure("Analysis failed: no analysis returned")
	}

	return Outcome{
		Success: true,
		Message: "analysis complete",
		Data:    &Payload{Text: text, MIMEType: mimeType, Bytes: len(data)},
	}
}

// TransformFile sends a local file plus transformation instructions to the
// model and writes the response text to outputFile under the output
// directory.
func (c *Client) TransformFile(ctx context.Context, inputFile, prompt, outputFile string) Outcome {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return failure("Manipulation failed: %v", err)
	}
	mimeType := mimeForPath(inputFile)

	resp, err := c.gen.GenerateContent(ctx,
		genai.Text(prompt),
		genai.Blob{MIMEType: mimeType, Data: data},
	)
	if err != nil {
		return failure("Manipulation failed: %v", err)
	}

	text := responseText(resp)
	if text == "" {
		return failure("Manipulation failed: no output returned")
	}

	c.ensureOutputDir()
	path := filepath.Join(c.outDir, outputFile)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return failure("Manipulation failed: %v", err)
	}

	return Outcome{Success: true, Message: "manipulation complete", OutputPath: path}
}

// ensureOutputDir creates the output directory if absent. Creation failure
// is logged rather than returned; the subsequent write fails and is
// reported through the Outcome.
func (c *Client) ensureOutputDir() {
	if err := os.MkdirAll(c.outDir, 0o755); err != nil {
		log.Printf("failed to create output directory %s: %v", c.outDir, err)
	}
}

// candidateParts returns the parts of the first candidate, or nil if the
// response carries no content.
func candidateParts(resp *genai.GenerateContentResponse) []genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, part := range candidateParts(resp) {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}

func failure(format string, args ...interface{}) Outcome {
	return Outcome{Success: false, Message: fmt.Sprintf(format, args...)}
}
