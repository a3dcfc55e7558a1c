package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/gemini-media-mcp/internal/gemini"
	"github.com/ironsheep/gemini-media-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("gemini-media-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("gemini-media-mcp - MCP server for Gemini media generation")
			fmt.Println()
			fmt.Println("Usage: gemini-media-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  GEMINI_API_KEY             Gemini API key (required; GOOGLE_API_KEY also accepted)")
			fmt.Println("  GEMINI_MODEL               Model identifier (default: gemini-2.0-flash-exp)")
			fmt.Println("  MEDIA_OUTPUT_DIR           Directory for generated files (default: <tmp>/gemini-media)")
			fmt.Println("  MEDIA_MCP_LOG_LEVEL=debug  Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("MEDIA_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Gemini Media MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	client, err := gemini.NewClient(context.Background())
	if err != nil {
		log.Fatalf("Gemini client: %v", err)
	}
	defer client.Close()

	srv := server.New(client)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
