// Package gemini wraps the Google Gemini multimodal API for the MCP server.
//
// The Client is the sole owner of the outbound network dependency and the
// output directory. It exposes three operations, one per server tool:
//
//   - GenerateFromText: prompt in, file out (text or binary media)
//   - AnalyzeFile: local file + prompt in, analysis text out (no file written)
//   - TransformFile: local file + instructions in, transformed text file out
//
// # Configuration
//
// The client reads its configuration from the environment once, at
// construction:
//
//   - GEMINI_API_KEY (or GOOGLE_API_KEY): required API credential
//   - GEMINI_MODEL: model identifier, defaults to gemini-2.0-flash-exp
//   - MEDIA_OUTPUT_DIR: output directory, defaults to <tmp>/gemini-media
//
// # Result Values
//
// Every operation returns an Outcome value rather than an error. Expected
// failure modes (missing input file, API error, disk error) set
// Outcome.Success to false with a descriptive Message; callers only branch
// on Success. Output paths in a successful Outcome point at content already
// flushed to disk.
//
// # MIME Inference
//
// Input file MIME types are inferred purely from the file extension via a
// fixed table (see mime.go); unrecognized extensions map to
// application/octet-stream. No magic-byte sniffing is performed. The inverse
// table names output files when the API returns binary media: the extension
// is appended only when the requested filename does not already carry it.
//
// # Output Directory
//
// The output directory is created lazily and idempotently before writes.
// Generated files are never deleted by this package; cleanup is the
// caller's responsibility. Concurrent writes to the same output filename
// are last-write-wins.
package gemini
