// Package server implements the MCP (Model Context Protocol) server for
// Gemini-backed media tools.
//
// This package provides a JSON-RPC 2.0 server that forwards caller prompts
// (and local files) to the Gemini multimodal API. It's designed to work with
// Claude and other MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// Requests are handled strictly one at a time: the server reads a request,
// runs the full handler chain (including the Gemini network round trip),
// writes the response, and only then reads the next request. Diagnostic
// output goes to stderr; stdout carries only protocol messages.
//
// # Available Tools
//
// The server provides 3 media tools:
//
//   - generate_media: Generate content from a text prompt; returns the path
//     of the file written to the output directory
//   - analyze_media: Analyze a local media file; returns the analysis text
//     inline
//   - manipulate_media: Transform a local media file per instructions;
//     returns the path of the transformed output file
//
// # Error Handling
//
// Calls that match a known tool always return a successful JSON-RPC
// envelope. Logical failures (missing required parameter, unreadable input
// file, API or disk error) are reported as content text beginning with
// "Error:" inside that envelope, never as JSON-RPC errors. Callers detect
// failure by the "Error:" prefix; there is no structured error code.
//
// JSON-RPC error responses are reserved for conditions where no handler
// runs:
//   - code -32601: unknown method
//   - code -32602: unknown tool name, or arguments that fail JSON decoding
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	client, err := gemini.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(client)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
