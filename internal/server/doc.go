// Package server implements the MCP (Model Context Protocol) server for the
// resemble-image CSS transform.
//
// This package provides a JSON-RPC 2.0 server that exposes the transform and
// the image sampling behind it, so an MCP client can rewrite stylesheets and
// inspect the gradients it would produce.
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
// # Available Tools
//
// CSS Transformation:
//   - css_transform: Rewrite a whole stylesheet (text or file)
//   - css_transform_value: Rewrite a single property value
//
// Image Sampling:
//   - image_column_colors: Average color of each pixel column
//   - image_gradient: Stops and CSS for one image
//   - image_dominant_colors: Extract color palette
//   - gradient_preview: Render the gradient as a PNG
//
// Tools that accept fidelity or generator arguments apply them on top of the
// configuration the server was started with. No images are cached; every
// call loads its source afresh.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	srv := server.New(cfg, logger)
//	if err := srv.Run(ctx); err != nil {
//	    return err
//	}
package server
