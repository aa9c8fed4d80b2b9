// Package server implements the MCP (Model Context Protocol) server for
// Munsell color naming.
//
// This package provides a JSON-RPC 2.0 server that exposes the Munsell
// approximation and image color picking through the MCP protocol, so an MCP
// client can ask "what color is this, in words?" about an RGB triple, a hex
// string or a pixel of an image on disk.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line, at most
//     MUNSELL_MCP_MAX_REQUEST_BYTES long)
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
// Conversion:
//   - munsell_convert: Notation and name of an r, g, b triple
//   - munsell_convert_hex: Same for a "#RRGGBB" string
//   - munsell_convert_batch: Many colors at once, on a worker pool
//   - munsell_swatch: Solid PNG swatch plus its description
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Picking:
//   - image_pick_color: Describe the color at a pixel
//   - image_pick_colors_multi: Describe several labeled points
//   - image_dominant_colors: Palette with notation and name per entry
//   - image_compare_colors: ΔE and notation comparison of two points
//
// Rendering:
//   - image_mark_pick: Ring marker (and optional label) at a pick
//   - image_zoom_pick: Magnified crop around a pick
//
// # Image Caching
//
// Images are decoded once per path and reused across tool calls for the
// lifetime of the server process.
//
// # Error Handling
//
// Failures are returned as JSON-RPC error responses:
//   - -32601: unknown method
//   - -32602: malformed arguments, channels outside 0-255, invalid hex
//   - -32000: any other tool failure (missing file, point outside image)
//
// The error data carries the Go error string.
//
// # Logging
//
// Logs go to the slog.Logger passed to New and never to stdout. Each
// tools/call is logged with a random call id, the tool name and its duration.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	srv := server.New(*cfg, logger, server.Info{Version: Version})
//	return srv.Run(ctx)
package server
