package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func intProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

var (
	pathProp = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
	radiusProp = map[string]interface{}{
		"type":        "integer",
		"description": "Averaging radius in pixels (0 = exact pixel, max 50). Defaults to MUNSELL_MCP_SAMPLE_RADIUS",
		"minimum":     0,
		"maximum":     50,
	}
	channelProps = map[string]interface{}{
		"r": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255, "description": "Red channel 0-255"},
		"g": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255, "description": "Green channel 0-255"},
		"b": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255, "description": "Blue channel 0-255"},
	}
)

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion
		{
			Name:        "munsell_convert",
			Description: "Approximate the Munsell notation (e.g. \"5YR 5.3/19\") and a descriptive name (e.g. \"Vivid Medium Yellow-Red\") of an sRGB color. Also returns hex, hue, value, chroma and the intermediate L*a*b*.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": channelProps,
				"required":   []string{"r", "g", "b"},
			},
		},
		{
			Name:        "munsell_convert_hex",
			Description: "Same as munsell_convert, for a \"#RRGGBB\" hex color (leading # optional, case-insensitive).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color such as #FF8040",
					},
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "munsell_convert_batch",
			Description: "Convert many sRGB colors in one call. Results are returned in input order. Fails as a whole if any color is invalid.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type":       "object",
							"properties": channelProps,
							"required":   []string{"r", "g", "b"},
						},
						"description": "Colors to convert (at most MUNSELL_MCP_BATCH_LIMIT)",
					},
				},
				"required": []string{"colors"},
			},
		},
		{
			Name:        "munsell_swatch",
			Description: "Render a solid swatch of an sRGB color as base64-encoded PNG, together with its Munsell description.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r":      channelProps["r"],
					"g":      channelProps["g"],
					"b":      channelProps["b"],
					"width":  intProp("Swatch width in pixels. Default 64"),
					"height": intProp("Swatch height in pixels. Default 64"),
				},
				"required": []string{"r", "g", "b"},
			},
		},

		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for subsequent picks.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
				},
				"required": []string{"path"},
			},
		},

		// Picking
		{
			Name:        "image_pick_color",
			Description: "Pick the color at a pixel (optionally averaged over a radius) and return its hex, Munsell notation and descriptive name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProp,
					"x":      intProp("X coordinate (0-based, from left)"),
					"y":      intProp("Y coordinate (0-based, from top)"),
					"radius": radiusProp,
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_pick_colors_multi",
			Description: "Pick and describe colors at several labeled points in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Points to pick",
					},
					"radius": radiusProp,
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most frequent colors of an image or region, each with its Munsell notation and name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProp,
					"count": intProp("Number of colors to return. Defaults to MUNSELL_MCP_DOMINANT_COUNT"),
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to analyze; x2/y2 exclusive",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_compare_colors",
			Description: "Compare the colors at two points: pixel distance, CIE76 and CIEDE2000 color difference, and both Munsell descriptions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProp,
					"x1":     intProp("First point X"),
					"y1":     intProp("First point Y"),
					"x2":     intProp("Second point X"),
					"y2":     intProp("Second point Y"),
					"radius": radiusProp,
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},

		// Rendering
		{
			Name:        "image_mark_pick",
			Description: "Pick a color and return the image with a ring drawn around the point (black on white samples, white otherwise) and optionally the notation beside it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProp,
					"x":           intProp("X coordinate"),
					"y":           intProp("Y coordinate"),
					"radius":      radiusProp,
					"ring_radius": intProp("Ring radius in pixels. Default 12"),
					"ring_color": map[string]interface{}{
						"type":        "string",
						"description": "Ring color override as #RRGGBB",
					},
					"label": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw the Munsell notation next to the ring",
						"default":     false,
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_zoom_pick",
			Description: "Return a magnified crop centred on a pick point as base64-encoded PNG, with nearest-neighbour scaling so individual pixels stay visible.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
					"x":    intProp("X coordinate"),
					"y":    intProp("Y coordinate"),
					"size": intProp("Edge length of the source window in pixels. Default 32"),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Magnification factor. Default 8",
						"default":     8.0,
					},
				},
				"required": []string{"path", "x", "y"},
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
