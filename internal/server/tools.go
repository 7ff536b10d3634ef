package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Shared argument schemas.
var (
	sourceProp = map[string]interface{}{
		"type":        "string",
		"description": "Image file path (absolute, or relative to the configured base_dir) or http(s) URL",
	}
	spacingProp = map[string]interface{}{
		"type":        "string",
		"description": "Distance between stops: a percentage of the image width (\"25%\") or source pixels (\"100\", \"100px\"). Defaults to the configured fidelity",
	}
	fidelityProp = map[string]interface{}{
		"type":        "string",
		"description": "Default spacing for calls without a spacing argument (e.g. \"25%\" or \"100\")",
	}
	generatorProp = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"default", "simple", "complex"},
		"description": "Stop placement strategy: simple emits fewer stops, complex more",
	}
)

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// CSS Transformation
		{
			Name:        "css_transform",
			Description: "Rewrite every resemble-image(url(...), spacing) call in a stylesheet into a linear-gradient approximating the image's colors. Pass either the stylesheet text or a path to a .css file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"css": map[string]interface{}{
						"type":        "string",
						"description": "Stylesheet source",
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to a stylesheet; relative image paths resolve against its directory unless base_dir is configured",
					},
					"fidelity":  fidelityProp,
					"generator": generatorProp,
				},
			},
		},
		{
			Name:        "css_transform_value",
			Description: "Rewrite resemble-image calls in a single property value, e.g. 'url(a.png), resemble-image(url(\"hero.jpg\"), 20%)'. Other layers are returned unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "string",
						"description": "A CSS property value",
					},
					"fidelity":  fidelityProp,
					"generator": generatorProp,
				},
				"required": []string{"value"},
			},
		},

		// Image Sampling
		{
			Name:        "image_column_colors",
			Description: "Return the average color of every pixel column of an image, left to right.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": sourceProp,
				},
				"required": []string{"source"},
			},
		},
		{
			Name:        "image_gradient",
			Description: "Compute the gradient stops resemble-image would emit for an image, plus the linear-gradient CSS.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source":    sourceProp,
					"spacing":   spacingProp,
					"generator": generatorProp,
				},
				"required": []string{"source"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most prominent colors in an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": sourceProp,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return (default 5)",
						"default":     5,
					},
				},
				"required": []string{"source"},
			},
		},
		{
			Name:        "gradient_preview",
			Description: "Render the gradient computed for an image as a base64-encoded PNG, for side-by-side comparison with the source.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source":    sourceProp,
					"spacing":   spacingProp,
					"generator": generatorProp,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Preview width in pixels (default 400)",
						"default":     400,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Preview height in pixels (default 40)",
						"default":     40,
					},
				},
				"required": []string{"source"},
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
