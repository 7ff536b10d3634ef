package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ironsheep/css-resemble-image/internal/gradient"
	"github.com/ironsheep/css-resemble-image/internal/imaging"
	"github.com/ironsheep/css-resemble-image/internal/resemble"
)

// Preview size limits for gradient_preview.
const (
	defaultPreviewWidth  = 400
	defaultPreviewHeight = 40
	maxPreviewSize       = 4096
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "css_transform", "image_gradient").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.log.Warn().Err(err).Str("tool", params.Name).Msg("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies per-call overrides to the server configuration
//  3. Loads and samples images through the resemble pipeline
//  4. Returns the result or error
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// CSS Transformation
	case "css_transform":
		return s.handleCSSTransform(ctx, args)
	case "css_transform_value":
		return s.handleCSSTransformValue(ctx, args)

	// Image Sampling
	case "image_column_colors":
		return s.handleImageColumnColors(ctx, args)
	case "image_gradient":
		return s.handleImageGradient(ctx, args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(ctx, args)
	case "gradient_preview":
		return s.handleGradientPreview(ctx, args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
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

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// transformer builds a Transformer from the server configuration with the
// given overrides. Empty overrides keep the configured value.
func (s *Server) transformer(fidelity, generator, baseDir string) (*resemble.Transformer, error) {
	cfg := s.cfg
	if fidelity != "" {
		cfg.Fidelity = fidelity
	}
	if generator != "" {
		cfg.Generator = generator
	}
	if baseDir != "" && cfg.BaseDir == "" {
		cfg.BaseDir = baseDir
	}
	return cfg.Transformer()
}

// === CSS Transformation Handlers ===

type cssTransformArgs struct {
	CSS       string `json:"css"`
	Path      string `json:"path"`
	Fidelity  string `json:"fidelity"`
	Generator string `json:"generator"`
}

// TransformResult is returned by css_transform and css_transform_value.
type TransformResult struct {
	// Output is the rewritten stylesheet or value.
	Output  string `json:"output"`
	Changed bool   `json:"changed"`
}

func (s *Server) handleCSSTransform(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a cssTransformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if (a.CSS == "") == (a.Path == "") {
		return nil, errors.New("exactly one of css or path is required")
	}

	src, baseDir := a.CSS, ""
	if a.Path != "" {
		data, err := os.ReadFile(a.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read stylesheet: %w", err)
		}
		src, baseDir = string(data), filepath.Dir(a.Path)
	}

	t, err := s.transformer(a.Fidelity, a.Generator, baseDir)
	if err != nil {
		return nil, err
	}
	out, err := t.TransformStylesheet(ctx, src)
	if err != nil {
		return nil, err
	}
	return &TransformResult{Output: out, Changed: out != src}, nil
}

type cssTransformValueArgs struct {
	Value     string `json:"value"`
	Fidelity  string `json:"fidelity"`
	Generator string `json:"generator"`
}

func (s *Server) handleCSSTransformValue(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a cssTransformValueArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	t, err := s.transformer(a.Fidelity, a.Generator, "")
	if err != nil {
		return nil, err
	}
	out, changed, err := t.TransformValue(ctx, a.Value)
	if err != nil {
		return nil, err
	}
	return &TransformResult{Output: out, Changed: changed}, nil
}

// === Image Sampling Handlers ===

type imageSourceArgs struct {
	Source string `json:"source"`
}

// ColumnColorsResult lists the sampled color of every column.
type ColumnColorsResult struct {
	Image  *imaging.ImageInfo `json:"image"`
	Colors []string           `json:"colors"`
}

func (s *Server) handleImageColumnColors(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageSourceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, info, err := imaging.LoadImage(ctx, s.cfg.Loader(), a.Source)
	if err != nil {
		return nil, err
	}
	cols := imaging.SampleColumns(img)
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.CSS()
	}
	return &ColumnColorsResult{Image: info, Colors: out}, nil
}

type imageGradientArgs struct {
	Source    string `json:"source"`
	Spacing   string `json:"spacing"`
	Generator string `json:"generator"`
}

// StopResult is a gradient stop in CSS notation.
type StopResult struct {
	Color    string  `json:"color"`
	Position float64 `json:"position"`
}

// GradientResult describes the gradient computed for one image.
type GradientResult struct {
	Stops []StopResult `json:"stops"`
	CSS   string       `json:"css"`
}

func (s *Server) gradient(ctx context.Context, a imageGradientArgs) ([]gradient.Stop, string, error) {
	t, err := s.transformer("", a.Generator, "")
	if err != nil {
		return nil, "", err
	}
	stops, err := t.Gradient(ctx, a.Source, a.Spacing)
	if err != nil {
		return nil, "", err
	}
	return stops, gradient.CSS(stops, t.Direction()), nil
}

func (s *Server) handleImageGradient(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageGradientArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	stops, css, err := s.gradient(ctx, a)
	if err != nil {
		return nil, err
	}
	result := &GradientResult{Stops: make([]StopResult, len(stops)), CSS: css}
	for i, st := range stops {
		result.Stops[i] = StopResult{Color: st.Color.CSS(), Position: st.Position}
	}
	return result, nil
}

type imageDominantColorsArgs struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

func (s *Server) handleImageDominantColors(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}

	img, _, err := imaging.LoadImage(ctx, s.cfg.Loader(), a.Source)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count)
}

type gradientPreviewArgs struct {
	imageGradientArgs
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleGradientPreview(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a gradientPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = defaultPreviewWidth
	}
	if a.Height == 0 {
		a.Height = defaultPreviewHeight
	}
	if a.Width < 0 || a.Height < 0 || a.Width > maxPreviewSize || a.Height > maxPreviewSize {
		return nil, fmt.Errorf("preview size %dx%d out of range (max %d)", a.Width, a.Height, maxPreviewSize)
	}

	stops, _, err := s.gradient(ctx, a.imageGradientArgs)
	if err != nil {
		return nil, err
	}
	return imaging.RenderColumns(gradient.Evaluate(stops, a.Width), a.Width, a.Height)
}
