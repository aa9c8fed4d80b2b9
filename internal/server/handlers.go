package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond"
	"github.com/google/uuid"

	"github.com/ironsheep/munsell-mcp/internal/imaging"
	"github.com/ironsheep/munsell-mcp/internal/munsell"
)

// Defaults for optional tool arguments not covered by config.
const (
	defaultSwatchSize = 64
	defaultZoomSize   = 32
	defaultZoomScale  = 8.0
)

// errInvalidArgs marks argument errors so they are reported as -32602.
var errInvalidArgs = errors.New("invalid arguments")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "munsell_convert", "image_pick_color").
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
// Bad arguments, including out-of-range channels and malformed hex, return
// -32602. Any other tool failure returns -32000. Every call is logged with
// a fresh call id.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, CodeInvalidParams, "Invalid params", err.Error())
	}

	log := s.log.With("call_id", uuid.NewString(), "tool", params.Name)
	log.Debug("tool call started")
	start := time.Now()

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	elapsed := time.Since(start)
	if err != nil {
		log.Warn("tool call failed", "duration", elapsed, "error", err)
		if isInvalidParams(err) {
			return s.errorResponse(req.ID, CodeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, CodeToolFailed, "Tool execution failed", err.Error())
	}
	log.Info("tool call finished", "duration", elapsed)

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

func isInvalidParams(err error) bool {
	return errors.Is(err, errInvalidArgs) ||
		errors.Is(err, munsell.ErrOutOfRange) ||
		errors.Is(err, munsell.ErrInvalidHex)
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Decodes arguments from JSON
//  2. Applies config defaults for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the munsell or imaging function
//  5. Returns the result or error
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Conversion
	case "munsell_convert":
		return s.handleMunsellConvert(args)
	case "munsell_convert_hex":
		return s.handleMunsellConvertHex(args)
	case "munsell_convert_batch":
		return s.handleMunsellConvertBatch(ctx, args)
	case "munsell_swatch":
		return s.handleMunsellSwatch(args)

	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Picking
	case "image_pick_color":
		return s.handleImagePickColor(args)
	case "image_pick_colors_multi":
		return s.handleImagePickColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_compare_colors":
		return s.handleImageCompareColors(args)

	// Rendering
	case "image_mark_pick":
		return s.handleImageMarkPick(args)
	case "image_zoom_pick":
		return s.handleImageZoomPick(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments; missing arguments decode as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return nil
}

func requirePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: path is required", errInvalidArgs)
	}
	return nil
}

// === Conversion Handlers ===

type rgbArgs struct {
	R *int `json:"r"`
	G *int `json:"g"`
	B *int `json:"b"`
}

// ints returns the three channels, failing if any was omitted.
func (a rgbArgs) ints() (r, g, b int, err error) {
	for _, ch := range []struct {
		name string
		v    *int
	}{{"r", a.R}, {"g", a.G}, {"b", a.B}} {
		if ch.v == nil {
			return 0, 0, 0, fmt.Errorf("%w: %s is required", errInvalidArgs, ch.name)
		}
	}
	return *a.R, *a.G, *a.B, nil
}

func (s *Server) handleMunsellConvert(args json.RawMessage) (interface{}, error) {
	var a rgbArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	r, g, b, err := a.ints()
	if err != nil {
		return nil, err
	}
	return munsell.ConvertInts(r, g, b)
}

type hexArgs struct {
	Hex string `json:"hex"`
}

func (s *Server) handleMunsellConvertHex(args json.RawMessage) (interface{}, error) {
	var a hexArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return munsell.ConvertHex(a.Hex)
}

type batchArgs struct {
	Colors []rgbArgs `json:"colors"`
}

// BatchResult holds one description per input color, in input order.
type BatchResult struct {
	Results []munsell.Description `json:"results"`
	Count   int                   `json:"count"`
}

func (s *Server) handleMunsellConvertBatch(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a batchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Colors) > s.cfg.BatchLimit {
		return nil, fmt.Errorf("%w: %d colors exceeds the batch limit of %d", errInvalidArgs, len(a.Colors), s.cfg.BatchLimit)
	}

	inputs := make([]munsell.RGB, len(a.Colors))
	for i, c := range a.Colors {
		r, g, b, err := c.ints()
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		if inputs[i], err = munsell.RGBFromInts(r, g, b); err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
	}

	results, err := s.describeAll(ctx, inputs)
	if err != nil {
		return nil, err
	}
	return &BatchResult{Results: results, Count: len(results)}, nil
}

// describeAll converts colors on a bounded worker pool. Each task writes
// only its own slot, so results keep the input order.
func (s *Server) describeAll(ctx context.Context, colors []munsell.RGB) ([]munsell.Description, error) {
	results := make([]munsell.Description, len(colors))
	if len(colors) == 0 {
		return results, nil
	}

	workers := s.cfg.BatchWorkers
	if workers > len(colors) {
		workers = len(colors)
	}

	panicHandler := func(p interface{}) {
		s.log.Error("batch task panicked", "panic", p)
	}
	pool := pond.New(workers, len(colors), pond.MinWorkers(workers), pond.PanicHandler(panicHandler))

	for i, c := range colors {
		if err := ctx.Err(); err != nil {
			pool.Stop()
			return nil, err
		}
		i, c := i, c
		pool.Submit(func() {
			results[i] = munsell.Describe(c)
		})
	}

	pool.StopAndWait()
	if pool.FailedTasks() > 0 {
		return nil, errors.New("batch conversion failed")
	}
	return results, nil
}

type swatchArgs struct {
	rgbArgs
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SwatchResult is a rendered swatch with the description of its color.
type SwatchResult struct {
	imaging.ImageResult
	Color munsell.Description `json:"color"`
}

func (s *Server) handleMunsellSwatch(args json.RawMessage) (interface{}, error) {
	var a swatchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = defaultSwatchSize
	}
	if a.Height == 0 {
		a.Height = defaultSwatchSize
	}
	r, g, b, err := a.ints()
	if err != nil {
		return nil, err
	}
	rgb, err := munsell.RGBFromInts(r, g, b)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Swatch(rgb, a.Width, a.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return &SwatchResult{ImageResult: *img, Color: munsell.Describe(rgb)}, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Picking Handlers ===

// radiusOr returns *r, or the configured default when r is nil.
func (s *Server) radiusOr(r *int) int {
	if r == nil {
		return s.cfg.SampleRadius
	}
	return *r
}

type imagePickColorArgs struct {
	Path   string `json:"path"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Radius *int   `json:"radius"`
}

func (s *Server) handleImagePickColor(args json.RawMessage) (interface{}, error) {
	var a imagePickColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.PickColor(img, a.X, a.Y, s.radiusOr(a.Radius))
}

type imagePickColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
	Radius *int `json:"radius"`
}

func (s *Server) handleImagePickColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imagePickColorsMultiArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, fmt.Errorf("%w: at least one point is required", errInvalidArgs)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.PickColorsMulti(img, points, s.radiusOr(a.Radius))
}

type imageDominantColorsArgs struct {
	Path   string          `json:"path"`
	Count  int             `json:"count"`
	Region *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = s.cfg.DominantCount
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count, a.Region)
}

type imageCompareColorsArgs struct {
	Path   string `json:"path"`
	X1     int    `json:"x1"`
	Y1     int    `json:"y1"`
	X2     int    `json:"x2"`
	Y2     int    `json:"y2"`
	Radius *int   `json:"radius"`
}

func (s *Server) handleImageCompareColors(args json.RawMessage) (interface{}, error) {
	var a imageCompareColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	p1 := imaging.Point{X: a.X1, Y: a.Y1}
	p2 := imaging.Point{X: a.X2, Y: a.Y2}
	return imaging.ComparePoints(img, p1, p2, s.radiusOr(a.Radius))
}

// === Rendering Handlers ===

type imageMarkPickArgs struct {
	Path       string `json:"path"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Radius     *int   `json:"radius"`
	RingRadius int    `json:"ring_radius"`
	RingColor  string `json:"ring_color"`
	Label      bool   `json:"label"`
}

func (s *Server) handleImageMarkPick(args json.RawMessage) (interface{}, error) {
	var a imageMarkPickArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.MarkPick(img, a.X, a.Y, imaging.MarkOptions{
		SampleRadius: s.radiusOr(a.Radius),
		RingRadius:   a.RingRadius,
		RingColor:    a.RingColor,
		Label:        a.Label,
	})
}

type imageZoomPickArgs struct {
	Path  string  `json:"path"`
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Size  int     `json:"size"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImageZoomPick(args json.RawMessage) (interface{}, error) {
	var a imageZoomPickArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		a.Size = defaultZoomSize
	}
	if a.Scale == 0 {
		a.Scale = defaultZoomScale
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.ZoomAround(img, a.X, a.Y, a.Size, a.Scale)
}
