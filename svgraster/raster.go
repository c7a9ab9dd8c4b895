// Package svgraster renders SVG images into square RGBA bitmaps,
// by wrapping oksvg and rasterx.
package svgraster

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/k1LoW/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Renderer paints parsed icons into a fixed width x height area.
type Renderer struct {
	width, height int
	dasher        *rasterx.Dasher // fills and strokes share the same scanner
}

// NewRenderer returns a renderer drawing through scanner.
// If scanner is nil, the icon is drawn into dst with a rasterx.ScannerGV.
func NewRenderer(dst *image.RGBA, scanner rasterx.Scanner) *Renderer {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	if scanner == nil {
		scanner = rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	}
	return &Renderer{width: w, height: h, dasher: rasterx.NewDasher(w, h, scanner)}
}

// Draw fits the icon view box into the renderer area, keeping its
// aspect ratio and centering it, then paints it at full opacity.
func (rd *Renderer) Draw(icon *oksvg.SvgIcon) {
	vb := icon.ViewBox
	x, y, scale := fit(vb.W, vb.H, float64(rd.width), float64(rd.height))
	// the view box origin lands on (x, y)
	icon.Transform = rasterx.Identity.Translate(x, y).Scale(scale, scale).Translate(-vb.X, -vb.Y)
	icon.Draw(rd.dasher, 1.0)
}

// fit returns the offset and the scale of a vw x vh box fitted
// into a w x h area ("xMidYMid meet").
func fit(vw, vh, w, h float64) (x, y, scale float64) {
	scale = math.Min(w/vw, h/vh)
	return (w - vw*scale) / 2, (h - vh*scale) / 2, scale
}

type config struct {
	errMode oksvg.ErrorMode
	logger  *slog.Logger
}

// Option customizes Rasterize and RasterizeStream.
type Option func(*config)

// WithErrorMode selects how SVG elements unknown to the parser are handled.
// The default ignores them.
func WithErrorMode(mode oksvg.ErrorMode) Option {
	return func(c *config) {
		c.errMode = mode
	}
}

// WithLogger reports sources that do not fill the square canvas.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Rasterize reads the SVG file at path and renders it
// into a new width x width image.
func Rasterize(path string, width int, opts ...Option) (_ *image.RGBA, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
		}
		return nil, fmt.Errorf("%w: failed to open svg source %s: %w", ErrSourceNotFound, path, err)
	}
	defer f.Close()
	return RasterizeStream(f, width, opts...)
}

// RasterizeStream parses the SVG content of r and renders it
// into a new width x width image with a transparent background.
func RasterizeStream(r io.Reader, width int, opts ...Option) (_ *image.RGBA, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if width <= 0 {
		return nil, fmt.Errorf("%w: invalid raster width %d", ErrRender, width)
	}
	c := &config{
		errMode: oksvg.IgnoreErrorMode,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	icon, err := oksvg.ReadIconStream(r, c.errMode)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse svg: %w", ErrRender, err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("%w: svg has neither a view box nor a size", ErrRender)
	}
	if icon.ViewBox.W != icon.ViewBox.H {
		c.logger.Warn("source is not square",
			slog.Float64("width", icon.ViewBox.W), slog.Float64("height", icon.ViewBox.H))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, width))
	NewRenderer(img, nil).Draw(icon)
	return img, nil
}
