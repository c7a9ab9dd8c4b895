// Package favicon renders an SVG logo into the icon and PNG files
// a web app serves: a multi-size favicon.ico and standalone logos.
//
// Generation is a single linear pass. Outputs are written one after
// the other and a failure leaves the outputs written before it in place.
package favicon

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/favicon/resample"
	"github.com/benoitkugler/favicon/svgraster"
	"github.com/k1LoW/errors"
)

// Generator runs a Plan from an SVG source to the icon and PNG outputs.
type Generator struct {
	root   string
	plan   Plan
	filter resample.Filter
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRoot resolves the plan's relative paths against dir instead of
// the working directory.
func WithRoot(dir string) Option {
	return func(g *Generator) {
		g.root = dir
	}
}

// WithPlan replaces DefaultPlan.
func WithPlan(p Plan) Option {
	return func(g *Generator) {
		g.plan = p
	}
}

// WithFilter selects the resampling filter. The default is resample.Lanczos3.
func WithFilter(f resample.Filter) Option {
	return func(g *Generator) {
		if f != nil {
			g.filter = f
		}
	}
}

// WithLogger sets the logger receiving progress and warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New returns a generator for DefaultPlan rooted at the working directory.
func New(opts ...Option) *Generator {
	g := &Generator{
		root:   ".",
		plan:   DefaultPlan(),
		filter: resample.Lanczos3,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result lists the files written by Generate, in write order.
type Result struct {
	Written []string
}

// Generate renders the source once at the base size and writes the icon,
// then each PNG output. Nothing is written when the source cannot be
// rendered.
func (g *Generator) Generate() (_ *Result, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := g.plan.Validate(); err != nil {
		return nil, err
	}

	src := g.path(g.plan.Source)
	g.logger.Info("rendering source", slog.String("path", src), slog.Int("size", g.plan.BaseSize))
	base, err := svgraster.Rasterize(src, g.plan.BaseSize, svgraster.WithLogger(g.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize %s: %w", src, err)
	}

	res := &Result{}
	icoPath := g.path(g.plan.ICOPath)
	variants := resample.ResizeAll(base, g.plan.ICOSizes, resample.WithFilter(g.filter))
	imgs := make([]image.Image, len(variants))
	for i, v := range variants {
		imgs[i] = v
	}
	if err := WriteICO(icoPath, imgs); err != nil {
		return nil, err
	}
	res.Written = append(res.Written, icoPath)
	g.logger.Info("wrote file", slog.String("path", icoPath), slog.String("sizes", sizeList(g.plan.ICOSizes)))

	for _, o := range g.plan.PNGs {
		p := g.path(o.Path)
		if err := WritePNG(p, resample.Resize(base, o.Size, resample.WithFilter(g.filter))); err != nil {
			return nil, err
		}
		res.Written = append(res.Written, p)
		g.logger.Info("wrote file", slog.String("path", p), slog.String("sizes", o.Size.String()))
	}

	g.logger.Info("generate completed", slog.Int("count", len(res.Written)))
	return res, nil
}

func (g *Generator) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(g.root, p)
}

func sizeList(sizes []resample.Size) string {
	s := make([]string, len(sizes))
	for i, size := range sizes {
		s[i] = size.String()
	}
	return strings.Join(s, ", ")
}
