package favicon

import (
	"fmt"

	"github.com/benoitkugler/favicon/ico"
	"github.com/benoitkugler/favicon/resample"
)

// Output is a standalone PNG written by the generator.
type Output struct {
	Size resample.Size
	Path string
}

// Plan describes what a generator reads and writes.
// Relative paths are resolved against the generator root.
type Plan struct {
	Source   string
	BaseSize int
	ICOPath  string
	ICOSizes []resample.Size // smallest first
	PNGs     []Output
}

// DefaultPlan is the favicon set of a web app's public directory.
func DefaultPlan() Plan {
	return Plan{
		Source:   "public/favicon.svg",
		BaseSize: 256,
		ICOPath:  "public/favicon.ico",
		ICOSizes: []resample.Size{
			resample.Square(16),
			resample.Square(32),
			resample.Square(48),
			resample.Square(64),
		},
		PNGs: []Output{
			{Size: resample.Square(192), Path: "public/logo192.png"},
			{Size: resample.Square(512), Path: "public/logo512.png"},
		},
	}
}

// Validate reports the first inconsistency of p, as an ErrRender error.
func (p Plan) Validate() error {
	if p.Source == "" {
		return fmt.Errorf("%w: no source path", ErrRender)
	}
	if p.BaseSize <= 0 {
		return fmt.Errorf("%w: invalid base size %d", ErrRender, p.BaseSize)
	}
	if p.ICOPath == "" || len(p.ICOSizes) == 0 {
		return fmt.Errorf("%w: no icon output", ErrRender)
	}
	for _, s := range p.ICOSizes {
		if !s.Valid() || s.W > ico.MaxSize || s.H > ico.MaxSize {
			return fmt.Errorf("%w: invalid icon size %s", ErrRender, s)
		}
	}
	for _, o := range p.PNGs {
		if o.Path == "" || !o.Size.Valid() {
			return fmt.Errorf("%w: invalid png output %q (%s)", ErrRender, o.Path, o.Size)
		}
	}
	return nil
}
