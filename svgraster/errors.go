package svgraster

import "errors"

var (
	// ErrSourceNotFound is returned when the SVG file does not exist
	// or cannot be opened.
	ErrSourceNotFound = errors.New("svg source not found")
	// ErrRender is returned when the SVG content cannot be rasterized.
	ErrRender = errors.New("svg render failed")
)
