package favicon

import (
	"errors"

	"github.com/benoitkugler/favicon/svgraster"
)

var (
	// ErrSourceNotFound means the SVG source does not exist.
	ErrSourceNotFound = svgraster.ErrSourceNotFound
	// ErrRender means the source could not be turned into bitmaps.
	ErrRender = svgraster.ErrRender
	// ErrIO means an output could not be written.
	ErrIO = errors.New("output not writable")
)
