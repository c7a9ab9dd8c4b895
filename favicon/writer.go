package favicon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/benoitkugler/favicon/ico"
	"github.com/k1LoW/errors"
)

// WriteICO stores imgs, smallest first, as a multi-size icon at path,
// replacing any existing file.
func WriteICO(path string, imgs []image.Image) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	var buf bytes.Buffer
	if err := ico.Encode(&buf, imgs); err != nil {
		return fmt.Errorf("%w: failed to encode icon %s: %w", ErrRender, path, err)
	}
	return writeFile(path, buf.Bytes())
}

// WritePNG stores img as a PNG file at path, replacing any existing file.
func WritePNG(path string, img image.Image) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("%w: failed to encode png %s: %w", ErrRender, path, err)
	}
	return writeFile(path, buf.Bytes())
}

// writeFile replaces path with b. Callers encode first, so an existing
// output is only touched once its new content is complete.
func writeFile(path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrIO, path, err)
	}
	return nil
}
