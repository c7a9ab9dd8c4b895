// Package ico writes and inspects Windows icon containers holding
// several PNG compressed images, as used for favicon.ico files.
package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

// ErrFormat is returned when icon data is malformed or unsupported.
var ErrFormat = errors.New("ico: invalid format")

// MaxSize is the largest width or height an icon entry can have.
const MaxSize = 256

const (
	typeIcon   = 1
	headerLen  = 6
	entryLen   = 16
	bitCount   = 32
	colorPlane = 1
)

// header is the ICONDIR structure.
type header struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

// dirEntry is the ICONDIRENTRY structure. Width and Height of 0 mean 256.
type dirEntry struct {
	Width, Height uint8
	Colors        uint8
	Reserved      uint8
	Planes        uint16
	BitCount      uint16
	Size          uint32
	Offset        uint32
}

// Entry describes one image of an icon file.
type Entry struct {
	Width, Height int
	Planes        int
	BitCount      int
	Size          int // bytes of image data
	Offset        int // from the start of the file
}

// Encode writes imgs as a single icon file, in the given order.
// Each image is stored PNG compressed with 32 bits per pixel.
func Encode(w io.Writer, imgs []image.Image) error {
	if len(imgs) == 0 {
		return fmt.Errorf("%w: no images", ErrFormat)
	}
	if len(imgs) > 0xffff {
		return fmt.Errorf("%w: too many images (%d)", ErrFormat, len(imgs))
	}
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	payloads := make([][]byte, len(imgs))
	entries := make([]dirEntry, len(imgs))
	offset := headerLen + entryLen*len(imgs)
	for i, img := range imgs {
		b := img.Bounds()
		if b.Dx() < 1 || b.Dy() < 1 || b.Dx() > MaxSize || b.Dy() > MaxSize {
			return fmt.Errorf("%w: image %d is %dx%d, sides must be within 1..%d", ErrFormat, i, b.Dx(), b.Dy(), MaxSize)
		}
		var buf bytes.Buffer
		if err := enc.Encode(&buf, img); err != nil {
			return fmt.Errorf("failed to encode image %d: %w", i, err)
		}
		payloads[i] = buf.Bytes()
		entries[i] = dirEntry{
			Width:    uint8(b.Dx()), // 256 wraps to 0
			Height:   uint8(b.Dy()),
			Planes:   colorPlane,
			BitCount: bitCount,
			Size:     uint32(buf.Len()),
			Offset:   uint32(offset),
		}
		offset += buf.Len()
	}

	if err := binary.Write(w, binary.LittleEndian, header{Type: typeIcon, Count: uint16(len(imgs))}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, entries); err != nil {
		return err
	}
	for _, p := range payloads {
		if _, err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}

// ReadDir reads the icon directory at the start of r.
// The image data itself is not read.
func ReadDir(r io.Reader) ([]Entry, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: short header: %w", ErrFormat, err)
	}
	if h.Reserved != 0 || h.Type != typeIcon {
		return nil, fmt.Errorf("%w: not an icon file", ErrFormat)
	}
	raw := make([]dirEntry, h.Count)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, fmt.Errorf("%w: short directory: %w", ErrFormat, err)
	}
	entries := make([]Entry, len(raw))
	for i, e := range raw {
		entries[i] = Entry{
			Width:    side(e.Width),
			Height:   side(e.Height),
			Planes:   int(e.Planes),
			BitCount: int(e.BitCount),
			Size:     int(e.Size),
			Offset:   int(e.Offset),
		}
	}
	return entries, nil
}

func side(v uint8) int {
	if v == 0 {
		return MaxSize
	}
	return int(v)
}
