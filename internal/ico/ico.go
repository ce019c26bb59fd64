// Package ico writes and reads the multi-resolution favicon container.
package ico

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	goico "github.com/sergeymakinen/go-ico"
)

const maxEdge = 256

var (
	ErrNoFrames  = errors.New("ico: no frames")
	ErrFrameSize = errors.New("ico: frame must be square and between 1 and 256 pixels")
	ErrFormat    = errors.New("ico: invalid format")
)

// Encode writes frames to w as one icon, in the given order.
func Encode(w io.Writer, frames ...image.Image) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	for i, frame := range frames {
		b := frame.Bounds()
		if b.Dx() != b.Dy() || b.Dx() < 1 || b.Dx() > maxEdge {
			return fmt.Errorf("%w (frame %d is %dx%d)", ErrFrameSize, i, b.Dx(), b.Dy())
		}
	}
	if err := goico.EncodeAll(w, frames); err != nil {
		return fmt.Errorf("ico: encode: %w", err)
	}
	return nil
}

// DecodeAll returns every frame of the icon in data, in directory order.
func DecodeAll(data []byte) ([]image.Image, error) {
	frames, err := goico.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	return frames, nil
}
