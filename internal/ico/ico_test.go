package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"testing"
)

func frame(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(size-1, size-1, color.NRGBA{B: 255, A: 255})
	return img
}

func TestEncodeDecodeAll(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, frame(16), frame(32), frame(256)); err != nil {
		t.Fatal(err)
	}

	frames, err := DecodeAll(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	wantSizes := []int{16, 32, 256}
	if len(frames) != len(wantSizes) {
		t.Fatalf("got %d frames, want %d", len(frames), len(wantSizes))
	}
	for i, f := range frames {
		if b := f.Bounds(); b.Dx() != wantSizes[i] || b.Dy() != wantSizes[i] {
			t.Errorf("frame %d: got %v, want %d", i, b, wantSizes[i])
		}
	}
	b := frames[1].Bounds()
	r, _, _, a := frames[1].At(b.Min.X, b.Min.Y).RGBA()
	if r != 0xFFFF || a != 0xFFFF {
		t.Errorf("frame 1 pixel (0,0) lost: r=%x a=%x", r, a)
	}
}

func TestEncodeHeaderBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, frame(16), frame(32)); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if len(b) < 6+2*16 {
		t.Fatalf("icon too short: %d bytes", len(b))
	}
	if got := binary.LittleEndian.Uint16(b[2:4]); got != 1 {
		t.Errorf("type = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint16(b[4:6]); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
	if b[6] != 16 || b[6+16] != 32 {
		t.Errorf("width bytes = %d, %d", b[6], b[6+16])
	}
}

func TestEncodeRejects(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf); !errors.Is(err, ErrNoFrames) {
		t.Errorf("no frames: got %v", err)
	}
	if err := Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 16, 8))); !errors.Is(err, ErrFrameSize) {
		t.Errorf("non-square: got %v", err)
	}
	if err := Encode(&buf, frame(257)); !errors.Is(err, ErrFrameSize) {
		t.Errorf("too large: got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("rejected frames should write nothing, got %d bytes", buf.Len())
	}
}

func TestDecodeRejects(t *testing.T) {
	if _, err := DecodeAll([]byte("not an icon")); !errors.Is(err, ErrFormat) {
		t.Errorf("garbage: got %v", err)
	}
	if _, err := DecodeAll(nil); !errors.Is(err, ErrFormat) {
		t.Errorf("empty: got %v", err)
	}
}
