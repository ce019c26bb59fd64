package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/dungoboogies/la-traffic-scheduler/internal/ico"
	"github.com/dungoboogies/la-traffic-scheduler/internal/resample"
)

const (
	filePerm = os.FileMode(0o644)
	dirPerm  = os.FileMode(0o755)
)

// Exporter writes the targets of a plan from one master bitmap.
type Exporter struct {
	Filter     resample.Filter
	CreateDirs bool
	// Out receives one "Created <label>" line per written file.
	Out    io.Writer
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	frames map[int]image.Image
}

// New returns an exporter configured from cfg that reports to out.
func New(cfg Config, out io.Writer) *Exporter {
	return &Exporter{Filter: cfg.Filter, CreateDirs: cfg.CreateDirs, Out: out}
}

// Run writes every target in order. It stops at the first failure; files
// written before it are left in place.
func (e *Exporter) Run(ctx context.Context, master image.Image, plan Plan) error {
	if master == nil {
		return errors.New("export: nil master image")
	}
	e.frames = map[int]image.Image{master.Bounds().Dx(): master}
	defer func() { e.frames = nil }()

	for _, t := range plan {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := e.encode(master, t)
		if err != nil {
			e.errorf("encode %s: %v", t.Label, err)
			return fmt.Errorf("encode %s: %w", t.Label, err)
		}
		if err := e.write(t.Path, data); err != nil {
			e.errorf("write %s: %v", t.Path, err)
			return fmt.Errorf("write %s: %w", t.Path, err)
		}
		e.infof("wrote %s (%s %v, %d bytes)", t.Path, t.Format, t.Sizes, len(data))
		if e.Out != nil {
			fmt.Fprintf(e.Out, "Created %s\n", t.Label)
		}
	}
	return nil
}

func (e *Exporter) encode(master image.Image, t Target) ([]byte, error) {
	if len(t.Sizes) == 0 {
		return nil, errors.New("target has no sizes")
	}
	var buf bytes.Buffer
	switch t.Format {
	case PNG:
		if len(t.Sizes) != 1 {
			return nil, fmt.Errorf("png target wants one size, got %v", t.Sizes)
		}
		if err := png.Encode(&buf, e.frame(master, t.Sizes[0])); err != nil {
			return nil, err
		}
	case ICO:
		frames := make([]image.Image, len(t.Sizes))
		for i, size := range t.Sizes {
			frames[i] = e.frame(master, size)
		}
		if err := ico.Encode(&buf, frames...); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %d", int(t.Format))
	}
	return buf.Bytes(), nil
}

// frame returns the master downscaled to size, computing each size once.
func (e *Exporter) frame(master image.Image, size int) image.Image {
	if img, ok := e.frames[size]; ok {
		return img
	}
	img := resample.Downscale(master, size, e.Filter)
	e.frames[size] = img
	e.infof("downscaled %d -> %d (%s)", master.Bounds().Dx(), size, e.Filter)
	return img
}

func (e *Exporter) write(path string, data []byte) error {
	if e.CreateDirs {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, dirPerm); err != nil {
				return err
			}
		}
	}
	return os.WriteFile(path, data, filePerm)
}

func (e *Exporter) infof(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Infof("export", format, args...)
	}
}

func (e *Exporter) errorf(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Errorf("export", format, args...)
	}
}
