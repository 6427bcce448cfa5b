package swatch

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const (
	BaseFile   = "palette.png"
	BrightFile = "paletteBright.png"
	DarkFile   = "paletteDark.png"
)

type output struct {
	name string
	img  image.Image
	tmp  string
}

// Save writes the three palette images into dir. Either all of them end up
// in place or none of them do.
func Save(logger *slog.Logger, dir string, pal *Palette) error {
	outputs := []*output{
		{name: BaseFile, img: pal.Base},
		{name: BrightFile, img: pal.Bright},
		{name: DarkFile, img: pal.Dark},
	}

	cleanup := func() {
		for _, out := range outputs {
			if out.tmp == "" {
				continue
			}
			if err := os.Remove(out.tmp); err != nil {
				logger.Error("could not remove temporary file", "name", out.tmp, "error", err)
			}
		}
	}

	for _, out := range outputs {
		tmp, err := writeTemp(logger, dir, out.name, out.img)
		if err != nil {
			cleanup()
			return err
		}
		out.tmp = tmp
	}

	for i, out := range outputs {
		dest := filepath.Join(dir, out.name)
		if err := os.Rename(out.tmp, dest); err != nil {
			cleanup()
			for _, done := range outputs[:i] {
				if rmErr := os.Remove(filepath.Join(dir, done.name)); rmErr != nil {
					logger.Error("could not remove partial output", "name", done.name, "error", rmErr)
				}
			}
			return fmt.Errorf("%w: could not rename destination file %q: %w", ErrWrite, dest, err)
		}
		out.tmp = ""
	}

	logger.Info("saved", "dir", dir, "files", []string{BaseFile, BrightFile, DarkFile})
	return nil
}

// writeTemp encodes img as PNG into a new temporary file in dir and returns
// its path. The file is removed again on failure.
func writeTemp(logger *slog.Logger, dir, name string, img image.Image) (tmpName string, err error) {
	outFile, err := os.CreateTemp(dir, name+".*")
	if err != nil {
		return "", fmt.Errorf("%w: could not create temporary destination %q: %w", ErrWrite, name, err)
	}
	tmpName = outFile.Name()
	defer func() {
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("%w: could not close temporary destination %q: %w", ErrWrite, name, defErr)
		}
		if err != nil {
			if rmErr := os.Remove(tmpName); rmErr != nil {
				logger.Error("could not remove temporary file", "name", tmpName, "error", rmErr)
			}
			tmpName = ""
		}
	}()

	enc := png.Encoder{
		CompressionLevel: png.BestCompression,
		BufferPool:       pngPool,
	}
	if err = enc.Encode(outFile, img); err != nil {
		return tmpName, fmt.Errorf("%w: could not encode PNG destination %q: %w", ErrWrite, name, err)
	}

	if err = outFile.Sync(); err != nil {
		return tmpName, fmt.Errorf("%w: could not flush temporary destination %q: %w", ErrWrite, name, err)
	}

	return tmpName, nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
