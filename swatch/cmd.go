package swatch

import (
	"fmt"
	"log/slog"

	"swatchgen/grid"
	"swatchgen/sample"
)

type CLICmd struct {
	Image   string `arg:"" help:"Image to sample colours from"`
	Samples int    `arg:"" help:"Number of colours to sample along the horizontal midline"`
	Mode    int    `arg:"" help:"0 derives bright/dark swatches from brightness, any other value from colour intensity"`
}

func (c *CLICmd) Validate() error {
	if c.Image == "" {
		return fmt.Errorf("%w: image path cannot be empty", ErrInvalidArguments)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("%w: %d, must be positive", sample.ErrSampleCount, c.Samples)
	}
	return nil
}

// Run samples the image, renders the palette and writes it into outDir.
func (c *CLICmd) Run(logger *slog.Logger, outDir string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	mode := ModeFromFlag(c.Mode)
	logger = logger.With("file", c.Image)
	logger.Info("running", "samples", c.Samples, "mode", mode.String())

	img, err := sample.Load(logger, c.Image)
	if err != nil {
		return err
	}

	colors, err := sample.Extract(logger, img, c.Samples)
	if err != nil {
		return err
	}

	pal, err := Render(colors, grid.Offsets(c.Samples), mode)
	if err != nil {
		return err
	}
	logger.Info("rendered", "width", grid.Size, "height", grid.Size)

	return Save(logger, outDir, pal)
}
