package main

import (
	"log/slog"
	"os"

	"swatchgen/swatch"

	"github.com/alecthomas/kong"
	"golang.org/x/term"
)

func newLogger() *slog.Logger {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

func main() {
	logger := newLogger()
	slog.SetDefault(logger)

	var cli swatch.CLICmd
	kctx := kong.Parse(&cli,
		kong.Name("swatchgen"),
		kong.Description("Build a 256x256 colour swatch palette from colours sampled off an image."),
		kong.UsageOnError(),
	)

	if err := cli.Run(logger, "."); err != nil {
		logger.Error("palette generation failed", "error", err)
		kctx.Exit(1)
	}
}
