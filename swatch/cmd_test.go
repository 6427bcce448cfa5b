package swatch

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"swatchgen/sample"
)

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 90, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 90; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 2), G: uint8(y * 5), B: uint8(255 - x), A: 0xFF})
		}
	}

	path := filepath.Join(dir, "input.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CLICmd
		wantErr error
	}{
		{name: "valid", cmd: CLICmd{Image: "in.png", Samples: 3}},
		{name: "empty image", cmd: CLICmd{Samples: 3}, wantErr: ErrInvalidArguments},
		{name: "zero samples", cmd: CLICmd{Image: "in.png"}, wantErr: sample.ErrSampleCount},
		{name: "negative samples", cmd: CLICmd{Image: "in.png", Samples: -1}, wantErr: sample.ErrSampleCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunDeterministic(t *testing.T) {
	in := writeInput(t, t.TempDir())

	for _, mode := range []int{0, 1} {
		first, second := t.TempDir(), t.TempDir()
		cmd := CLICmd{Image: in, Samples: 4, Mode: mode}
		if err := cmd.Run(discard, first); err != nil {
			t.Fatalf("Run(mode=%d) error = %v", mode, err)
		}
		if err := cmd.Run(discard, second); err != nil {
			t.Fatalf("Run(mode=%d) error = %v", mode, err)
		}

		for _, name := range []string{BaseFile, BrightFile, DarkFile} {
			a, err := os.ReadFile(filepath.Join(first, name))
			if err != nil {
				t.Fatalf("read %s: %v", name, err)
			}
			b, err := os.ReadFile(filepath.Join(second, name))
			if err != nil {
				t.Fatalf("read %s: %v", name, err)
			}
			if !bytes.Equal(a, b) {
				t.Errorf("mode %d: %s differs between runs", mode, name)
			}

			cfg, err := png.DecodeConfig(bytes.NewReader(a))
			if err != nil {
				t.Fatalf("decode %s: %v", name, err)
			}
			if cfg.Width != 256 || cfg.Height != 256 {
				t.Errorf("%s is %dx%d, want 256x256", name, cfg.Width, cfg.Height)
			}
		}
	}
}

func TestRunSamplesTopBar(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)

	cmd := CLICmd{Image: in, Samples: 3, Mode: 0}
	if err := cmd.Run(discard, dir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	f, err := os.Open(filepath.Join(dir, BaseFile))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	// width 90 in 3 cells samples x = 15, 45, 75 on row 15
	want := []color.RGBA{
		{R: 30, G: 75, B: 240, A: 0xFF},
		{R: 90, G: 75, B: 210, A: 0xFF},
		{R: 150, G: 75, B: 180, A: 0xFF},
	}
	// offsets are [0, 64, 128, 192, 255]
	for i, x := range []int{100, 150, 220} {
		if got := color.RGBAModel.Convert(img.At(x, 30)); got != want[i] {
			t.Errorf("top bar %d = %v, want %v", i, got, want[i])
		}
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)

	tests := []struct {
		name    string
		cmd     CLICmd
		outDir  string
		wantErr error
	}{
		{name: "missing image", cmd: CLICmd{Image: filepath.Join(dir, "nope.png"), Samples: 2}, outDir: dir, wantErr: sample.ErrDecode},
		{name: "zero samples", cmd: CLICmd{Image: in, Samples: 0}, outDir: dir, wantErr: sample.ErrSampleCount},
		{name: "more samples than columns", cmd: CLICmd{Image: in, Samples: 91}, outDir: dir, wantErr: sample.ErrSampleCount},
		{name: "unwritable output", cmd: CLICmd{Image: in, Samples: 2}, outDir: filepath.Join(dir, "missing"), wantErr: ErrWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(discard, tt.outDir); !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if _, err := os.Stat(filepath.Join(dir, BaseFile)); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("%s written despite failure", BaseFile)
			}
		})
	}
}
