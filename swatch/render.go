package swatch

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"swatchgen/grid"

	"golang.org/x/image/draw"
)

var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrWrite            = errors.New("image write failure")
)

// Mode selects how the bright and dark variants are derived.
type Mode int

const (
	ModeBrightness Mode = iota
	ModeColorIntensity
)

// ModeFromFlag maps the numeric command line flag: 0 is brightness, anything
// else is colour intensity.
func ModeFromFlag(flag int) Mode {
	if flag == 0 {
		return ModeBrightness
	}
	return ModeColorIntensity
}

func (m Mode) String() string {
	if m == ModeBrightness {
		return "brightness"
	}
	return "color-intensity"
}

// factors returns the bright and dark enhancement factors of the mode.
func (m Mode) factors() (float32, float32) {
	if m == ModeBrightness {
		return 1.3, 0.7
	}
	return 1.5, 0.5
}

func (m Mode) enhance(img *image.RGBA, factor float32) *image.RGBA {
	if m == ModeBrightness {
		return Brightness(img, factor)
	}
	return ColorIntensity(img, factor)
}

// Palette is the outcome of a render. Bright and Dark are global transforms
// of the mix grid; only Base carries the bright/dark overlay.
type Palette struct {
	Base   *image.RGBA
	Bright *image.RGBA
	Dark   *image.RGBA
}

var black = color.RGBA{A: 0xFF}

// Render paints the swatch canvas for colors on the boundaries in offsets,
// which must hold len(colors)+2 entries.
func Render(colors []color.RGBA, offsets []int, mode Mode) (*Palette, error) {
	n := len(colors)
	if n == 0 {
		return nil, fmt.Errorf("%w: no colours to render", ErrInvalidArguments)
	}
	if len(offsets) != n+2 {
		return nil, fmt.Errorf("%w: %d offsets for %d colours, want %d", ErrInvalidArguments, len(offsets), n, n+2)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, grid.Size, grid.Size))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(black), image.Point{}, draw.Src)

	// top and left bars, leaving the first cell of each axis as the corner
	for i, c := range colors {
		fillRect(canvas, offsets[i+1], offsets[0], offsets[i+2], offsets[1], c)
	}
	for i, c := range colors {
		fillRect(canvas, offsets[0], offsets[i+1], offsets[1], offsets[i+2], c)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			fillRect(canvas, offsets[i+1], offsets[j+1], offsets[i+2], offsets[j+2], Mix(colors[i], colors[j]))
		}
	}

	brightFactor, darkFactor := mode.factors()
	pal := &Palette{
		Base:   canvas,
		Bright: mode.enhance(canvas, brightFactor),
		Dark:   mode.enhance(canvas, darkFactor),
	}

	// lower triangle: dark on the left half, bright on the right half
	for i := 0; i < n+1; i++ {
		for j := i + 1; j <= n; j++ {
			midX, midY := grid.Mid(offsets, i), grid.Mid(offsets, j)
			dark := pal.Dark.RGBAAt(midX, midY)
			bright := pal.Bright.RGBAAt(midX, midY)

			fillRect(canvas, offsets[i], offsets[j], midX, offsets[j+1], dark)
			fillRect(canvas, midX, offsets[j], offsets[i+1]-1, offsets[j+1], bright)
		}
	}

	return pal, nil
}

// Mix averages two colours channel by channel, truncating.
func Mix(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
		A: 0xFF,
	}
}

// fillRect paints the rectangle with corners (x0, y0) and (x1, y1), both
// inclusive. Inverted rectangles paint nothing.
func fillRect(dst *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	r := image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1+1, y1+1)}
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
