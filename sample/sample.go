package sample

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

var (
	ErrDecode      = errors.New("image decode failure")
	ErrConversion  = errors.New("image RGB conversion failure")
	ErrSampleCount = errors.New("invalid sample count")
)

// Colors holds sampled swatches ordered left to right. Alpha is always opaque.
type Colors []color.RGBA

// Labels returns the "#rrggbb" label of every swatch.
func (c Colors) Labels() []string {
	labels := make([]string, len(c))
	for i, col := range c {
		cf, _ := colorful.MakeColor(col)
		labels[i] = cf.Hex()
	}
	return labels
}

// Load decodes the image at path and converts it to an opaque RGB raster.
func Load(logger *slog.Logger, path string) (*image.RGBA, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: image path cannot be empty", ErrDecode)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot stat %q: %w", ErrDecode, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %q is a directory", ErrDecode, path)
	}

	imgFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open %q: %w", ErrDecode, path, err)
	}
	defer func() {
		if closeErr := imgFile.Close(); closeErr != nil {
			logger.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("%w: could not decode %q: %w", ErrDecode, path, err)
	}

	bounds := img.Bounds()
	logger.Info("loaded image", "file", path, "format", imgType,
		"width", bounds.Dx(), "height", bounds.Dy())

	return ToRGB(img)
}

// ToRGB copies img into a zero-origin opaque raster, dropping alpha from the
// non-premultiplied colour of every pixel.
func ToRGB(img image.Image) (*image.RGBA, error) {
	bounds := img.Bounds()
	dest := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.At(x, y)
			if c == nil {
				return nil, fmt.Errorf("%w: no colour at (%d, %d)", ErrConversion, x, y)
			}
			nc := color.NRGBAModel.Convert(c).(color.NRGBA)
			dest.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.RGBA{R: nc.R, G: nc.G, B: nc.B, A: 0xFF})
		}
	}

	return dest, nil
}

// Extract picks n colours along the vertical midline of img: the image is cut
// into n equal columns and the pixel at the centre of each is taken.
func Extract(logger *slog.Logger, img *image.RGBA, n int) (Colors, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	switch {
	case n <= 0:
		return nil, fmt.Errorf("%w: %d, must be positive", ErrSampleCount, n)
	case n > width:
		return nil, fmt.Errorf("%w: %d exceeds image width %d", ErrSampleCount, n, width)
	}

	cellWidth := width / n
	y := bounds.Min.Y + height/2

	colors := make(Colors, n)
	for i := 0; i < n; i++ {
		x := bounds.Min.X + cellWidth/2 + i*cellWidth
		colors[i] = img.RGBAAt(x, y)
	}

	for i, label := range colors.Labels() {
		logger.Info("sample", "index", i, "x", bounds.Min.X+cellWidth/2+i*cellWidth, "y", y, "color", label)
	}

	return colors, nil
}
