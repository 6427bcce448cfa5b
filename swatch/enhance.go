package swatch

import "image"

// Brightness scales every channel by factor, interpolating from black.
func Brightness(img *image.RGBA, factor float32) *image.RGBA {
	return mapPixels(img, func(r, g, b uint8) (uint8, uint8, uint8) {
		return blend(0, r, factor), blend(0, g, factor), blend(0, b, factor)
	})
}

// ColorIntensity scales every pixel away from (factor > 1) or towards
// (factor < 1) its own grey level.
func ColorIntensity(img *image.RGBA, factor float32) *image.RGBA {
	return mapPixels(img, func(r, g, b uint8) (uint8, uint8, uint8) {
		l := luma(r, g, b)
		return blend(l, r, factor), blend(l, g, factor), blend(l, b, factor)
	})
}

// luma is the ITU-R 601-2 grey level in 16.16 fixed point, rounded.
func luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*19595 + uint32(g)*38470 + uint32(b)*7471 + 0x8000) >> 16)
}

// blend returns base + factor*(v-base), truncated and clamped to [0, 255].
// The product is rounded to float32 before the add so it is never fused.
func blend(base, v uint8, factor float32) uint8 {
	t := float32(base) + float32(factor*(float32(v)-float32(base)))
	switch {
	case t <= 0:
		return 0
	case t >= 255:
		return 255
	}
	return uint8(t)
}

func mapPixels(img *image.RGBA, f func(r, g, b uint8) (uint8, uint8, uint8)) *image.RGBA {
	bounds := img.Bounds()
	dest := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		src := img.Pix[img.PixOffset(bounds.Min.X, y):]
		dst := dest.Pix[dest.PixOffset(bounds.Min.X, y):]
		for i := 0; i < bounds.Dx()*4; i += 4 {
			dst[i], dst[i+1], dst[i+2] = f(src[i], src[i+1], src[i+2])
			dst[i+3] = 0xFF
		}
	}
	return dest
}
