package icon

import (
	"image"
	"image/color"
)

func hasAlpha(bgra []byte) bool {
	for i := 3; i < len(bgra); i += 4 {
		if bgra[i] != 0 {
			return true
		}
	}
	return false
}

// bgraToImage converts top-down BGRA rows to an image. When the pixels
// carry no alpha, mask decides it: white mask pixels are transparent and
// black ones opaque. Without a mask every pixel is opaque.
func bgraToImage(bgra, mask []byte, width, height int) *image.NRGBA {
	useAlpha := hasAlpha(bgra)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			a := bgra[i+3]
			if !useAlpha {
				a = 0xff
				if len(mask) >= i+4 && mask[i] != 0 {
					a = 0
				}
			}
			img.SetNRGBA(x, y, color.NRGBA{R: bgra[i+2], G: bgra[i+1], B: bgra[i], A: a})
		}
	}
	return img
}
