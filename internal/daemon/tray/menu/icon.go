package menu

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// IconSize is the edge length of the tray icon in pixels.
const IconSize = 22

// Icon is the PNG-encoded tray icon.
var Icon = renderIcon(color.NRGBA{R: 0xFF, G: 0x8C, B: 0x1A, A: 0xFF})

// renderIcon draws a filled disc in c on a transparent square and encodes it as PNG.
func renderIcon(c color.NRGBA) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, IconSize, IconSize))
	center := float64(IconSize-1) / 2
	radius := float64(IconSize)/2 - 1

	for y := 0; y < IconSize; y++ {
		for x := 0; x < IconSize; x++ {
			dx, dy := float64(x)-center, float64(y)-center
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(x, y, c)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}
