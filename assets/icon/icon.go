package icon

import (
	"image"
	"image/color"
)

// Colors from the sample wall placeholders
var (
	background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tileDark   = color.RGBA{R: 0x24, G: 0x21, B: 0x1C, A: 0xFF}
	tileGrey   = color.RGBA{R: 0x60, G: 0x64, B: 0x67, A: 0xFF}
	tileMauve  = color.RGBA{R: 0xB7, G: 0xAA, B: 0xB4, A: 0xFF}
	tileIndigo = color.RGBA{R: 0x6A, G: 0x69, B: 0x89, A: 0xFF}
	shadow     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x40}
	playWhite  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a three-column wall of tiles with the middle one lifted and
// carrying a play mark.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedRect(img, 0, 0, s, s, s*0.18, background)

	pad := s * 0.12
	gap := s * 0.06
	colW := (s - 2*pad - 2*gap) / 3
	tileH := s - 2*pad
	r := s * 0.05

	fillRoundedRect(img, pad, pad, colW, tileH, r, tileDark)
	fillRoundedRect(img, pad+2*(colW+gap), pad, colW, tileH, r, tileGrey)

	// Lifted middle tile: scaled about its center, with a drop shadow.
	mx := pad + colW + gap
	lift := s * 0.04
	fillRoundedRect(img, mx-lift+s*0.02, pad-lift+s*0.04, colW+2*lift, tileH+2*lift, r, shadow)
	fillRoundedRect(img, mx-lift, pad-lift, colW+2*lift, tileH+2*lift, r, tileIndigo)
	fillRoundedRect(img, mx-lift, pad+tileH*0.7, colW+2*lift, tileH*0.3+lift, r, tileMauve)

	cx := mx + colW/2
	cy := pad + tileH*0.4
	t := colW * 0.3
	fillTriangle(img, cx-t*0.6, cy-t, cx+t, cy, cx-t*0.6, cy+t, playWhite)

	return img
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	bounds := img.Bounds()
	for y := max(int(yf), 0); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := max(int(xf), 0); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			if insideRounded(float64(x)+0.5, float64(y)+0.5, xf, yf, wf, hf, rf) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// insideRounded reports whether (px, py) falls inside the rounded rect.
func insideRounded(px, py, x, y, w, h, r float64) bool {
	if px < x || py < y || px > x+w || py > y+h {
		return false
	}
	// Distance to the nearest corner circle center, if in a corner zone.
	cx := min(max(px, x+r), x+w-r)
	cy := min(max(py, y+r), y+h-r)
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}

func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 float64, c color.Color) {
	bounds := img.Bounds()
	minX, maxX := int(min(x0, x1, x2)), int(max(x0, x1, x2))+1
	minY, maxY := int(min(y0, y1, y2)), int(max(y0, y1, y2))+1
	edge := func(ax, ay, bx, by, px, py float64) float64 {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	for y := max(minY, 0); y <= maxY && y < bounds.Max.Y; y++ {
		for x := max(minX, 0); x <= maxX && x < bounds.Max.X; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			e0 := edge(x0, y0, x1, y1, px, py)
			e1 := edge(x1, y1, x2, y2, px, py)
			e2 := edge(x2, y2, x0, y0, px, py)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	src := color.NRGBAModel.Convert(c).(color.NRGBA)
	if src.A == 0 {
		return
	}
	if src.A == 0xFF {
		img.SetRGBA(x, y, color.RGBA{R: src.R, G: src.G, B: src.B, A: 0xFF})
		return
	}

	dst := img.RGBAAt(x, y)
	a := uint32(src.A)
	inv := 0xFF - a
	img.SetRGBA(x, y, color.RGBA{
		R: uint8((uint32(src.R)*a + uint32(dst.R)*inv) / 0xFF),
		G: uint8((uint32(src.G)*a + uint32(dst.G)*inv) / 0xFF),
		B: uint8((uint32(src.B)*a + uint32(dst.B)*inv) / 0xFF),
		A: max(dst.A, src.A),
	})
}
