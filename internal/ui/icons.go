package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawPlayIcon draws a play button (disc with a triangle) at (cx, cy).
func drawPlayIcon(dst *ebiten.Image, cx, cy, r float32, bg, fg color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r, bg, true)

	var path vector.Path
	path.MoveTo(cx-r*0.3, cy-r*0.45)
	path.LineTo(cx+r*0.5, cy)
	path.LineTo(cx-r*0.3, cy+r*0.45)
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := fg.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawCloseIcon draws an X at (cx, cy) with given radius.
func drawCloseIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r, cy-r, cx+r, cy+r, 2, clr, true)
	vector.StrokeLine(dst, cx-r, cy+r, cx+r, cy-r, 2, clr, true)
}

// drawArrowIcon draws a right-pointing arrow, marking tiles that open a page.
func drawArrowIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r, cy, cx+r, cy, 2, clr, true)
	vector.StrokeLine(dst, cx+r*0.35, cy-r*0.6, cx+r, cy, 2, clr, true)
	vector.StrokeLine(dst, cx+r*0.35, cy+r*0.6, cx+r, cy, 2, clr, true)
}

// drawLinkArrow draws a "↗" mark for links that leave the wall.
func drawLinkArrow(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r, cy+r, cx+r, cy-r, 1.5, clr, true)
	vector.StrokeLine(dst, cx-r*0.2, cy-r, cx+r, cy-r, 1.5, clr, true)
	vector.StrokeLine(dst, cx+r, cy-r, cx+r, cy+r*0.2, 1.5, clr, true)
}

// drawGearIcon draws a gear/settings icon at (cx, cy) with given radius.
func drawGearIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r*0.35, clr, true)
	teeth := 8
	for i := 0; i < teeth; i++ {
		angle := float64(i) * 2 * math.Pi / float64(teeth)
		tx := cx + r*0.75*float32(math.Cos(angle))
		ty := cy + r*0.75*float32(math.Sin(angle))
		vector.DrawFilledCircle(dst, tx, ty, r*0.25, clr, true)
	}
	vector.StrokeCircle(dst, cx, cy, r*0.55, 1.5, clr, true)
}

var whiteImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image)
}
