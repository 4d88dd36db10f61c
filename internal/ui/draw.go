package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/mediawall/internal/geom"
)

// ButtonRect is a clickable area in screen coordinates.
type ButtonRect struct {
	X, Y, W, H float64
}

func (b ButtonRect) Contains(px, py int) bool {
	return b.W > 0 && PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// FillRect fills r with clr.
func FillRect(dst *ebiten.Image, r geom.Rect, clr color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// StrokeRect outlines r just outside its edges.
func StrokeRect(dst *ebiten.Image, r geom.Rect, width float64, clr color.Color) {
	o := r.Inset(-width/2, -width/2)
	vector.StrokeRect(dst, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), float32(width), clr, false)
}

// FillTint covers the whole image with black at the given opacity.
func FillTint(dst *ebiten.Image, opacity float64) {
	if opacity <= 0 {
		return
	}
	a := uint8(min(opacity, 1) * 0xFF)
	b := dst.Bounds()
	vector.DrawFilledRect(dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()),
		color.RGBA{A: a}, false)
}

// DrawImageCover draws img scaled to cover r, cropping the overflow.
func DrawImageCover(dst, img *ebiten.Image, r geom.Rect) {
	if img == nil || r.Empty() {
		return
	}
	bounds := img.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	scale := max(r.W/iw, r.H/ih)

	// Crop in source pixels so the scaled image exactly fills r.
	cw, ch := r.W/scale, r.H/scale
	cx := bounds.Min.X + int((iw-cw)/2)
	cy := bounds.Min.Y + int((ih-ch)/2)
	sub := img.SubImage(image.Rect(cx, cy, cx+int(cw), cy+int(ch))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(sub, op)
}

// FillVerticalGradient fills r with clr, fading from topAlpha at the top edge
// to bottomAlpha at the bottom edge.
func FillVerticalGradient(dst *ebiten.Image, r geom.Rect, clr color.Color, topAlpha, bottomAlpha float64) {
	if r.Empty() || (topAlpha <= 0 && bottomAlpha <= 0) {
		return
	}
	cr, cg, cb, _ := clr.RGBA()
	x0, y0, x1, y1 := float32(r.X), float32(r.Y), float32(r.Right()), float32(r.Bottom())
	vs := []ebiten.Vertex{
		{DstX: x0, DstY: y0}, {DstX: x1, DstY: y0},
		{DstX: x0, DstY: y1}, {DstX: x1, DstY: y1},
	}
	for i := range vs {
		a := float32(topAlpha)
		if i >= 2 {
			a = float32(bottomAlpha)
		}
		// Vertex colors are premultiplied.
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(cr) / 0xffff * a
		vs[i].ColorG = float32(cg) / 0xffff * a
		vs[i].ColorB = float32(cb) / 0xffff * a
		vs[i].ColorA = a
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2, 1, 3, 2}, whitePixel(), nil)
}

// DrawCaptionBand darkens the bottom of r and returns the band rect.
func DrawCaptionBand(dst *ebiten.Image, r geom.Rect, h float64) geom.Rect {
	band := geom.Rect{X: r.X, Y: r.Bottom() - h, W: r.W, H: h}
	FillRect(dst, band, color.RGBA{A: 0x88})
	return band
}
