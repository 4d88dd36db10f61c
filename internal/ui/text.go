package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

// LineHeight is the vertical advance of one wrapped line.
func LineHeight(size float64) float64 {
	return size * LineHeightFactor
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	face := GetFace(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	face := GetFace(size)
	w, h := text.Measure(txt, face, 0)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	face := GetFace(size)
	return text.Measure(txt, face, 0)
}

// WrapText splits txt into lines no wider than maxWidth.
func WrapText(txt string, maxWidth, size float64) []string {
	face := GetFace(size)
	words := strings.Fields(txt)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		test := line + " " + word
		w, _ := text.Measure(test, face, 0)
		if w > maxWidth {
			lines = append(lines, line)
			line = word
		} else {
			line = test
		}
	}
	return append(lines, line)
}

func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth float64, size float64, clr color.Color) float64 {
	lines := WrapText(txt, maxWidth, size)
	cy := y
	for _, line := range lines {
		DrawText(dst, line, x, cy, size, clr)
		cy += LineHeight(size)
	}
	return cy - y
}

func truncateText(s string, maxWidth float64, fontSize float64) string {
	w, _ := MeasureText(s, fontSize)
	if w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		candidate := string(runes[:i]) + "…"
		w, _ = MeasureText(candidate, fontSize)
		if w <= maxWidth {
			return candidate
		}
	}
	return "…"
}
