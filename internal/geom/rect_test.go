package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLerpEndpoints(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 100, H: 200}
	b := Rect{X: 50, Y: 20, W: 300, H: 400}
	require.Equal(t, a, Lerp(a, b, 0))
	require.Equal(t, b, Lerp(a, b, 1))
	require.Equal(t, Rect{X: 25, Y: 10, W: 200, H: 300}, Lerp(a, b, 0.5))
}

func TestIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	require.Equal(t, Rect{X: 5, Y: 5, W: 5, H: 5}, a.Intersect(Rect{X: 5, Y: 5, W: 10, H: 10}))
	require.True(t, a.Intersect(Rect{X: 20, Y: 0, W: 5, H: 5}).Empty())
}

func TestScaleAboutCenter(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 50}.ScaleAboutCenter(2)
	require.Equal(t, Rect{X: -40, Y: -15, W: 200, H: 100}, r)
}
