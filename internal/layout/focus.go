package layout

import (
	"math"

	"github.com/depeter/mediawall/internal/geom"
)

// Neighbor returns the index of the rect nearest to rects[cur] in direction
// (dx, dy), one of the four unit steps, or cur if there is none. Distance
// along the direction counts less than distance across it, so moving down
// from the middle column stays in the middle column.
func Neighbor(rects []geom.Rect, cur, dx, dy int) int {
	if cur < 0 || cur >= len(rects) {
		if len(rects) == 0 {
			return -1
		}
		return 0
	}
	cx, cy := rects[cur].Center()
	best, bestScore := cur, math.Inf(1)
	for i, r := range rects {
		if i == cur {
			continue
		}
		x, y := r.Center()
		along := (x-cx)*float64(dx) + (y-cy)*float64(dy)
		if along <= 1 {
			continue
		}
		across := math.Abs((x-cx)*float64(dy)) + math.Abs((y-cy)*float64(dx))
		if score := along + 2*across; score < bestScore {
			best, bestScore = i, score
		}
	}
	return best
}
