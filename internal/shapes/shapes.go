// Package shapes turns a classification result into an idealised outline.
package shapes

import (
	"math"

	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/gogpu/gg"
)

// MaxSide is the side length, in canvas pixels, of an outline at full scale.
const MaxSide = 250

// New creates an outline for a recognised shape at scale 0. Unknown has no outline.
func New(kind models.Shape, center models.Point) (models.Outline, bool) {
	switch kind {
	case models.Circle, models.Rectangle, models.Triangle:
		return models.Outline{Kind: kind, Center: center}, true
	default:
		return models.Outline{}, false
	}
}

// Side is the outline's side length (diameter for a circle).
func Side(o models.Outline) int {
	if o.Scale == 0 {
		return 0
	}
	return MaxSide * o.Scale / 100
}

// ScaleForDistance converts the user's distance from the sensor into a
// 0..100 scale, saturating at maxDepth.
func ScaleForDistance(distance, maxDepth float64) int {
	if !(maxDepth > 0) || !(distance > 0) {
		return 0
	}
	scale := distance * 100 / maxDepth
	if scale >= 100 {
		return 100
	}
	return int(scale)
}

// GeometryFor builds the outline path. An Unknown outline yields an empty path.
func GeometryFor(o models.Outline) *gg.Path {
	path := gg.NewPath()
	side := float64(Side(o))
	cx, cy := o.Center.X, o.Center.Y

	switch o.Kind {
	case models.Rectangle:
		path.Rectangle(cx-side/2, cy-side/2, side, side)
	case models.Triangle:
		h := math.Sqrt(side*side - (side/2)*(side/2))
		apex := gg.Pt(cx, cy-2*h/3)
		path.MoveTo(apex.X, apex.Y)
		path.LineTo(apex.X+side/2, apex.Y+h)
		path.LineTo(apex.X-side/2, apex.Y+h)
		path.Close()
	case models.Circle:
		path.Circle(cx, cy, side/2)
	}

	return path
}
