package stroke

import (
	"math"
	"slices"

	"github.com/ThatOtherAndrew/airshape/internal/models"
)

// Extent is the side of the normalised frame that strokes and templates share.
const Extent = 100.

const (
	circlePoints = 36
	circleRadius = Extent / 2
	// The circle is swept with 6.28 standing in for 2π, so the last point
	// stops a little short of closing the loop.
	circleTurn = 6.28
	edgeSteps  = 10
)

// Template is a fixed reference point set in the normalised frame.
type Template struct {
	name   string
	shape  models.Shape
	points []models.Point
}

func (t Template) Name() string { return t.name }

func (t Template) Shape() models.Shape { return t.shape }

func (t Template) Len() int { return len(t.points) }

// Points returns a copy of the template's points.
func (t Template) Points() []models.Point {
	return slices.Clone(t.points)
}

// Library holds the circle, square and triangle templates. It is built once
// and never mutated, so it can be shared between goroutines.
type Library struct {
	templates []Template
}

func NewLibrary() *Library {
	return &Library{
		templates: []Template{
			circleTemplate(),
			squareTemplate(),
			triangleTemplate(),
		},
	}
}

// Templates returns the templates in comparison order: circle, square, triangle.
func (l *Library) Templates() []Template {
	return slices.Clone(l.templates)
}

func (l *Library) Template(name string) (Template, bool) {
	for _, t := range l.templates {
		if t.name == name {
			return t, true
		}
	}
	return Template{}, false
}

func circleTemplate() Template {
	points := make([]models.Point, 0, circlePoints)
	for i := range circlePoints {
		theta := float64(i*10) * circleTurn / 360
		points = append(points, models.Point{
			X: circleRadius + circleRadius*math.Cos(theta),
			Y: circleRadius + circleRadius*math.Sin(theta),
		})
	}
	return Template{name: "circle", shape: models.Circle, points: points}
}

func squareTemplate() Template {
	points := []models.Point{
		{X: 0, Y: 0},
		{X: Extent, Y: Extent},
		{X: 0, Y: Extent},
		{X: Extent, Y: 0},
	}
	for i := 1; i < edgeSteps; i++ {
		v := float64(i * 10)
		points = append(points,
			models.Point{X: 0, Y: v},      // left
			models.Point{X: Extent, Y: v}, // right
			models.Point{X: v, Y: 0},      // top
			models.Point{X: v, Y: Extent}, // bottom
		)
	}
	return Template{name: "square", shape: models.Rectangle, points: points}
}

func triangleTemplate() Template {
	apex := models.Point{X: Extent / 2, Y: 0}
	left := models.Point{X: 0, Y: Extent}
	right := models.Point{X: Extent, Y: Extent}

	points := []models.Point{apex, left, right}
	for i := 1; i < edgeSteps; i++ {
		t := float64(i*10) / Extent
		points = append(points,
			lerp(apex, right, t),
			lerp(left, right, t),
			lerp(left, apex, t),
		)
	}
	return Template{name: "triangle", shape: models.Triangle, points: points}
}

func lerp(a, b models.Point, t float64) models.Point {
	return models.Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
