package stroke

import (
	"math"

	"github.com/ThatOtherAndrew/airshape/internal/models"
)

// Classifier matches strokes against a Library. It keeps no per-call state
// and is safe for concurrent use.
type Classifier struct {
	library *Library
}

func New() *Classifier {
	return &Classifier{library: NewLibrary()}
}

func NewWithLibrary(library *Library) *Classifier {
	return &Classifier{library: library}
}

func (c *Classifier) Library() *Library {
	return c.library
}

// Classify returns the template shape whose difference is strictly lower
// than every other template's. Empty or degenerate strokes and ties are Unknown.
func (c *Classifier) Classify(s models.Stroke) models.Shape {
	scores, ok := c.Differences(s)
	if !ok {
		return models.Unknown
	}
	return strictMinimum(scores)
}

type Score struct {
	Template   string
	Shape      models.Shape
	Difference float64
}

// Differences scores the stroke against every template, in library order.
// It reports false when the stroke cannot be normalised.
func (c *Classifier) Differences(s models.Stroke) ([]Score, bool) {
	normalized, ok := Normalize(s)
	if !ok {
		return nil, false
	}

	scores := make([]Score, 0, len(c.library.templates))
	for _, t := range c.library.templates {
		scores = append(scores, Score{
			Template:   t.name,
			Shape:      t.shape,
			Difference: Difference(normalized, t.points),
		})
	}
	return scores, true
}

func strictMinimum(scores []Score) models.Shape {
	for i, candidate := range scores {
		wins := true
		for j, other := range scores {
			if i != j && !(candidate.Difference < other.Difference) {
				wins = false
				break
			}
		}
		if wins {
			return candidate.Shape
		}
	}
	return models.Unknown
}

// Normalize maps the stroke's bounding box onto [0,Extent]x[0,Extent], each
// axis scaled on its own. It reports false for an empty stroke or one with
// no width, no height or an infinite extent.
func Normalize(s models.Stroke) (models.Stroke, bool) {
	if len(s) == 0 {
		return nil, false
	}

	minX, maxX := s[0].X, s[0].X
	minY, maxY := s[0].Y, s[0].Y
	for _, p := range s[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	width, height := maxX-minX, maxY-minY
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, false
	}

	normalized := make(models.Stroke, len(s))
	for i, p := range s {
		normalized[i] = models.Point{
			X: (p.X - minX) / width * Extent,
			Y: (p.Y - minY) / height * Extent,
		}
	}
	return normalized, true
}

// Difference is the mean, over stroke points, of the squared distance to the
// nearest template point. It only looks from stroke to template: template
// points that no stroke point comes near cost nothing.
func Difference(normalized models.Stroke, template []models.Point) float64 {
	if len(normalized) == 0 || len(template) == 0 {
		return math.Inf(1)
	}

	sum := 0.
	for _, p := range normalized {
		nearest := math.Inf(1)
		for _, q := range template {
			if d := distance(p, q); d < nearest {
				nearest = d
			}
		}
		sum += nearest
	}
	return sum / float64(len(normalized))
}

// distance is squared.
func distance(a, b models.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
