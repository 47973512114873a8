package stroke

import (
	"math"
	"sync"
	"testing"

	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareStroke samples the corners and edge midpoints of (10,10)-(60,60).
func squareStroke() models.Stroke {
	return models.Stroke{
		{X: 10, Y: 10}, {X: 35, Y: 10}, {X: 60, Y: 10}, {X: 60, Y: 35},
		{X: 60, Y: 60}, {X: 35, Y: 60}, {X: 10, Y: 60}, {X: 10, Y: 35},
	}
}

// circleStroke samples a full circle of radius 25 around (35,35).
func circleStroke() models.Stroke {
	var s models.Stroke
	for i := range 16 {
		theta := float64(i) * math.Pi / 8
		s = append(s, models.Point{X: 35 + 25*math.Cos(theta), Y: 35 + 25*math.Sin(theta)})
	}
	return s
}

// triangleStroke walks apex, bottom-left, bottom-right and back to the apex
// with four points per edge.
func triangleStroke() models.Stroke {
	apex := models.Point{X: 100, Y: 20}
	left := models.Point{X: 40, Y: 140}
	right := models.Point{X: 160, Y: 140}

	var s models.Stroke
	for _, edge := range [][2]models.Point{{apex, left}, {left, right}, {right, apex}} {
		for i := range 4 {
			s = append(s, lerp(edge[0], edge[1], float64(i)/4))
		}
	}
	return s
}

func scale(s models.Stroke, k float64) models.Stroke {
	out := make(models.Stroke, len(s))
	for i, p := range s {
		out[i] = models.Point{X: p.X * k, Y: p.Y * k}
	}
	return out
}

func translate(s models.Stroke, dx, dy float64) models.Stroke {
	out := make(models.Stroke, len(s))
	for i, p := range s {
		out[i] = models.Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

func TestClassifyExamples(t *testing.T) {
	c := New()

	tests := []struct {
		name   string
		stroke models.Stroke
		want   models.Shape
	}{
		{"square", squareStroke(), models.Rectangle},
		{"circle", circleStroke(), models.Circle},
		{"triangle", triangleStroke(), models.Triangle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.stroke))
		})
	}
}

func TestClassifyDegenerate(t *testing.T) {
	c := New()

	tests := []struct {
		name   string
		stroke models.Stroke
	}{
		{"nil", nil},
		{"empty", models.Stroke{}},
		{"single point", models.Stroke{{X: 3, Y: 4}}},
		{"repeated point", models.Stroke{{X: 3, Y: 4}, {X: 3, Y: 4}, {X: 3, Y: 4}}},
		{"horizontal line", models.Stroke{{X: 0, Y: 5}, {X: 10, Y: 5}, {X: 20, Y: 5}}},
		{"vertical line", models.Stroke{{X: 5, Y: 0}, {X: 5, Y: 10}, {X: 5, Y: 20}}},
		{"not a number", models.Stroke{{X: 0, Y: 0}, {X: math.NaN(), Y: 10}, {X: 10, Y: 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, models.Unknown, c.Classify(tt.stroke))

			_, ok := c.Differences(tt.stroke)
			assert.False(t, ok)
		})
	}
}

func TestClassifyTieIsUnknown(t *testing.T) {
	c := New()

	// Every point is shared by the square and triangle templates, so both
	// differences are exactly zero.
	s := models.Stroke{{X: 0, Y: 100}, {X: 100, Y: 100}, {X: 50, Y: 0}, {X: 50, Y: 100}}

	scores, ok := c.Differences(s)
	require.True(t, ok)
	require.Len(t, scores, 3)
	assert.Equal(t, 0., scores[1].Difference)
	assert.Equal(t, 0., scores[2].Difference)
	assert.Greater(t, scores[0].Difference, 0.)

	assert.Equal(t, models.Unknown, c.Classify(s))
}

func TestClassifyTemplateSelfMatch(t *testing.T) {
	c := New()
	circle, _ := c.Library().Template("circle")

	assert.Equal(t, models.Circle, c.Classify(circle.Points()))
}

func TestClassifyIdempotent(t *testing.T) {
	c := New()
	s := triangleStroke()
	before := append(models.Stroke(nil), s...)

	first := c.Classify(s)
	assert.Equal(t, first, c.Classify(s))
	assert.Equal(t, before, s, "stroke must not be modified")
}

func TestClassifyScaleInvariant(t *testing.T) {
	c := New()

	for _, s := range []models.Stroke{squareStroke(), circleStroke(), triangleStroke()} {
		want := c.Classify(s)
		for _, k := range []float64{1e-300, 0.25, 0.5, 2, 8, 1024, 1e300, 1e306} {
			assert.Equal(t, want, c.Classify(scale(s, k)), "k=%v", k)
		}
	}
}

func TestClassifyTranslationInvariant(t *testing.T) {
	c := New()

	for _, s := range []models.Stroke{squareStroke(), triangleStroke()} {
		want := c.Classify(s)
		for _, d := range [][2]float64{{-10, 0}, {0, 300}, {1000, -1000}, {7, 13}} {
			assert.Equal(t, want, c.Classify(translate(s, d[0], d[1])), "offset=%v", d)
		}
	}
}

func TestClassifyConcurrent(t *testing.T) {
	c := New()
	strokes := []models.Stroke{squareStroke(), circleStroke(), triangleStroke()}
	want := []models.Shape{models.Rectangle, models.Circle, models.Triangle}

	var wg sync.WaitGroup
	got := make([]models.Shape, 30)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = c.Classify(strokes[i%3])
		}(i)
	}
	wg.Wait()

	for i, shape := range got {
		assert.Equal(t, want[i%3], shape)
	}
}

func TestNormalize(t *testing.T) {
	n, ok := Normalize(models.Stroke{{X: 10, Y: 20}, {X: 30, Y: 60}, {X: 20, Y: 40}})
	require.True(t, ok)
	assert.Equal(t, models.Stroke{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 50, Y: 50}}, n)
}

func TestNormalizeHugeExtentStaysFinite(t *testing.T) {
	n, ok := Normalize(scale(squareStroke(), 1e306))
	require.True(t, ok)
	for _, p := range n {
		assert.False(t, math.IsInf(p.X, 0) || math.IsNaN(p.X), "x=%v", p.X)
		assert.False(t, math.IsInf(p.Y, 0) || math.IsNaN(p.Y), "y=%v", p.Y)
		assert.True(t, p.X >= 0 && p.X <= Extent && p.Y >= 0 && p.Y <= Extent, "%v", p)
	}
}

func TestNormalizeRejectsInfiniteExtent(t *testing.T) {
	c := New()
	inf := math.Inf(1)

	for _, s := range []models.Stroke{
		{{X: 0, Y: 0}, {X: inf, Y: 10}},
		{{X: 0, Y: -inf}, {X: 10, Y: 10}},
		{{X: -math.MaxFloat64, Y: 0}, {X: math.MaxFloat64, Y: 10}},
	} {
		_, ok := Normalize(s)
		assert.False(t, ok, "%v", s)
		assert.Equal(t, models.Unknown, c.Classify(s), "%v", s)
	}
}

func TestNormalizeScalesAxesIndependently(t *testing.T) {
	n, ok := Normalize(models.Stroke{{X: 0, Y: 0}, {X: 200, Y: 10}})
	require.True(t, ok)
	assert.Equal(t, models.Stroke{{X: 0, Y: 0}, {X: 100, Y: 100}}, n)
}

func TestDifference(t *testing.T) {
	template := []models.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}

	assert.Equal(t, 0., Difference(models.Stroke{{X: 0, Y: 0}, {X: 10, Y: 0}}, template))
	// (1² + 0) and (0 + 2²) averaged
	assert.Equal(t, 2.5, Difference(models.Stroke{{X: 1, Y: 0}, {X: 10, Y: 2}}, template))
	assert.True(t, math.IsInf(Difference(nil, template), 1))
	assert.True(t, math.IsInf(Difference(models.Stroke{{X: 0, Y: 0}}, nil), 1))
}

func TestDifferenceIsOneDirectional(t *testing.T) {
	square, _ := NewLibrary().Template("square")

	// Only the top edge is traced, yet every point sits on the template.
	topEdge := models.Stroke{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 0}}
	assert.Equal(t, 0., Difference(topEdge, square.Points()))
}
