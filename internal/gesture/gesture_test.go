package gestures

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ThatOtherAndrew/airshape/internal/config"
	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/ThatOtherAndrew/airshape/internal/stroke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *App {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	return New(&models.Session{}, stroke.New(), config.Default())
}

var square = models.Stroke{
	{X: 10, Y: 10}, {X: 35, Y: 10}, {X: 60, Y: 10}, {X: 60, Y: 35},
	{X: 60, Y: 60}, {X: 35, Y: 60}, {X: 10, Y: 60}, {X: 10, Y: 35},
}

func trace(a *App, s models.Stroke) (models.Gesture, bool) {
	for _, p := range s {
		if _, done := a.Track(true, p); done {
			panic("gesture completed while drawing")
		}
	}
	return a.Track(false, models.Point{})
}

func TestTrackRecognisesStroke(t *testing.T) {
	a := newApp(t)

	g, done := trace(a, square)
	require.True(t, done)
	assert.Equal(t, models.Rectangle, g.Shape)
	assert.Equal(t, len(square), g.Points)
	assert.NotEmpty(t, g.ID)

	s := a.Session()
	assert.False(t, s.IsDrawing)
	assert.Empty(t, s.Points)
	require.NotNil(t, s.Outline)
	assert.Equal(t, models.Rectangle, s.Outline.Kind)
	assert.Equal(t, models.Point{X: 320, Y: 240}, s.Outline.Center)
	assert.Equal(t, &g, s.LastGesture)
	assert.Equal(t, 1, s.Gestures)
}

func TestTrackIdleFramesDoNothing(t *testing.T) {
	a := newApp(t)

	_, done := a.Track(false, models.Point{X: 5, Y: 5})
	assert.False(t, done)
	assert.Empty(t, a.Session().Points)
	assert.Nil(t, a.Session().LastGesture)
}

func TestTrackStartingStrokeDropsOutline(t *testing.T) {
	a := newApp(t)
	_, done := trace(a, square)
	require.True(t, done)
	require.NotNil(t, a.Session().Outline)

	a.Track(true, models.Point{X: 1, Y: 1})
	assert.True(t, a.Session().IsDrawing)
	assert.Nil(t, a.Session().Outline)
}

func TestTrackDegenerateStrokeIsUnknown(t *testing.T) {
	a := newApp(t)

	g, done := trace(a, models.Stroke{{X: 5, Y: 5}})
	require.True(t, done)
	assert.Equal(t, models.Unknown, g.Shape)
	assert.Nil(t, a.Session().Outline)
}

func TestAddPointSpacing(t *testing.T) {
	a := newApp(t)

	a.AddPoint(0, 0)
	a.AddPoint(1, 1) // within 2px of the previous point
	a.AddPoint(3, 0)
	assert.Equal(t, models.Stroke{{X: 0, Y: 0}, {X: 3, Y: 0}}, a.Session().Points)
}

func TestAddPointTrimsToMaxPoints(t *testing.T) {
	a := newApp(t)
	a.settings.MaxPoints = 3

	for i := range 5 {
		a.AddPoint(float64(i*10), 0)
	}
	assert.Equal(t, models.Stroke{{X: 20, Y: 0}, {X: 30, Y: 0}, {X: 40, Y: 0}}, a.Session().Points)
}

func TestSetShapeKeepsFirstOutline(t *testing.T) {
	a := newApp(t)

	a.SetShape(models.Circle)
	a.SetShape(models.Triangle)
	require.NotNil(t, a.Session().Outline)
	assert.Equal(t, models.Circle, a.Session().Outline.Kind)

	a.SetShape(models.Unknown)
	assert.Nil(t, a.Session().Outline)
}

func TestSetDistanceScalesOutline(t *testing.T) {
	a := newApp(t)

	a.SetDistance(1500)
	a.SetShape(models.Triangle)
	require.NotNil(t, a.Session().Outline)
	assert.Equal(t, 50, a.Session().Outline.Scale)

	a.SetDistance(6000)
	assert.Equal(t, 100, a.Session().Outline.Scale)
}

func TestCommand(t *testing.T) {
	a := newApp(t)
	assert.Equal(t, "white", a.Session().Color)

	require.NoError(t, a.Command(" Yellow "))
	assert.Equal(t, "yellow", a.Session().Color)

	assert.Error(t, a.Command("purple"))
	assert.Equal(t, "yellow", a.Session().Color)
	assert.False(t, a.Session().Closed)

	require.NoError(t, a.Command("close"))
	assert.True(t, a.Session().Closed)
}

func TestFrame(t *testing.T) {
	a := newApp(t)
	require.NoError(t, a.Command("red"))
	a.AddPoint(1, 1)
	a.AddPoint(10, 10)

	f := a.Frame()
	assert.Equal(t, 640, f.Width)
	assert.Equal(t, a.Session().Points, f.Stroke)
	assert.Nil(t, f.Outline)
}

func TestOnGestureCommand(t *testing.T) {
	a := newApp(t)
	out := filepath.Join(t.TempDir(), "shape.txt")
	a.settings.OnGesture = `printf '%s' "$AIRSHAPE_SHAPE" > ` + out

	_, done := trace(a, square)
	require.True(t, done)

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && string(data) == "RECTANGLE"
	}, 5*time.Second, 20*time.Millisecond)
}
