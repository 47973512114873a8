package gestures

import (
	"log"
	"strings"

	"github.com/ThatOtherAndrew/airshape/internal/config"
	"github.com/ThatOtherAndrew/airshape/internal/draw"
	"github.com/ThatOtherAndrew/airshape/internal/execute"
	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/ThatOtherAndrew/airshape/internal/shapes"
	"github.com/ThatOtherAndrew/airshape/internal/stroke"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type App struct {
	app        *models.Session
	classifier *stroke.Classifier
	settings   *config.Settings
}

func New(session *models.Session, classifier *stroke.Classifier, settings *config.Settings) *App {
	if session.Color == "" {
		session.Color = settings.Color
	}
	return &App{app: session, classifier: classifier, settings: settings}
}

func (a *App) Session() *models.Session {
	return a.app
}

// Track feeds one tracking frame into the session. active reports whether
// the drawing pose is held. When a stroke is completed on this frame it is
// classified and returned.
func (a *App) Track(active bool, hand models.Point) (models.Gesture, bool) {
	if !a.app.IsDrawing && active {
		a.app.IsDrawing = true
		a.app.Outline = nil
	} else if a.app.IsDrawing && !active {
		a.app.IsDrawing = false
	}

	if a.app.IsDrawing {
		a.AddPoint(hand.X, hand.Y)
		return models.Gesture{}, false
	}

	if len(a.app.Points) == 0 {
		return models.Gesture{}, false
	}

	g := a.recognize()
	a.app.Points = nil
	return g, true
}

func (a *App) recognize() models.Gesture {
	g := models.Gesture{
		ID:     uuid.NewString(),
		Shape:  a.classifier.Classify(a.app.Points),
		Points: len(a.app.Points),
	}

	if scores, ok := a.classifier.Differences(a.app.Points); ok {
		for _, s := range scores {
			log.Printf("Template %s: difference %.3f", s.Template, s.Difference)
		}
	} else {
		log.Printf("Gesture %s has no extent, ignoring", g.ID)
	}
	log.Printf("Recognised gesture %s as %s (%d points)", g.ID, g.Shape, g.Points)

	a.SetShape(g.Shape)
	a.app.LastGesture = &g
	a.app.Gestures++

	if g.Shape != models.Unknown && a.settings.OnGesture != "" {
		if err := execute.Command(a.settings.OnGesture, g); err != nil {
			log.Printf("Failed to run on_gesture command: %v", err)
		}
	}
	return g
}

// AddPoint appends a hand position, skipping positions too close to the
// previous one and keeping only the newest MaxPoints.
func (a *App) AddPoint(x, y float64) {
	newPoint := models.Point{X: x, Y: y}

	shouldAdd := false
	if len(a.app.Points) == 0 {
		shouldAdd = true
	} else {
		lastPoint := a.app.Points[len(a.app.Points)-1]
		dx := newPoint.X - lastPoint.X
		dy := newPoint.Y - lastPoint.Y
		minDist := a.settings.MinPointDistance
		if dx*dx+dy*dy > minDist*minDist {
			shouldAdd = true
		}
	}

	if shouldAdd {
		a.app.Points = append(a.app.Points, newPoint)
		if len(a.app.Points) > a.settings.MaxPoints {
			a.app.Points = a.app.Points[len(a.app.Points)-a.settings.MaxPoints:]
		}
	}
}

// SetShape updates the displayed outline. A displayed outline is kept until
// the next stroke starts; Unknown removes it.
func (a *App) SetShape(result models.Shape) {
	if result == models.Unknown {
		a.app.Outline = nil
		return
	}
	if a.app.Outline != nil {
		return
	}

	center := models.Point{
		X: float64(a.settings.CanvasWidth) / 2,
		Y: float64(a.settings.CanvasHeight) / 2,
	}
	if o, ok := shapes.New(result, center); ok {
		o.Scale = shapes.ScaleForDistance(a.app.Distance, a.settings.MaxDepth)
		a.app.Outline = &o
	}
}

// SetDistance records how far the user stands from the sensor and rescales
// the displayed outline.
func (a *App) SetDistance(distance float64) {
	a.app.Distance = distance
	if a.app.Outline != nil {
		a.app.Outline.Scale = shapes.ScaleForDistance(distance, a.settings.MaxDepth)
	}
}

// Command applies a spoken word: a palette colour or exit/close.
func (a *App) Command(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	switch {
	case draw.IsColor(word):
		a.app.Color = word
		log.Printf("Color set to %s", word)
	case word == "exit" || word == "close":
		a.app.Closed = true
		log.Printf("Closing session")
	default:
		return errors.Errorf("unknown command %q", word)
	}
	return nil
}

// Frame describes what the session would show right now.
func (a *App) Frame() draw.Frame {
	f := draw.NewFrame(a.settings, a.app.Color)
	f.Stroke = a.app.Points
	f.Outline = a.app.Outline
	return f
}
