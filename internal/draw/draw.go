package draw

import (
	"image"
	"image/png"
	"os"

	"github.com/ThatOtherAndrew/airshape/internal/config"
	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/ThatOtherAndrew/airshape/internal/shapes"
	"github.com/gogpu/gg"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Frame is everything needed to draw one picture: the free-form stroke as
// the user traced it and the idealised outline it was recognised as.
type Frame struct {
	Width       int
	Height      int
	Background  gg.RGBA
	Color       gg.RGBA
	StrokeWidth float64
	BorderWidth float64
	Stroke      models.Stroke
	Outline     *models.Outline
}

// NewFrame fills canvas and pen settings from the user's settings.
func NewFrame(settings *config.Settings, colorName string) Frame {
	col, ok := ColorByName(colorName)
	if !ok {
		col, _ = ColorByName(settings.Color)
	}
	return Frame{
		Width:       settings.CanvasWidth,
		Height:      settings.CanvasHeight,
		Background:  gg.Hex(settings.Background),
		Color:       col,
		StrokeWidth: settings.StrokeWidth,
		BorderWidth: settings.BorderWidth,
	}
}

func Render(f Frame) (image.Image, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, errors.Errorf("invalid canvas size %dx%d", f.Width, f.Height)
	}

	dc := gg.NewContext(f.Width, f.Height)
	defer dc.Close()

	dc.ClearWithColor(f.Background)
	dc.SetColor(f.Color.Color())

	if err := drawLine(dc, f.Stroke, f.StrokeWidth); err != nil {
		return nil, err
	}
	if f.Outline != nil {
		if err := drawOutline(dc, *f.Outline, f.BorderWidth); err != nil {
			return nil, err
		}
	}

	return dc.Image(), nil
}

func drawLine(dc *gg.Context, stroke models.Stroke, width float64) error {
	if len(stroke) < 2 {
		return nil
	}

	dc.SetLineWidth(width)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)
	dc.MoveTo(stroke[0].X, stroke[0].Y)
	for _, p := range stroke[1:] {
		dc.LineTo(p.X, p.Y)
	}
	return errors.Wrap(dc.Stroke(), "failed to draw stroke")
}

func drawOutline(dc *gg.Context, o models.Outline, width float64) error {
	path := shapes.GeometryFor(o)
	if len(path.Elements()) == 0 {
		return nil
	}

	dc.SetLineWidth(width)
	dc.SetLineJoin(gg.LineJoinMiter)
	for _, e := range path.Elements() {
		switch e := e.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
	return errors.Wrap(dc.Stroke(), "failed to draw outline")
}

// Thumbnail scales img to the given width, keeping its aspect ratio.
func Thumbnail(img image.Image, width int) image.Image {
	if width <= 0 || width >= img.Bounds().Dx() {
		return img
	}
	return resize.Resize(uint(width), 0, img, resize.Lanczos3)
}

func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	return f.Close()
}
