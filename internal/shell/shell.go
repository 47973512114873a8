// Package shell drives a drawing session interactively, one tracking event
// per command.
package shell

import (
	"fmt"
	"strconv"

	"github.com/ThatOtherAndrew/airshape/internal/draw"
	gestures "github.com/ThatOtherAndrew/airshape/internal/gesture"
	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/abiosoft/ishell"
	"github.com/pkg/errors"
)

type ShellCtxt struct {
	App    *gestures.App
	Active bool
	Hand   models.Point
}

func (ctx *ShellCtxt) prompt() string {
	s := ctx.App.Session()
	switch {
	case s.IsDrawing:
		return fmt.Sprintf("[drawing %d] > ", len(s.Points))
	case s.Outline != nil:
		return fmt.Sprintf("[%s] > ", s.Outline.Kind)
	default:
		return "[airshape] > "
	}
}

// track feeds the current pen state and hand position into the session.
func (ctx *ShellCtxt) track() (models.Gesture, bool) {
	return ctx.App.Track(ctx.Active, ctx.Hand)
}

func (ctx *ShellCtxt) render(path string) error {
	img, err := draw.Render(ctx.App.Frame())
	if err != nil {
		return err
	}
	return draw.SavePNG(img, path)
}

func parsePoint(args []string) (models.Point, error) {
	if len(args) != 2 {
		return models.Point{}, errors.New("usage: point X Y")
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return models.Point{}, errors.Wrapf(err, "bad X %q", args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return models.Point{}, errors.Wrapf(err, "bad Y %q", args[1])
	}
	return models.Point{X: x, Y: y}, nil
}

func RunShell(app *gestures.App) {
	ctx := &ShellCtxt{App: app}

	shell := ishell.New()
	shell.SetPrompt(ctx.prompt())

	shell.AddCmd(downCmd(ctx))
	shell.AddCmd(upCmd(ctx))
	shell.AddCmd(pointCmd(ctx))
	shell.AddCmd(distanceCmd(ctx))
	shell.AddCmd(sayCmd(ctx))
	shell.AddCmd(shapeCmd(ctx))
	shell.AddCmd(renderCmd(ctx))
	shell.AddCmd(statusCmd(ctx))

	shell.Println("airshape shell, type help for commands")
	shell.Run()
}
