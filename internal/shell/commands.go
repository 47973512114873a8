package shell

import (
	"errors"
	"strconv"

	"github.com/ThatOtherAndrew/airshape/internal/draw"
	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/abiosoft/ishell"
)

func printGesture(c *ishell.Context, g models.Gesture, ok bool) {
	if ok {
		c.Printf("%s: %s (%d points)\n", g.ID, g.Shape, g.Points)
	}
}

func downCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "down",
		Help: "start drawing at the current hand position",
		Func: func(c *ishell.Context) {
			ctx.Active = true
			g, ok := ctx.track()
			printGesture(c, g, ok)
			c.SetPrompt(ctx.prompt())
		},
	}
}

func upCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "up",
		Help: "stop drawing and classify the stroke",
		Func: func(c *ishell.Context) {
			ctx.Active = false
			g, ok := ctx.track()
			printGesture(c, g, ok)
			c.SetPrompt(ctx.prompt())
		},
	}
}

func pointCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "point",
		Help: "move the hand: point X Y",
		Func: func(c *ishell.Context) {
			p, err := parsePoint(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			ctx.Hand = p
			g, ok := ctx.track()
			printGesture(c, g, ok)
			c.SetPrompt(ctx.prompt())
		},
	}
}

func distanceCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "distance",
		Help: "set how far the user stands from the sensor",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(errors.New("usage: distance D"))
				return
			}
			d, err := strconv.ParseFloat(c.Args[0], 64)
			if err != nil {
				c.Err(err)
				return
			}
			ctx.App.SetDistance(d)
		},
	}
}

func sayCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "say",
		Help: "speak a colour name, exit or close",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(errors.New("usage: say WORD"))
				return
			}
			if err := ctx.App.Command(c.Args[0]); err != nil {
				c.Err(err)
				return
			}
			if ctx.App.Session().Closed {
				c.Stop()
			}
		},
	}
}

func shapeCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "shape",
		Help: "show an outline as if the shape had been recognised",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(errors.New("usage: shape circle|rectangle|triangle|unknown"))
				return
			}
			ctx.App.SetShape(models.ParseShape(c.Args[0]))
			c.SetPrompt(ctx.prompt())
		},
	}
}

func renderCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "render",
		Help: "draw the session to a PNG file",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(errors.New("missing output file"))
				return
			}
			if err := ctx.render(c.Args[0]); err != nil {
				c.Err(err)
				return
			}
			c.Println("wrote", c.Args[0])
		},
	}
}

func statusCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "status",
		Help: "print the session state",
		Func: func(c *ishell.Context) {
			s := ctx.App.Session()
			c.Printf("drawing:  %t\n", s.IsDrawing)
			c.Printf("points:   %d\n", len(s.Points))
			c.Printf("color:    %s %v\n", s.Color, draw.ColorNames())
			c.Printf("distance: %.2f\n", s.Distance)
			if s.Outline != nil {
				c.Printf("outline:  %s at (%.0f, %.0f) scale %d\n", s.Outline.Kind, s.Outline.Center.X, s.Outline.Center.Y, s.Outline.Scale)
			} else {
				c.Println("outline:  none")
			}
			c.Printf("gestures: %d\n", s.Gestures)
		},
	}
}
