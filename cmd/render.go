package cmd

import (
	"fmt"
	"log"

	"github.com/ThatOtherAndrew/airshape/internal/draw"
	"github.com/ThatOtherAndrew/airshape/internal/input"
	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/ThatOtherAndrew/airshape/internal/shapes"
	"github.com/ThatOtherAndrew/airshape/internal/stroke"
	"github.com/spf13/cobra"
)

var (
	renderOutput string
	renderIndex  int
	renderThumb  int
	renderColor  string
	renderScale  int
)

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Draw a stroke together with the outline it was recognised as",
	Args:  cobra.ExactArgs(1),
	RunE:  renderStroke,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "airshape.png", "PNG file to write")
	renderCmd.Flags().IntVarP(&renderIndex, "index", "i", 0, "which stroke in the file to draw")
	renderCmd.Flags().IntVar(&renderThumb, "thumb", 0, "scale the picture down to this width")
	renderCmd.Flags().StringVarP(&renderColor, "color", "c", "", "outline colour (default from settings)")
	renderCmd.Flags().IntVar(&renderScale, "scale", 100, "outline scale, 0 to 100")
}

func renderStroke(cmd *cobra.Command, args []string) error {
	strokes, err := input.LoadStrokes(args[0])
	if err != nil {
		return err
	}
	if renderIndex < 0 || renderIndex >= len(strokes) {
		return fmt.Errorf("stroke %d out of range, %s has %d stroke(s)", renderIndex, args[0], len(strokes))
	}
	if renderColor != "" && !draw.IsColor(renderColor) {
		return fmt.Errorf("unknown colour %q, pick one of %v", renderColor, draw.ColorNames())
	}

	s := strokes[renderIndex]
	result := stroke.New().Classify(s)
	log.Printf("Recognised %s#%d as %s", args[0], renderIndex, result)

	frame := draw.NewFrame(settings, renderColor)
	frame.Stroke = s
	center := models.Point{X: float64(frame.Width) / 2, Y: float64(frame.Height) / 2}
	if o, ok := shapes.New(result, center); ok {
		o.Scale = min(max(renderScale, 0), 100)
		frame.Outline = &o
	}

	img, err := draw.Render(frame)
	if err != nil {
		return err
	}
	if err := draw.SavePNG(draw.Thumbnail(img, renderThumb), renderOutput); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", result, renderOutput)
	return nil
}
