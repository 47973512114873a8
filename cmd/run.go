package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ThatOtherAndrew/airshape/internal/draw"
	gestures "github.com/ThatOtherAndrew/airshape/internal/gesture"
	"github.com/ThatOtherAndrew/airshape/internal/input"
	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/ThatOtherAndrew/airshape/internal/stroke"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var runOutputDir string

var runCmd = &cobra.Command{
	Use:     "run RECORDING",
	Aliases: []string{"replay"},
	Short:   "Replay a recorded tracking session",
	Long: `Replay a recorded tracking session frame by frame. Every completed stroke
is classified and, with --output, drawn to <gesture id>.png.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecording,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runOutputDir, "output", "o", "", "directory to draw recognised gestures into")
}

func runRecording(cmd *cobra.Command, args []string) error {
	rec, err := input.LoadRecording(args[0])
	if err != nil {
		return err
	}
	if rec.Name != "" {
		log.Printf("Replaying %s (%d frames)", rec.Name, len(rec.Frames))
	}

	if runOutputDir != "" {
		if err := os.MkdirAll(runOutputDir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create %s", runOutputDir)
		}
	}

	app := gestures.New(&models.Session{}, stroke.New(), settings)
	session := app.Session()

	for i, frame := range rec.Frames {
		if session.Closed {
			log.Printf("Session closed at frame %d", i)
			break
		}

		if frame.Distance > 0 {
			app.SetDistance(frame.Distance)
		}
		if frame.Say != "" {
			if err := app.Command(frame.Say); err != nil {
				log.Printf("Frame %d: %v", i, err)
			}
		}

		traced := append(models.Stroke(nil), session.Points...)
		g, ok := app.Track(frame.Active, frame.Point())
		if !ok {
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d points)\n", g.ID, g.Shape, g.Points)
		if runOutputDir == "" {
			continue
		}
		f := app.Frame()
		f.Stroke = traced
		if err := saveFrame(f, filepath.Join(runOutputDir, g.ID+".png")); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d gesture(s) recognised\n", session.Gestures)
	return nil
}

func saveFrame(f draw.Frame, path string) error {
	img, err := draw.Render(f)
	if err != nil {
		return err
	}
	return draw.SavePNG(img, path)
}
