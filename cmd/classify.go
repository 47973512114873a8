package cmd

import (
	"fmt"
	"log"

	"github.com/ThatOtherAndrew/airshape/internal/batch"
	"github.com/ThatOtherAndrew/airshape/internal/input"
	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/ThatOtherAndrew/airshape/internal/stroke"
	"github.com/spf13/cobra"
)

var (
	classifyVerbose bool
	classifySummary bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify FILE...",
	Short: "Classify every stroke in the given files",
	Long: `Classify every stroke in the given files. Strokes are read from .json,
.yaml/.yml or reMarkable .rm files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: classifyFiles,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().BoolVarP(&classifyVerbose, "verbose", "v", false, "print the difference to every template")
	classifyCmd.Flags().BoolVarP(&classifySummary, "summary", "s", false, "print how many strokes matched each shape")
}

type labelledStroke struct {
	label  string
	stroke models.Stroke
}

func classifyFiles(cmd *cobra.Command, args []string) error {
	var all []labelledStroke
	for _, path := range args {
		strokes, err := input.LoadStrokes(path)
		if err != nil {
			return err
		}
		for i, s := range strokes {
			all = append(all, labelledStroke{label: fmt.Sprintf("%s#%d", path, i), stroke: s})
		}
	}
	log.Printf("Loaded %d stroke(s)", len(all))

	strokes := make([]models.Stroke, len(all))
	for i, ls := range all {
		strokes[i] = ls.stroke
	}

	classifier := stroke.New()
	results, err := batch.Classify(cmd.Context(), classifier, strokes, settings.Workers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, ls := range all {
		fmt.Fprintf(out, "%s: %s\n", ls.label, results[i])
		if !classifyVerbose {
			continue
		}
		scores, ok := classifier.Differences(ls.stroke)
		if !ok {
			fmt.Fprintln(out, "   no extent")
			continue
		}
		for _, s := range scores {
			fmt.Fprintf(out, "   %-9s %.3f\n", s.Template, s.Difference)
		}
	}

	if classifySummary {
		counts := batch.Counts(results)
		for _, shape := range []models.Shape{models.Circle, models.Rectangle, models.Triangle, models.Unknown} {
			fmt.Fprintf(out, "%-10s %d\n", shape, counts[shape])
		}
	}
	return nil
}
