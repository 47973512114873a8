package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/ThatOtherAndrew/airshape/internal/stroke"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"templates"},
	Short:   "List the reference shapes strokes are matched against",
	RunE:    listTemplates,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "dump template points as JSON")
}

type templateJSON struct {
	Name   string         `json:"name"`
	Shape  models.Shape   `json:"shape"`
	Points []models.Point `json:"points"`
}

func listTemplates(cmd *cobra.Command, args []string) error {
	templates := stroke.NewLibrary().Templates()

	if listJSON {
		out := make([]templateJSON, 0, len(templates))
		for _, t := range templates {
			out = append(out, templateJSON{Name: t.Name(), Shape: t.Shape(), Points: t.Points()})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Templates:")
	for _, t := range templates {
		fmt.Fprintf(cmd.OutOrStdout(), "   %-9s %-10s %d points\n", t.Name(), t.Shape(), t.Len())
	}
	return nil
}
