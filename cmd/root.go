package cmd

import (
	"log"
	"os"

	"github.com/ThatOtherAndrew/airshape/internal/config"
	"github.com/ThatOtherAndrew/airshape/internal/draw"
	"github.com/spf13/cobra"
)

var (
	configPath string
	settings   *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "airshape",
	Short: "Recognise hand-drawn circles, rectangles and triangles",
	Long: `airshape classifies free-form strokes as a circle, rectangle or triangle
by comparing them with fixed reference shapes, and draws the idealised
outline of whatever it recognised.`,
	PersistentPreRunE: loadSettings,
	SilenceUsage:      true,
}

func init() {
	log.SetFlags(0)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default ~/.config/airshape/settings.json)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSettings(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		settings, err = config.LoadSettingsFrom(configPath, draw.IsColor)
	} else {
		settings, err = config.LoadSettings(draw.IsColor)
	}
	return err
}
