package cmd

import (
	gestures "github.com/ThatOtherAndrew/airshape/internal/gesture"
	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/ThatOtherAndrew/airshape/internal/shell"
	"github.com/ThatOtherAndrew/airshape/internal/stroke"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Drive a drawing session by hand",
	Run: func(cmd *cobra.Command, args []string) {
		shell.RunShell(gestures.New(&models.Session{}, stroke.New(), settings))
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
