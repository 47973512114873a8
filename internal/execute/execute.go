package execute

import (
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/ThatOtherAndrew/airshape/internal/models"
)

// Command starts command detached from airshape, with the recognised gesture
// passed through AIRSHAPE_* environment variables.
func Command(command string, g models.Gesture) error {
	if command == "" {
		return nil
	}
	return newCommand(command, g).Start()
}

func newCommand(command string, g models.Gesture) *exec.Cmd {
	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	cmd.Env = append(os.Environ(),
		"AIRSHAPE_GESTURE_ID="+g.ID,
		"AIRSHAPE_SHAPE="+g.Shape.String(),
		"AIRSHAPE_POINTS="+strconv.Itoa(g.Points),
	)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	return cmd
}
