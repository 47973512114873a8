package input

import (
	"os"

	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Frame is one tracking sample. Hand is the drawing hand's screen position,
// Active whether the drawing pose is held, Distance how far the user stands
// from the sensor (0 when unknown) and Say any word heard on this frame.
type Frame struct {
	Hand     []float64 `yaml:"hand"`
	Active   bool      `yaml:"active"`
	Distance float64   `yaml:"distance"`
	Say      string    `yaml:"say"`
}

func (f Frame) Point() models.Point {
	if len(f.Hand) < 2 {
		return models.Point{}
	}
	return models.Point{X: f.Hand[0], Y: f.Hand[1]}
}

type Recording struct {
	Name   string  `yaml:"name"`
	Frames []Frame `yaml:"frames"`
}

func LoadRecording(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	rec, err := DecodeRecording(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	return rec, nil
}

func DecodeRecording(data []byte) (*Recording, error) {
	var rec Recording
	if err := yaml.UnmarshalStrict(data, &rec); err != nil {
		return nil, err
	}

	for i, f := range rec.Frames {
		if len(f.Hand) != 0 && len(f.Hand) != 2 {
			return nil, errors.Errorf("frame %d: hand needs exactly two coordinates, got %d", i, len(f.Hand))
		}
	}
	return &rec, nil
}
