// Package input reads captured strokes and tracking recordings from disk.
package input

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ThatOtherAndrew/airshape/internal/models"
	"github.com/juruen/rmapi/encoding/rm"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported stroke format")
	ErrEmptyStroke       = errors.New("no strokes in file")
)

// LoadStrokes reads every stroke in the file, choosing the decoder by extension.
func LoadStrokes(path string) ([]models.Stroke, error) {
	var decode func([]byte) ([]models.Stroke, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = DecodeJSON
	case ".yaml", ".yml":
		decode = DecodeYAML
	case ".rm":
		decode = DecodeRM
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	strokes, err := decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	return strokes, nil
}

// DecodeJSON accepts either a single stroke, [{"x":1,"y":2},...], or a
// list of strokes.
func DecodeJSON(data []byte) ([]models.Stroke, error) {
	var many []models.Stroke
	if err := json.Unmarshal(data, &many); err == nil && len(many) > 0 {
		return many, nil
	}

	var one models.Stroke
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, errors.Wrap(err, "expected a list of points or a list of strokes")
	}
	return []models.Stroke{one}, nil
}

// DecodeYAML accepts the same layouts as DecodeJSON.
func DecodeYAML(data []byte) ([]models.Stroke, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyStroke
	}

	var many []models.Stroke
	if err := yaml.Unmarshal(data, &many); err == nil && len(many) > 0 {
		return many, nil
	}

	var one models.Stroke
	if err := yaml.Unmarshal(data, &one); err != nil {
		return nil, errors.Wrap(err, "expected a list of points or a list of strokes")
	}
	return []models.Stroke{one}, nil
}

// DecodeRM reads a reMarkable page. Each line on each layer is one stroke.
func DecodeRM(data []byte) ([]models.Stroke, error) {
	var page rm.Rm
	if err := page.UnmarshalBinary(data); err != nil {
		return nil, errors.Wrap(err, "failed to decode reMarkable page")
	}

	var strokes []models.Stroke
	for _, layer := range page.Layers {
		for _, line := range layer.Lines {
			s := make(models.Stroke, 0, len(line.Points))
			for _, p := range line.Points {
				s = append(s, models.Point{X: float64(p.X), Y: float64(p.Y)})
			}
			strokes = append(strokes, s)
		}
	}

	if len(strokes) == 0 {
		return nil, ErrEmptyStroke
	}
	return strokes, nil
}
