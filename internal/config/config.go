package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

type Settings struct {
	CanvasWidth      int     `json:"canvas_width"`
	CanvasHeight     int     `json:"canvas_height"`
	StrokeWidth      float64 `json:"stroke_width"`
	BorderWidth      float64 `json:"border_width"`
	Color            string  `json:"color"`
	Background       string  `json:"background"`
	MinPointDistance float64 `json:"min_point_distance"`
	MaxPoints        int     `json:"max_points"`
	MaxDepth         float64 `json:"max_depth"`
	Workers          int     `json:"workers"`
	OnGesture        string  `json:"on_gesture"`
}

// ColorValidator reports whether a colour name can be drawn with.
// It is set by the draw package's palette.
type ColorValidator func(name string) bool

func Default() *Settings {
	return &Settings{
		CanvasWidth:      640,
		CanvasHeight:     480,
		StrokeWidth:      3,
		BorderWidth:      4,
		Color:            "white",
		Background:       "#696969",
		MinPointDistance: 2,
		MaxPoints:        2048,
		MaxDepth:         3000,
		Workers:          4,
	}
}

func GetSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "airshape")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

func LoadSettings(validColor ColorValidator) (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, errors.Wrap(err, "failed to locate settings")
	}
	return LoadSettingsFrom(settingsPath, validColor)
}

// LoadSettingsFrom reads settings from path, creating the file with defaults
// when it does not exist. Invalid values fall back to their defaults.
func LoadSettingsFrom(settingsPath string, validColor ColorValidator) (*Settings, error) {
	defaultSettings := Default()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", settingsPath)
			if err := createDefaultSettings(settingsPath, defaultSettings); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", settingsPath)
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	settings.validate(defaultSettings, validColor)
	return settings, nil
}

func (s *Settings) validate(d *Settings, validColor ColorValidator) {
	if s.CanvasWidth <= 0 || s.CanvasHeight <= 0 {
		log.Printf("Invalid canvas size %dx%d, using default %dx%d",
			s.CanvasWidth, s.CanvasHeight, d.CanvasWidth, d.CanvasHeight)
		s.CanvasWidth, s.CanvasHeight = d.CanvasWidth, d.CanvasHeight
	}
	if s.StrokeWidth <= 0 {
		log.Printf("Invalid stroke_width value %.2f, must be positive, using default %.2f",
			s.StrokeWidth, d.StrokeWidth)
		s.StrokeWidth = d.StrokeWidth
	}
	if s.BorderWidth <= 0 {
		log.Printf("Invalid border_width value %.2f, must be positive, using default %.2f",
			s.BorderWidth, d.BorderWidth)
		s.BorderWidth = d.BorderWidth
	}
	if validColor != nil && !validColor(s.Color) {
		log.Printf("Unknown color '%s', using default '%s'", s.Color, d.Color)
		s.Color = d.Color
	}
	if !isHexColor(s.Background) {
		log.Printf("Invalid background '%s', must be a hex colour, using default '%s'",
			s.Background, d.Background)
		s.Background = d.Background
	}
	if s.MinPointDistance < 0 {
		log.Printf("Invalid min_point_distance value %.2f, must not be negative, using default %.2f",
			s.MinPointDistance, d.MinPointDistance)
		s.MinPointDistance = d.MinPointDistance
	}
	if s.MaxPoints <= 0 {
		log.Printf("Invalid max_points value %d, must be positive, using default %d",
			s.MaxPoints, d.MaxPoints)
		s.MaxPoints = d.MaxPoints
	}
	if s.MaxDepth <= 0 {
		log.Printf("Invalid max_depth value %.2f, must be positive, using default %.2f",
			s.MaxDepth, d.MaxDepth)
		s.MaxDepth = d.MaxDepth
	}
	if s.Workers < 1 {
		log.Printf("Invalid workers value %d, must be at least 1, using default %d",
			s.Workers, d.Workers)
		s.Workers = d.Workers
	}
}

// isHexColor accepts #rgb, #rgba, #rrggbb and #rrggbbaa.
func isHexColor(s string) bool {
	digits, ok := strings.CutPrefix(s, "#")
	if !ok {
		return false
	}
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, c := range digits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			// Handle json tags like "field,omitempty"
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
