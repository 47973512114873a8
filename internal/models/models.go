package models

import "strings"

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Stroke is one gesture's points in the caller's raw capture space.
type Stroke []Point

// Shape is the result of classifying a stroke.
type Shape int

const (
	Unknown Shape = iota
	Circle
	Triangle
	Rectangle
)

var shapeNames = [...]string{
	Unknown:   "UNKNOWN",
	Circle:    "CIRCLE",
	Triangle:  "TRIANGLE",
	Rectangle: "RECTANGLE",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return shapeNames[Unknown]
	}
	return shapeNames[s]
}

func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(text []byte) error {
	*s = ParseShape(string(text))
	return nil
}

// ParseShape maps a shape name back to its value. Unrecognised names are Unknown.
func ParseShape(name string) Shape {
	for i, n := range shapeNames {
		if strings.EqualFold(n, name) {
			return Shape(i)
		}
	}
	return Unknown
}

// Outline is an idealised shape ready to be drawn. Scale runs from 0 to 100.
type Outline struct {
	Kind   Shape
	Center Point
	Scale  int
}

type Gesture struct {
	ID     string `json:"id"`
	Shape  Shape  `json:"shape"`
	Points int    `json:"points"`
}

type Session struct {
	Points      Stroke
	IsDrawing   bool
	Outline     *Outline
	Color       string
	Distance    float64
	Closed      bool
	LastGesture *Gesture
	Gestures    int
}
