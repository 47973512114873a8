package draw

import (
	"sort"
	"strings"

	"github.com/gogpu/gg"
)

// Colors are the outline colours a user can pick by voice.
var Colors = map[string]gg.RGBA{
	"white":  gg.White,
	"red":    gg.Red,
	"yellow": gg.Yellow,
	"green":  gg.Hex("#008000"),
	"blue":   gg.Blue,
}

func ColorByName(name string) (gg.RGBA, bool) {
	c, ok := Colors[strings.ToLower(name)]
	return c, ok
}

func IsColor(name string) bool {
	_, ok := ColorByName(name)
	return ok
}

func ColorNames() []string {
	names := make([]string, 0, len(Colors))
	for name := range Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
