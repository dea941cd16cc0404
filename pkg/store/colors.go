package store

import (
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
	"google.golang.org/api/sheets/v4"
)

// driveColors assigns every drive a distinct background color. The
// assignment is a pure function of the sorted drive-name set, so saving
// the same documentation twice produces the same colors no matter which
// machine saves it or in which order drives were scanned.
//
// Hues are spread evenly over the wheel; saturation and value alternate
// between neighbors so adjacent hues stay easy to tell apart.
func driveColors(names []string) map[string]*sheets.Color {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	n := len(sorted)
	colors := make(map[string]*sheets.Color, n)
	for i, name := range sorted {
		hue := float64(i) / float64(n) * 360
		saturation := 0.35 + 0.15*float64((i+1)%2)
		value := 0.60 + 0.15*float64(i%2)

		c := colorful.Hsv(hue, saturation, value)
		colors[name] = &sheets.Color{Red: c.R, Green: c.G, Blue: c.B}
	}
	return colors
}
