package sink

import (
	"fmt"
	"image/color"
	"strings"
)

// Theme holds the chart colours shared by the SVG and PNG sinks.
type Theme struct {
	Background color.RGBA
	Text       color.RGBA
	Link       color.RGBA

	Male, MaleStroke       color.RGBA
	Female, FemaleStroke   color.RGBA
	Unknown, UnknownStroke color.RGBA
	PlaceholderStroke      color.RGBA
}

// DefaultTheme is a light theme with blue and pink boxes.
var DefaultTheme = Theme{
	Background: color.RGBA{0xff, 0xff, 0xff, 0xff},
	Text:       color.RGBA{0x33, 0x33, 0x33, 0xff},
	Link:       color.RGBA{0x99, 0x99, 0x99, 0xff},

	Male:              color.RGBA{0xdb, 0xe8, 0xf6, 0xff},
	MaleStroke:        color.RGBA{0x5b, 0x9b, 0xd5, 0xff},
	Female:            color.RGBA{0xf9, 0xdd, 0xe6, 0xff},
	FemaleStroke:      color.RGBA{0xd4, 0x6a, 0x8e, 0xff},
	Unknown:           color.RGBA{0xee, 0xee, 0xee, 0xff},
	UnknownStroke:     color.RGBA{0x99, 0x99, 0x99, 0xff},
	PlaceholderStroke: color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
}

// fill returns the fill and stroke colours for a box CSS class.
func (t Theme) fill(class string) (fill, stroke color.RGBA) {
	switch {
	case strings.Contains(class, "placeholder"):
		return color.RGBA{}, t.PlaceholderStroke
	case strings.HasPrefix(class, "female"):
		return t.Female, t.FemaleStroke
	case strings.HasPrefix(class, "male"):
		return t.Male, t.MaleStroke
	}
	return t.Unknown, t.UnknownStroke
}

func hex(c color.RGBA) string {
	if c.A == 0 {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (t Theme) css() string {
	var b strings.Builder
	fmt.Fprintf(&b, "svg { background: %s; }\n", hex(t.Background))
	fmt.Fprintf(&b, ".link { fill: none; stroke: %s; stroke-width: 2px; }\n", hex(t.Link))
	fmt.Fprintf(&b, ".box { stroke-width: 2px; }\n")
	for _, class := range []string{"male", "female", "unknown"} {
		fill, stroke := t.fill(class)
		fmt.Fprintf(&b, ".person.%s .box { fill: %s; stroke: %s; }\n", class, hex(fill), hex(stroke))
	}
	fmt.Fprintf(&b, ".person.placeholder .box { fill: none; stroke: %s; stroke-dasharray: 5 3; }\n", hex(t.PlaceholderStroke))
	fmt.Fprintf(&b, "text { fill: %s; }\n", hex(t.Text))
	fmt.Fprintf(&b, ".name .preferred { text-decoration: underline; }\n")
	fmt.Fprintf(&b, ".name .lastName { font-weight: bold; }\n")
	fmt.Fprintf(&b, ".alt { font-style: italic; }\n")
	return b.String()
}
