package text

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Ellipsis marks a truncated date.
const Ellipsis = "…"

// Fitter shortens labels until they fit a width budget.
type Fitter struct {
	Measurer  Measurer
	Separator string
	Logger    *log.Logger
}

// NewFitter returns a fitter using m and a single space separator.
func NewFitter(m Measurer, logger *log.Logger) *Fitter {
	return &Fitter{Measurer: m, Separator: " ", Logger: logger}
}

func (f *Fitter) measure(s string, font Font) float64 {
	if f.Measurer == nil {
		return Estimate(s, font)
	}
	w, err := f.Measurer.Measure(s, font)
	if err != nil {
		f.logger().Debug("measure failed, estimating", "text", s, "err", err)
		return Estimate(s, font)
	}
	return w
}

func (f *Fitter) logger() *log.Logger {
	if f.Logger == nil {
		return log.New(io.Discard)
	}
	return f.Logger
}

func (f *Fitter) separator() string {
	if f.Separator == "" {
		return " "
	}
	return f.Separator
}

// Join returns the labels of names joined by the separator.
func (f *Fitter) Join(names []NameComponent) string {
	labels := make([]string, len(names))
	for i, n := range names {
		labels[i] = n.Label
	}
	return strings.Join(labels, f.separator())
}

// FitNames abbreviates name components to their initial until the joined
// name fits width. Other given names go first, then the preferred name,
// then last names; each group is processed from the end. Components are
// only shortened while the name is still too wide, so the result is the
// least abbreviated name that fits, or the fully abbreviated one.
func (f *Fitter) FitNames(names []NameComponent, width float64, font Font) []NameComponent {
	out := append([]NameComponent(nil), names...)

	passes := []func(NameComponent) bool{
		func(n NameComponent) bool { return !n.IsPreferred && !n.IsLastName },
		func(n NameComponent) bool { return n.IsPreferred },
		func(n NameComponent) bool { return n.IsLastName },
	}
	for _, selected := range passes {
		for i := len(out) - 1; i >= 0; i-- {
			if !selected(out[i]) || utf8.RuneCountInString(out[i].Label) <= 1 {
				continue
			}
			if f.measure(f.Join(out), font) <= width {
				return out
			}
			out[i].Label = abbreviate(out[i].Label)
		}
	}
	return out
}

func abbreviate(label string) string {
	r, _ := utf8.DecodeRuneInString(label)
	return string(r) + "."
}

// FitDate drops trailing characters from text until it fits width, then
// marks the cut with [Ellipsis]. A date ending in "." after the cut loses
// the dot first. Text that already fits is returned unchanged.
func (f *Fitter) FitDate(text string, width float64, font Font) string {
	truncated := false
	for f.measure(text, font) > width && utf8.RuneCountInString(text) > 1 {
		_, size := utf8.DecodeLastRuneInString(text)
		text = strings.TrimSpace(text[:len(text)-size])
		truncated = true
	}
	if !truncated {
		return text
	}
	text = strings.TrimSuffix(text, ".")
	return strings.TrimSpace(text) + Ellipsis
}
