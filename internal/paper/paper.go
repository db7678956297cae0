package paper

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Length unit conversion factors to PDF points (1/72 inch).
const (
	Point      = 1.0
	Inch       = 72.0
	Millimeter = 72.0 / 25.4
	Centimeter = 10 * Millimeter
)

// ErrInvalidSpec indicates a paper selector that is neither a known
// paper name nor a parseable "<W>x<H><unit>" size string.
var ErrInvalidSpec = errors.New("invalid paper spec")

// Size represents a page size in points.
type Size struct {
	Width  float64
	Height float64
}

// FromMM returns a Size for the given dimensions in millimeters.
func FromMM(width, height float64) Size {
	return Size{Width: width * Millimeter, Height: height * Millimeter}
}

// Standard paper sizes. Derived from the same unit constants used by
// Parse so that named and parsed sizes compare equal.
var (
	SizeA4     = FromMM(210, 297)
	SizeA3     = FromMM(297, 420)
	SizeLetter = Size{Width: 8.5 * Inch, Height: 11 * Inch}
)

// names maps the recognized paper selectors to their sizes.
var names = map[string]Size{
	"a4":     SizeA4,
	"a3":     SizeA3,
	"letter": SizeLetter,
}

// customRe matches a free-form size spec such as "210x297mm", "8.5x11in"
// or "21 x 29.7 cm". The unit defaults to millimeters.
var customRe = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*x\s*(\d+(?:\.\d+)?)\s*(mm|cm|in)?\s*$`)

// Resolve turns a paper selector into a Size in points. The selector is
// either one of the named papers (a4, letter, a3) or a custom
// "<W>x<H><unit>" string.
func Resolve(spec string) (Size, error) {
	if size, ok := names[strings.ToLower(strings.TrimSpace(spec))]; ok {
		return size, nil
	}
	return Parse(spec)
}

// Parse parses a custom "<W>x<H><unit>" size string into a Size in points.
func Parse(spec string) (Size, error) {
	m := customRe.FindStringSubmatch(spec)
	if m == nil {
		return Size{}, fmt.Errorf("%w: %q (expected e.g. 210x297mm or 8.5x11in)", ErrInvalidSpec, spec)
	}

	w, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q: %v", ErrInvalidSpec, spec, err)
	}
	h, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q: %v", ErrInvalidSpec, spec, err)
	}
	if w <= 0 || h <= 0 {
		return Size{}, fmt.Errorf("%w: %q: dimensions must be positive", ErrInvalidSpec, spec)
	}

	unit := Millimeter
	switch strings.ToLower(m[3]) {
	case "", "mm":
		unit = Millimeter
	case "cm":
		unit = Centimeter
	case "in":
		unit = Inch
	}

	return Size{Width: w * unit, Height: h * unit}, nil
}

// Names returns the recognized named paper selectors.
func Names() []string {
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	return out
}
