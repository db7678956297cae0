package api

import (
	"go.uber.org/zap"

	"github.com/proxyprint/proxyprint/internal/layout"
	"github.com/proxyprint/proxyprint/internal/paper"
)

// Options represents configuration options for the sheet generator.
type Options struct {
	// Paper selects the page: a named size (a4, letter, a3) or a
	// custom "<W>x<H><unit>" spec such as "210x297mm" or "8.5x11in".
	Paper string

	// Margin is the outer page margin in points.
	Margin float64
	// Gap is the spacing between adjacent cards in points. It is
	// also the black border band width when BlackBorders is set.
	Gap float64
	// Orientation picks the page frame; auto chooses whichever
	// fits more cards.
	Orientation Orientation

	// CropMarks draws corner cut marks for every grid cell.
	CropMarks bool
	// BlackBorders fills margins and gaps with solid black.
	BlackBorders bool
	// CropMarkLength is the mark arm length in points.
	CropMarkLength float64
	// CropMarkOffset is the outward mark offset in points; zero
	// puts marks flush against the cell edge.
	CropMarkOffset float64

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Logger receives per-image warnings. Defaults to a no-op.
	Logger *zap.Logger
}

// Option is a function that modifies Options
type Option func(*Options)

// Orientation represents page orientation
type Orientation = layout.Orientation

const (
	// OrientationAuto picks the orientation that fits more cards
	OrientationAuto = layout.OrientationAuto
	// OrientationPortrait forces portrait pages
	OrientationPortrait = layout.OrientationPortrait
	// OrientationLandscape forces landscape pages
	OrientationLandscape = layout.OrientationLandscape
)

// DefaultOptions returns the default options: A4 paper, 5 mm margin,
// 3 mm gap, auto orientation, no cut-assist decoration.
func DefaultOptions() Options {
	return Options{
		Paper:          "a4",
		Margin:         5 * paper.Millimeter,
		Gap:            3 * paper.Millimeter,
		Orientation:    OrientationAuto,
		CropMarks:      false,
		BlackBorders:   false,
		CropMarkLength: 5 * paper.Millimeter,
		CropMarkOffset: 0.3 * paper.Millimeter,
	}
}

// WithPaper sets the paper selector
func WithPaper(spec string) Option {
	return func(o *Options) {
		o.Paper = spec
	}
}

// WithMarginMM sets the outer margin in millimeters
func WithMarginMM(mm float64) Option {
	return func(o *Options) {
		o.Margin = mm * paper.Millimeter
	}
}

// WithGapMM sets the inter-card gap in millimeters
func WithGapMM(mm float64) Option {
	return func(o *Options) {
		o.Gap = mm * paper.Millimeter
	}
}

// WithOrientation sets the page orientation
func WithOrientation(orientation Orientation) Option {
	return func(o *Options) {
		o.Orientation = orientation
	}
}

// WithCropMarks enables or disables crop marks
func WithCropMarks(enabled bool) Option {
	return func(o *Options) {
		o.CropMarks = enabled
	}
}

// WithBlackBorders enables or disables black border fill
func WithBlackBorders(enabled bool) Option {
	return func(o *Options) {
		o.BlackBorders = enabled
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithLogger sets the logger used for per-image warnings
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
