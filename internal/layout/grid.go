package layout

import (
	"math"

	"github.com/proxyprint/proxyprint/internal/paper"
)

// Standard playing card dimensions (63x88 mm) in points. Every input
// image is placed into a cell of exactly this size.
const (
	CardWidth  = 63 * paper.Millimeter
	CardHeight = 88 * paper.Millimeter
)

// Orientation selects how the grid is laid onto the page.
type Orientation string

const (
	// OrientationAuto picks whichever orientation fits more cards.
	OrientationAuto Orientation = "auto"
	// OrientationPortrait forces the page's portrait frame.
	OrientationPortrait Orientation = "portrait"
	// OrientationLandscape forces the page's landscape frame.
	OrientationLandscape Orientation = "landscape"
)

// Spec holds the caller-supplied layout parameters, in points.
type Spec struct {
	Margin      float64
	Gap         float64
	Orientation Orientation
}

// Plan is the computed card grid for one page shape. OriginX/OriginY is
// the top-left corner of the occupied block; when Rotated is true the
// plan was computed against the page's landscape frame (width and
// height swapped) and pages must be emitted in that frame.
type Plan struct {
	Rows    int
	Cols    int
	OriginX float64
	OriginY float64
	Gap     float64
	Rotated bool
}

// PerPage returns the page capacity in cards.
func (p Plan) PerPage() int {
	return p.Rows * p.Cols
}

// CellX returns the X coordinate of the left edge of column col.
func (p Plan) CellX(col int) float64 {
	return p.OriginX + float64(col)*(CardWidth+p.Gap)
}

// CellY returns the Y coordinate of the top edge of row row.
func (p Plan) CellY(row int) float64 {
	return p.OriginY + float64(row)*(CardHeight+p.Gap)
}

// BlockWidth returns the width of the occupied grid block.
func (p Plan) BlockWidth() float64 {
	return float64(p.Cols)*CardWidth + float64(p.Cols-1)*p.Gap
}

// BlockHeight returns the height of the occupied grid block.
func (p Plan) BlockHeight() float64 {
	return float64(p.Rows)*CardHeight + float64(p.Rows-1)*p.Gap
}

// Compute derives the grid plan for the given page size and layout
// spec. With OrientationAuto both page frames are evaluated and the one
// holding strictly more cards wins; ties resolve to portrait.
func Compute(page paper.Size, spec Spec) Plan {
	switch spec.Orientation {
	case OrientationPortrait:
		return attempt(page.Width, page.Height, spec, false)
	case OrientationLandscape:
		return attempt(page.Height, page.Width, spec, true)
	}

	portrait := attempt(page.Width, page.Height, spec, false)
	landscape := attempt(page.Height, page.Width, spec, true)
	if landscape.PerPage() > portrait.PerPage() {
		return landscape
	}
	return portrait
}

// attempt computes a plan against one page frame. Rows and columns are
// clamped to a minimum of 1: a page smaller than one card still yields
// a single overflowing cell rather than an error.
func attempt(pageW, pageH float64, spec Spec, rotated bool) Plan {
	usableW := pageW - 2*spec.Margin
	usableH := pageH - 2*spec.Margin

	cols := int(math.Floor((usableW + spec.Gap) / (CardWidth + spec.Gap)))
	if cols < 1 {
		cols = 1
	}
	rows := int(math.Floor((usableH + spec.Gap) / (CardHeight + spec.Gap)))
	if rows < 1 {
		rows = 1
	}

	plan := Plan{Rows: rows, Cols: cols, Gap: spec.Gap, Rotated: rotated}
	plan.OriginX = (pageW - plan.BlockWidth()) / 2
	plan.OriginY = (pageH - plan.BlockHeight()) / 2
	return plan
}

// Overflows reports whether the occupied block exceeds the usable area,
// which happens only when the min-1 clamp kicked in on a page smaller
// than one card.
func (p Plan) Overflows(page paper.Size, spec Spec) bool {
	pageW, pageH := page.Width, page.Height
	if p.Rotated {
		pageW, pageH = pageH, pageW
	}
	return p.BlockWidth() > pageW-2*spec.Margin || p.BlockHeight() > pageH-2*spec.Margin
}
