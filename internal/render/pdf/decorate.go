package pdf

import (
	"github.com/proxyprint/proxyprint/internal/layout"
)

// segment is one straight cut-assist line in page coordinates.
type segment struct {
	X1, Y1, X2, Y2 float64
}

// fillRect is one solid-filled rectangle in page coordinates.
type fillRect struct {
	X, Y, W, H float64
}

// cropMarkSegments returns the mark lines for every grid cell of the
// plan, occupied or not. Each cell gets four L-shaped corner marks,
// eight segments total, drawn just outside the cell edges: markLen is
// the arm length and offset the outward distance from the edge.
func cropMarkSegments(plan layout.Plan, markLen, offset float64) []segment {
	segs := make([]segment, 0, plan.PerPage()*8)
	for row := 0; row < plan.Rows; row++ {
		for col := 0; col < plan.Cols; col++ {
			x := plan.CellX(col)
			y := plan.CellY(row)
			segs = append(segs, cellMarks(x, y, layout.CardWidth, layout.CardHeight, markLen, offset)...)
		}
	}
	return segs
}

// cellMarks returns the eight mark segments for a single cell with
// top-left corner (x, y).
func cellMarks(x, y, w, h, markLen, offset float64) []segment {
	left := x - offset
	right := x + w + offset
	top := y - offset
	bottom := y + h + offset

	return []segment{
		// top left
		{left - markLen, top, left, top},
		{left, top - markLen, left, top},
		// top right
		{right, top, right + markLen, top},
		{right, top - markLen, right, top},
		// bottom left
		{left - markLen, bottom, left, bottom},
		{left, bottom, left, bottom + markLen},
		// bottom right
		{right, bottom, right + markLen, bottom},
		{right, bottom, right, bottom + markLen},
	}
}

// blackBorderRects returns the solid fill rectangles for no-bleed
// cutting: a band of width gap around the occupied block plus every
// interior row and column gap. Filled before any card is drawn, they
// leave exactly rows*cols card-sized holes.
func blackBorderRects(plan layout.Plan) []fillRect {
	gap := plan.Gap
	x0 := plan.OriginX
	y0 := plan.OriginY
	blockW := plan.BlockWidth()
	blockH := plan.BlockHeight()

	// Outer bands, extending gap outward on all four sides:
	// top, bottom, left, right.
	rects := []fillRect{
		{x0 - gap, y0 - gap, blockW + 2*gap, gap},
		{x0 - gap, y0 + blockH, blockW + 2*gap, gap},
		{x0 - gap, y0 - gap, gap, blockH + 2*gap},
		{x0 + blockW, y0 - gap, gap, blockH + 2*gap},
	}

	for row := 1; row < plan.Rows; row++ {
		rects = append(rects, fillRect{x0, plan.CellY(row) - gap, blockW, gap})
	}
	for col := 1; col < plan.Cols; col++ {
		rects = append(rects, fillRect{plan.CellX(col) - gap, y0, gap, blockH})
	}
	return rects
}
