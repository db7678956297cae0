package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxyprint/proxyprint/internal/layout"
	"github.com/proxyprint/proxyprint/internal/paper"
)

func a4Plan(t *testing.T) layout.Plan {
	t.Helper()
	plan := layout.Compute(paper.SizeA4, layout.Spec{
		Margin:      5 * paper.Millimeter,
		Gap:         3 * paper.Millimeter,
		Orientation: layout.OrientationAuto,
	})
	require.Equal(t, 3, plan.Rows)
	require.Equal(t, 3, plan.Cols)
	return plan
}

func TestCropMarkSegmentsCoverFullGrid(t *testing.T) {
	plan := a4Plan(t)
	markLen := 5 * paper.Millimeter

	segs := cropMarkSegments(plan, markLen, 0)

	// Eight segments per cell, for every cell regardless of occupancy.
	assert.Len(t, segs, plan.PerPage()*8)

	for _, s := range segs {
		length := (s.X2 - s.X1) + (s.Y2 - s.Y1)
		assert.InDelta(t, markLen, length, 1e-9)
	}
}

func TestCropMarksStayOutsideCells(t *testing.T) {
	offset := 0.3 * paper.Millimeter

	segs := cellMarks(100, 200, layout.CardWidth, layout.CardHeight, 10, offset)
	require.Len(t, segs, 8)

	for _, s := range segs {
		insideX := s.X1 > 100 && s.X1 < 100+layout.CardWidth &&
			s.X2 > 100 && s.X2 < 100+layout.CardWidth
		insideY := s.Y1 > 200 && s.Y1 < 200+layout.CardHeight &&
			s.Y2 > 200 && s.Y2 < 200+layout.CardHeight
		assert.False(t, insideX && insideY, "segment %+v crosses cell interior", s)
	}

	// Top-left horizontal arm ends one offset left of the cell edge.
	assert.InDelta(t, 100-offset, segs[0].X2, 1e-9)
	assert.InDelta(t, 200-offset, segs[0].Y2, 1e-9)
}

func TestBlackBorderRects(t *testing.T) {
	plan := a4Plan(t)
	gap := plan.Gap

	rects := blackBorderRects(plan)

	// Four outer bands plus one strip per interior row/column gap.
	assert.Len(t, rects, 4+(plan.Rows-1)+(plan.Cols-1))

	top := rects[0]
	assert.InDelta(t, plan.OriginX-gap, top.X, 1e-9)
	assert.InDelta(t, plan.OriginY-gap, top.Y, 1e-9)
	assert.InDelta(t, plan.BlockWidth()+2*gap, top.W, 1e-9)
	assert.InDelta(t, gap, top.H, 1e-9)

	// First interior column strip sits flush against column 0.
	colStrip := rects[len(rects)-plan.Cols+1]
	assert.InDelta(t, plan.CellX(0)+layout.CardWidth, colStrip.X, 1e-9)
	assert.InDelta(t, gap, colStrip.W, 1e-9)
	assert.InDelta(t, plan.BlockHeight(), colStrip.H, 1e-9)
}

func TestBlackBorderRectsAvoidCells(t *testing.T) {
	plan := a4Plan(t)
	rects := blackBorderRects(plan)

	// No fill rectangle may overlap any card cell.
	for row := 0; row < plan.Rows; row++ {
		for col := 0; col < plan.Cols; col++ {
			cx, cy := plan.CellX(col), plan.CellY(row)
			for _, r := range rects {
				overlapX := r.X < cx+layout.CardWidth && r.X+r.W > cx
				overlapY := r.Y < cy+layout.CardHeight && r.Y+r.H > cy
				assert.False(t, overlapX && overlapY,
					"rect %+v overlaps cell (%d,%d)", r, row, col)
			}
		}
	}
}

func TestFitCell(t *testing.T) {
	// A 63:88 source fills the cell exactly.
	w, h := fitCell(630, 880)
	assert.InDelta(t, layout.CardWidth, w, 1e-9)
	assert.InDelta(t, layout.CardHeight, h, 1e-9)

	// A square source is width-bound.
	w, h = fitCell(500, 500)
	assert.InDelta(t, layout.CardWidth, w, 1e-9)
	assert.InDelta(t, layout.CardWidth, h, 1e-9)
	assert.Less(t, h, layout.CardHeight)
}
