package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/proxyprint/proxyprint/internal/paper"
)

var defaultSpec = Spec{
	Margin:      5 * paper.Millimeter,
	Gap:         3 * paper.Millimeter,
	Orientation: OrientationAuto,
}

func TestComputeA4Auto(t *testing.T) {
	plan := Compute(paper.SizeA4, defaultSpec)

	// A4 portrait fits 3 columns of 63mm and 3 rows of 88mm cards;
	// landscape manages only 4x2.
	assert.Equal(t, 3, plan.Cols)
	assert.Equal(t, 3, plan.Rows)
	assert.Equal(t, 9, plan.PerPage())
	assert.False(t, plan.Rotated)
	assert.False(t, plan.Overflows(paper.SizeA4, defaultSpec))
}

func TestComputeBlockFitsUsableArea(t *testing.T) {
	pages := []paper.Size{paper.SizeA4, paper.SizeA3, paper.SizeLetter}
	for _, page := range pages {
		plan := Compute(page, defaultSpec)

		usableW := page.Width - 2*defaultSpec.Margin
		usableH := page.Height - 2*defaultSpec.Margin
		if plan.Rotated {
			usableW, usableH = usableH, usableW
		}
		assert.GreaterOrEqual(t, plan.Rows, 1)
		assert.GreaterOrEqual(t, plan.Cols, 1)
		assert.LessOrEqual(t, plan.BlockWidth(), usableW)
		assert.LessOrEqual(t, plan.BlockHeight(), usableH)
	}
}

func TestComputeOriginCentersBlock(t *testing.T) {
	plan := Compute(paper.SizeA4, defaultSpec)

	leftSpace := plan.OriginX
	rightSpace := paper.SizeA4.Width - plan.OriginX - plan.BlockWidth()
	assert.InDelta(t, leftSpace, rightSpace, 1e-9)

	topSpace := plan.OriginY
	bottomSpace := paper.SizeA4.Height - plan.OriginY - plan.BlockHeight()
	assert.InDelta(t, topSpace, bottomSpace, 1e-9)
}

func TestComputeForcedOrientation(t *testing.T) {
	portrait := Compute(paper.SizeA4, Spec{Margin: defaultSpec.Margin, Gap: defaultSpec.Gap, Orientation: OrientationPortrait})
	assert.False(t, portrait.Rotated)
	assert.Equal(t, 3, portrait.Cols)
	assert.Equal(t, 3, portrait.Rows)

	landscape := Compute(paper.SizeA4, Spec{Margin: defaultSpec.Margin, Gap: defaultSpec.Gap, Orientation: OrientationLandscape})
	assert.True(t, landscape.Rotated)
	assert.Equal(t, 4, landscape.Cols)
	assert.Equal(t, 2, landscape.Rows)
}

func TestComputeAutoIdempotentUnderSwap(t *testing.T) {
	pages := []paper.Size{
		paper.SizeA4,
		paper.SizeA3,
		paper.SizeLetter,
		paper.FromMM(300, 100),
	}
	for _, page := range pages {
		plan := Compute(page, defaultSpec)
		swapped := Compute(paper.Size{Width: page.Height, Height: page.Width}, defaultSpec)
		assert.Equal(t, plan.PerPage(), swapped.PerPage(),
			"page %.0fx%.0f", page.Width, page.Height)
	}
}

func TestComputeClampsTinyPage(t *testing.T) {
	tiny := paper.FromMM(40, 40)
	plan := Compute(tiny, defaultSpec)

	assert.Equal(t, 1, plan.Rows)
	assert.Equal(t, 1, plan.Cols)
	assert.True(t, plan.Overflows(tiny, defaultSpec))
}

func TestCellCoordinates(t *testing.T) {
	plan := Compute(paper.SizeA4, defaultSpec)

	assert.InDelta(t, plan.OriginX, plan.CellX(0), 1e-9)
	assert.InDelta(t, plan.OriginX+CardWidth+plan.Gap, plan.CellX(1), 1e-9)
	assert.InDelta(t, plan.OriginY+2*(CardHeight+plan.Gap), plan.CellY(2), 1e-9)
}
