package pagination

import (
	"math"

	"github.com/proxyprint/proxyprint/internal/layout"
)

// Slot is the position assigned to one image: a page index and a cell
// within that page's grid. Cell coordinates repeat every page; Page
// disambiguates.
type Slot struct {
	Page int
	Row  int
	Col  int
}

// SlotAt returns the slot for the i-th image (0-based) under the given
// plan. Placement is a pure function of the index and the page
// capacity, so a failed image leaves its slot empty without shifting
// later images.
func SlotAt(i int, plan layout.Plan) Slot {
	perPage := plan.PerPage()
	cell := i % perPage
	return Slot{
		Page: i / perPage,
		Row:  cell / plan.Cols,
		Col:  cell % plan.Cols,
	}
}

// PageCount returns the number of pages needed for n images. Zero
// images need zero pages.
func PageCount(n int, plan layout.Plan) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n) / float64(plan.PerPage())))
}

// Placement pairs an image with its assigned slot.
type Placement struct {
	Image string
	Slot  Slot
}

// Assign walks the ordered image sequence and assigns each image its
// slot, preserving input order.
func Assign(images []string, plan layout.Plan) []Placement {
	out := make([]Placement, len(images))
	for i, img := range images {
		out[i] = Placement{Image: img, Slot: SlotAt(i, plan)}
	}
	return out
}
