package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/proxyprint/proxyprint/internal/layout"
	"github.com/proxyprint/proxyprint/internal/pagination"
	"github.com/proxyprint/proxyprint/internal/paper"
)

// Renderer assembles the card sheet document: it opens a page per
// capacity boundary, applies the enabled cut-assist decorators before
// any card art, and places each image into its grid cell.
type Renderer struct {
	// CropMarks enables corner cut marks for every grid cell.
	CropMarks bool
	// BlackBorders fills the margin band and inter-card gaps with
	// solid black for no-bleed cutting.
	BlackBorders bool
	// MarkLength is the crop mark arm length in points.
	MarkLength float64
	// MarkOffset is the outward crop mark offset from the cell edge.
	MarkOffset float64

	logger *zap.Logger
}

// RenderOptions contains document metadata for rendering.
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
}

// Stats reports what a render run actually did.
type Stats struct {
	// Placed counts images drawn into their slot.
	Placed int
	// Failed counts images that could not be loaded; their slots
	// stay empty and the run continues.
	Failed int
	// Pages is the number of pages emitted.
	Pages int
}

// NewRenderer creates a renderer with the default crop mark geometry
// (5 mm arms, 0.3 mm outward offset).
func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		MarkLength: 5 * paper.Millimeter,
		MarkOffset: 0.3 * paper.Millimeter,
		logger:     logger,
	}
}

// Render writes the multi-page card sheet to outputPath, overwriting
// any existing file. The page frame follows plan.Rotated: a rotated
// plan emits pages with the paper's width and height swapped, so the
// grid computed in the landscape frame lands on the page unchanged.
// Per-image load failures are logged and skipped; their slot index
// still advances.
func (r *Renderer) Render(images []string, page paper.Size, plan layout.Plan, outputPath string, options RenderOptions) (Stats, error) {
	pageW, pageH := page.Width, page.Height
	if plan.Rotated {
		pageW, pageH = pageH, pageW
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(options.Title, true)
	doc.SetAuthor(options.Author, true)
	doc.SetSubject(options.Subject, true)
	doc.SetKeywords(options.Keywords, true)
	doc.SetCreator(options.Creator, true)

	stats := Stats{}
	perPage := plan.PerPage()

	for i, img := range images {
		if i%perPage == 0 {
			doc.AddPage()
			stats.Pages++
			r.decoratePage(doc, plan)
		}

		slot := pagination.SlotAt(i, plan)
		if err := r.placeImage(doc, img, plan.CellX(slot.Col), plan.CellY(slot.Row)); err != nil {
			r.logger.Warn("cannot load image, leaving slot empty",
				zap.String("image", img),
				zap.Int("page", slot.Page+1),
				zap.Error(err))
			stats.Failed++
			continue
		}
		stats.Placed++
	}

	if doc.Err() {
		return stats, fmt.Errorf("rendering pages: %w", doc.Error())
	}

	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return stats, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := doc.OutputFileAndClose(outputPath); err != nil {
		return stats, fmt.Errorf("failed to write document: %w", err)
	}
	return stats, nil
}

// decoratePage applies the enabled cut-assist decorators. Runs once
// per page, before any card is placed, so marks never overpaint art.
// Borders go first; crop marks are hairlines and stay visible on top
// of the fill.
func (r *Renderer) decoratePage(doc *fpdf.Fpdf, plan layout.Plan) {
	if r.BlackBorders {
		doc.SetFillColor(0, 0, 0)
		for _, rect := range blackBorderRects(plan) {
			doc.Rect(rect.X, rect.Y, rect.W, rect.H, "F")
		}
	}
	if r.CropMarks {
		doc.SetDrawColor(0, 0, 0)
		doc.SetLineWidth(0.3)
		for _, seg := range cropMarkSegments(plan, r.MarkLength, r.MarkOffset) {
			doc.Line(seg.X1, seg.Y1, seg.X2, seg.Y2)
		}
	}
}

// placeImage decodes one image and draws it into the cell with
// top-left corner (x, y), aspect ratio preserved and centered. The
// embed branch follows the decoded format rather than the file name,
// so a PNG payload behind a .jpg name still takes the re-encode path.
// JPEG content is embedded directly; everything else the decoders can
// read (PNG included, which sidesteps interlaced files the PDF
// embedder rejects) is re-encoded from the decoded pixels.
func (r *Renderer) placeImage(doc *fpdf.Fpdf, path string, x, y float64) error {
	format, err := sniffFormat(path)
	if err != nil {
		return err
	}
	img, err := imaging.Open(path)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	w, h := fitCell(float64(bounds.Dx()), float64(bounds.Dy()))
	x += (layout.CardWidth - w) / 2
	y += (layout.CardHeight - h) / 2

	opt := fpdf.ImageOptions{ReadDpi: false}
	if format == "jpeg" {
		doc.ImageOptions(path, x, y, w, h, false, opt, 0, "")
		return nil
	}
	opt.ImageType = "PNG"
	if doc.GetImageInfo(path) == nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("re-encoding %s: %w", path, err)
		}
		doc.RegisterImageOptionsReader(path, opt, &buf)
	}
	doc.ImageOptions(path, x, y, w, h, false, opt, 0, "")
	return nil
}

// sniffFormat reports the registered decoder name for the file's
// actual content ("jpeg", "png", ...), ignoring its extension.
func sniffFormat(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", err
	}
	return format, nil
}

// fitCell scales an image of srcW x srcH to the largest size that fits
// the card cell without changing its aspect ratio.
func fitCell(srcW, srcH float64) (float64, float64) {
	if srcW <= 0 || srcH <= 0 {
		return layout.CardWidth, layout.CardHeight
	}
	scale := layout.CardWidth / srcW
	if s := layout.CardHeight / srcH; s < scale {
		scale = s
	}
	return srcW * scale, srcH * scale
}
