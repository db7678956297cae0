package api

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/proxyprint/proxyprint/internal/images"
	"github.com/proxyprint/proxyprint/internal/layout"
	"github.com/proxyprint/proxyprint/internal/pagination"
	"github.com/proxyprint/proxyprint/internal/paper"
	"github.com/proxyprint/proxyprint/internal/render/pdf"
)

// ErrNoImages indicates an empty input set. Emitting a zero-page
// document is almost never what the caller wants, so the generator
// refuses before touching the output path.
var ErrNoImages = errors.New("no input images")

// Generator is the main API for turning card images into a print sheet
type Generator struct {
	options Options
}

// New creates a new generator with default options
func New() *Generator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new generator with the specified options
func NewWithOptions(options Options) *Generator {
	return &Generator{options: options}
}

// Result describes a completed run: what was placed and the realized
// grid shape for reporting.
type Result struct {
	// Images is the number of input images walked.
	Images int
	// Placed counts images drawn; Failed counts load failures
	// whose slots were left empty.
	Placed int
	Failed int

	Rows    int
	Cols    int
	PerPage int
	Pages   int
	Rotated bool
}

// Summary formats the run report in the shape the CLI prints.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d images, %d*%d per page (%d/page), %d pages",
		r.Images, r.Rows, r.Cols, r.PerPage, r.Pages)
}

// GenerateDir lists the images in inputDir (natural order) and writes
// the sheet document to outputPath.
func (g *Generator) GenerateDir(inputDir, outputPath string) (*Result, error) {
	files, err := images.List(inputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s (supported: png, jpg, jpeg, gif, bmp, tiff, webp)", ErrNoImages, inputDir)
	}
	return g.Generate(files, outputPath)
}

// Generate writes the sheet document for the given ordered image list
// to outputPath, overwriting any existing file. Configuration errors
// abort before the output is touched; per-image load failures are
// logged and skipped.
func (g *Generator) Generate(imageFiles []string, outputPath string) (*Result, error) {
	if len(imageFiles) == 0 {
		return nil, ErrNoImages
	}

	// The zero value means auto; anything else must be one of the
	// named orientations rather than silently falling back.
	switch g.options.Orientation {
	case "", OrientationAuto, OrientationPortrait, OrientationLandscape:
	default:
		return nil, fmt.Errorf("invalid orientation %q (allowed: auto, portrait, landscape)", g.options.Orientation)
	}

	page, err := paper.Resolve(g.options.Paper)
	if err != nil {
		return nil, err
	}

	spec := layout.Spec{
		Margin:      g.options.Margin,
		Gap:         g.options.Gap,
		Orientation: g.options.Orientation,
	}
	plan := layout.Compute(page, spec)

	logger := g.options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if plan.Overflows(page, spec) {
		logger.Warn("page is smaller than one card, cards will overflow the margin",
			zap.String("paper", g.options.Paper))
	}

	renderer := pdf.NewRenderer(logger)
	renderer.CropMarks = g.options.CropMarks
	renderer.BlackBorders = g.options.BlackBorders
	if g.options.CropMarkLength > 0 {
		renderer.MarkLength = g.options.CropMarkLength
	}
	renderer.MarkOffset = g.options.CropMarkOffset

	stats, err := renderer.Render(imageFiles, page, plan, outputPath, pdf.RenderOptions{
		Title:    g.options.Title,
		Author:   g.options.Author,
		Subject:  g.options.Subject,
		Keywords: g.options.Keywords,
		Creator:  "proxyprint",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	return &Result{
		Images:  len(imageFiles),
		Placed:  stats.Placed,
		Failed:  stats.Failed,
		Rows:    plan.Rows,
		Cols:    plan.Cols,
		PerPage: plan.PerPage(),
		Pages:   pagination.PageCount(len(imageFiles), plan),
		Rotated: plan.Rotated,
	}, nil
}

// WithOption returns a new generator with the specified option applied
func (g *Generator) WithOption(option Option) *Generator {
	newOptions := g.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}
