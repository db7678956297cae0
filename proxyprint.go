package proxyprint

import (
	"github.com/proxyprint/proxyprint/pkg/api"
)

type Generator = api.Generator
type Options = api.Options
type Option = api.Option
type Orientation = api.Orientation
type Result = api.Result

func New() *Generator                           { return api.New() }
func NewWithOptions(options Options) *Generator { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	WithPaper        = api.WithPaper
	WithMarginMM     = api.WithMarginMM
	WithGapMM        = api.WithGapMM
	WithOrientation  = api.WithOrientation
	WithCropMarks    = api.WithCropMarks
	WithBlackBorders = api.WithBlackBorders
	WithTitle        = api.WithTitle
	WithAuthor       = api.WithAuthor
	WithLogger       = api.WithLogger

	ErrNoImages = api.ErrNoImages
)

const (
	OrientationAuto      = api.OrientationAuto
	OrientationPortrait  = api.OrientationPortrait
	OrientationLandscape = api.OrientationLandscape
)
