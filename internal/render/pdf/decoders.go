package pdf

// Register extra image decoders so imaging.Open can read more than the
// stdlib formats. Blank imports hook into each package's init().
import (
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)
