package ports

import (
	"context"
	"image"
	"image/color"

	"github.com/99minutos/label-system/internal/core/domain"
)

// Target describes the surface a barcode is drawn into.
type Target struct {
	Name   string
	Width  int
	Height int
}

// Renderer draws barcode payloads. Given the same payload and target it must
// produce the same image.
type Renderer interface {
	Render(ctx context.Context, symbology domain.Symbology, payload string, target Target) (image.Image, error)
}

// CaptureOptions mirrors the options of a raster capture.
type CaptureOptions struct {
	Scale      float64
	Background color.Color
}

// Capturer turns a label document and its rendered surfaces into one raster.
type Capturer interface {
	Capture(ctx context.Context, doc *domain.LabelDocument, surfaces []Surface, opts CaptureOptions) (image.Image, error)
}

// Surface is a rendered barcode bound to its target.
type Surface struct {
	Target Target
	Image  image.Image
}

// Packager wraps a captured raster into file bytes.
type Packager interface {
	Package(ctx context.Context, img image.Image) ([]byte, error)
	ContentType() string
	Extension() string
}
