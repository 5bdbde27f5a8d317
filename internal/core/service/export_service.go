package service

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/rs/zerolog"

	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/ports"
)

// Surface sizes per symbology, in pixels before export scaling.
var targetSizes = map[domain.Symbology]image.Point{
	domain.SymbologyDataMatrix: {X: 72, Y: 72},
	domain.SymbologyCode128:    {X: 400, Y: 72},
	domain.SymbologyQR:         {X: 100, Y: 100},
}

// ExportService renders every barcode of a document, captures the label and
// packages it. Rendering always finishes before capture starts.
type ExportService struct {
	renderer  ports.Renderer
	capturer  ports.Capturer
	packagers map[ports.ExportFormat]ports.Packager
	scale     float64
	logger    zerolog.Logger
}

// NewExportService registers one packager per extension. A positive scale
// overrides the layout's capture scale.
func NewExportService(renderer ports.Renderer, capturer ports.Capturer, packagers []ports.Packager, scale float64, logger zerolog.Logger) *ExportService {
	byFormat := make(map[ports.ExportFormat]ports.Packager, len(packagers))
	for _, p := range packagers {
		byFormat[ports.ExportFormat(p.Extension())] = p
	}
	return &ExportService{renderer: renderer, capturer: capturer, packagers: byFormat, scale: scale, logger: logger}
}

func (s *ExportService) Export(ctx context.Context, doc *domain.LabelDocument, format ports.ExportFormat) (*ports.ExportArtifact, error) {
	pkg, ok := s.packagers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	surfaces, failures := s.render(ctx, doc)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := s.capturer.Capture(ctx, doc, surfaces, ports.CaptureOptions{
		Scale:      s.captureScale(doc),
		Background: color.White,
	})
	if err != nil {
		return nil, fmt.Errorf("capture label: %w", err)
	}

	data, err := pkg.Package(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("package label: %w", err)
	}

	stem := doc.FileStem
	if stem == "" {
		stem = "label"
	}

	s.logger.Info().
		Str("label_id", doc.ID).
		Str("format", string(format)).
		Int("bytes", len(data)).
		Int("render_failures", len(failures)).
		Msg("label exported")

	return &ports.ExportArtifact{
		Bytes:          data,
		ContentType:    pkg.ContentType(),
		Filename:       stem + "." + pkg.Extension(),
		RenderFailures: failures,
	}, nil
}

// render draws each barcode reference. A failed barcode is logged, left
// blank and does not stop the others.
func (s *ExportService) render(ctx context.Context, doc *domain.LabelDocument) ([]ports.Surface, []ports.RenderFailure) {
	var (
		surfaces []ports.Surface
		failures []ports.RenderFailure
	)
	for _, ref := range doc.Barcodes.Refs {
		target := targetFor(ref)
		img, err := s.renderer.Render(ctx, ref.Symbology, ref.Payload, target)
		if err != nil {
			s.logger.Error().Err(err).
				Str("label_id", doc.ID).
				Str("symbology", string(ref.Symbology)).
				Msg("barcode render failed")
			failures = append(failures, ports.RenderFailure{Symbology: ref.Symbology, Target: target.Name, Err: err})
			img = blank(target)
		}
		surfaces = append(surfaces, ports.Surface{Target: target, Image: img})
	}
	return surfaces, failures
}

func (s *ExportService) captureScale(doc *domain.LabelDocument) float64 {
	if s.scale > 0 {
		return s.scale
	}
	if doc.ExportScale > 0 {
		return doc.ExportScale
	}
	return 1
}

func targetFor(ref domain.BarcodeRef) ports.Target {
	size, ok := targetSizes[ref.Symbology]
	if !ok {
		size = image.Point{X: 100, Y: 100}
	}
	return ports.Target{Name: ref.Target, Width: size.X, Height: size.Y}
}

func blank(t ports.Target) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}
