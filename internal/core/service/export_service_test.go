package service

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubRenderer struct {
	fail  map[domain.Symbology]error
	calls []domain.Symbology
}

func (r *stubRenderer) Render(_ context.Context, sym domain.Symbology, _ string, target ports.Target) (image.Image, error) {
	r.calls = append(r.calls, sym)
	if err := r.fail[sym]; err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, target.Width, target.Height))
	return img, nil
}

type stubCapturer struct {
	surfaces []ports.Surface
	opts     ports.CaptureOptions
	// rendered is the number of renderer calls seen when capture began
	rendered int
	renderer *stubRenderer
}

func (c *stubCapturer) Capture(_ context.Context, _ *domain.LabelDocument, surfaces []ports.Surface, opts ports.CaptureOptions) (image.Image, error) {
	c.surfaces = surfaces
	c.opts = opts
	c.rendered = len(c.renderer.calls)
	return image.NewRGBA(image.Rect(0, 0, 10, 10)), nil
}

type stubPackager struct{ ext string }

func (p stubPackager) Package(_ context.Context, _ image.Image) ([]byte, error) {
	return []byte(p.ext), nil
}
func (p stubPackager) ContentType() string { return "application/x-" + p.ext }
func (p stubPackager) Extension() string   { return p.ext }

func exportDoc() *domain.LabelDocument {
	return &domain.LabelDocument{
		ID:          "label-1",
		ExportScale: 4,
		FileStem:    "royal-mail-tracked24-label",
		Barcodes: domain.BarcodeBlock{Refs: []domain.BarcodeRef{
			{Symbology: domain.SymbologyDataMatrix, Target: "datamatrix", Payload: "JGB"},
			{Symbology: domain.SymbologyCode128, Target: "code128", Payload: "MZ317082951GB"},
		}},
	}
}

func newTestExportService(r *stubRenderer, scale float64) (*ExportService, *stubCapturer) {
	c := &stubCapturer{renderer: r}
	svc := NewExportService(r, c, []ports.Packager{stubPackager{"png"}, stubPackager{"pdf"}}, scale, zerolog.Nop())
	return svc, c
}

func TestExport_RendersBeforeCapture(t *testing.T) {
	r := &stubRenderer{}
	svc, c := newTestExportService(r, 0)

	art, err := svc.Export(context.Background(), exportDoc(), ports.FormatPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.rendered != 2 {
		t.Errorf("expected both barcodes rendered before capture, got %d", c.rendered)
	}
	if art.Filename != "royal-mail-tracked24-label.pdf" {
		t.Errorf("unexpected filename %q", art.Filename)
	}
	if art.ContentType != "application/x-pdf" || string(art.Bytes) != "pdf" {
		t.Errorf("wrong packager used: %s %q", art.ContentType, art.Bytes)
	}
	if c.opts.Scale != 4 {
		t.Errorf("expected layout scale 4, got %v", c.opts.Scale)
	}
	if c.opts.Background != color.White {
		t.Errorf("expected white background")
	}
	if c.surfaces[0].Target.Width != 72 || c.surfaces[1].Target.Width != 400 {
		t.Errorf("unexpected target sizes %+v", c.surfaces)
	}
}

func TestExport_RenderFailureIsIsolated(t *testing.T) {
	boom := errors.New("payload too long")
	r := &stubRenderer{fail: map[domain.Symbology]error{domain.SymbologyDataMatrix: boom}}
	svc, c := newTestExportService(r, 0)

	art, err := svc.Export(context.Background(), exportDoc(), ports.FormatPNG)
	if err != nil {
		t.Fatalf("a failed barcode must not abort the export: %v", err)
	}
	if len(art.RenderFailures) != 1 || !errors.Is(art.RenderFailures[0].Err, boom) {
		t.Fatalf("unexpected failures %+v", art.RenderFailures)
	}
	if len(c.surfaces) != 2 {
		t.Fatalf("expected a blank surface for the failed barcode, got %d surfaces", len(c.surfaces))
	}
	if got := c.surfaces[0].Image.Bounds().Dx(); got != 72 {
		t.Errorf("blank surface has width %d", got)
	}
	if len(r.calls) != 2 {
		t.Errorf("expected the second barcode to still render, got %v", r.calls)
	}
}

func TestExport_ScaleOverride(t *testing.T) {
	svc, c := newTestExportService(&stubRenderer{}, 2)

	if _, err := svc.Export(context.Background(), exportDoc(), ports.FormatPNG); err != nil {
		t.Fatal(err)
	}
	if c.opts.Scale != 2 {
		t.Errorf("expected override scale 2, got %v", c.opts.Scale)
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	r := &stubRenderer{}
	svc, _ := newTestExportService(r, 0)

	_, err := svc.Export(context.Background(), exportDoc(), "gif")
	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if len(r.calls) != 0 {
		t.Error("nothing must render for an unsupported format")
	}
}

func TestExport_CancelledContext(t *testing.T) {
	svc, c := newTestExportService(&stubRenderer{}, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Export(ctx, exportDoc(), ports.FormatPNG); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if c.surfaces != nil {
		t.Error("capture must not run after cancellation")
	}
}
