package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/go-pdf/fpdf"

	"github.com/99minutos/label-system/internal/core/geometry"
	"github.com/99minutos/label-system/internal/core/ports"
)

const pdfImageName = "label"

// PDFPackager writes a single-page PDF with the raster fitted and centred on
// the page.
type PDFPackager struct {
	page  geometry.PageSize
	clock ports.Clock
}

// NewPDFPackager uses a 4×6 inch page. clock stamps the document dates.
func NewPDFPackager(clock ports.Clock) *PDFPackager {
	return &PDFPackager{page: geometry.Label4x6, clock: clock}
}

func (p *PDFPackager) Package(_ context.Context, img image.Image) ([]byte, error) {
	b := img.Bounds()
	place, err := geometry.Fit(b.Dx(), b.Dy(), p.page)
	if err != nil {
		return nil, err
	}

	var raster bytes.Buffer
	if err := png.Encode(&raster, img); err != nil {
		return nil, fmt.Errorf("encode pdf raster: %w", err)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: p.page.WidthMM, Ht: p.page.HeightMM},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	now := p.clock.Now()
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(pdfImageName, opts, &raster)
	pdf.ImageOptions(pdfImageName, place.X, place.Y, place.Width, place.Height, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return out.Bytes(), nil
}

func (p *PDFPackager) ContentType() string { return "application/pdf" }
func (p *PDFPackager) Extension() string   { return "pdf" }
