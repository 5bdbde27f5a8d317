// Package render draws barcode payloads into raster surfaces.
package render

import (
	"context"
	"fmt"
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/datamatrix"
	"github.com/boombuler/barcode/qr"

	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/ports"
)

// BarcodeRenderer implements ports.Renderer. It holds no state; output
// depends only on the payload and the target size.
type BarcodeRenderer struct{}

func NewBarcodeRenderer() *BarcodeRenderer {
	return &BarcodeRenderer{}
}

func (r *BarcodeRenderer) Render(ctx context.Context, sym domain.Symbology, payload string, target ports.Target) (img image.Image, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if payload == "" {
		return nil, fmt.Errorf("render %s: empty payload", sym)
	}
	if target.Width <= 0 || target.Height <= 0 {
		return nil, fmt.Errorf("render %s: invalid target %dx%d", sym, target.Width, target.Height)
	}

	defer func() {
		if rec := recover(); rec != nil {
			img, err = nil, fmt.Errorf("render %s: %v", sym, rec)
		}
	}()

	code, err := encode(sym, payload)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", sym, err)
	}
	scaled, err := barcode.Scale(code, target.Width, target.Height)
	if err != nil {
		return nil, fmt.Errorf("render %s into %s: %w", sym, target.Name, err)
	}
	return scaled, nil
}

func encode(sym domain.Symbology, payload string) (barcode.Barcode, error) {
	switch sym {
	case domain.SymbologyDataMatrix:
		return datamatrix.Encode(payload)
	case domain.SymbologyCode128:
		return code128.Encode(payload)
	case domain.SymbologyQR:
		return qr.Encode(payload, qr.M, qr.Auto)
	default:
		return nil, fmt.Errorf("unsupported symbology %q", sym)
	}
}
