// Package export composes rendered barcode surfaces into a single raster and
// packages it as PNG or PDF.
package export

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/ports"
)

// sheetPadding is the gap around and between surfaces, in unscaled pixels.
const sheetPadding = 16

var errNothingToCapture = errors.New("capture: document has no surfaces")

// SheetCapturer stacks surfaces top to bottom in document order, each centred
// horizontally, on a canvas of the background colour.
type SheetCapturer struct{}

func NewSheetCapturer() *SheetCapturer {
	return &SheetCapturer{}
}

func (c *SheetCapturer) Capture(ctx context.Context, _ *domain.LabelDocument, surfaces []ports.Surface, opts ports.CaptureOptions) (image.Image, error) {
	if len(surfaces) == 0 {
		return nil, errNothingToCapture
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}

	width, height := 0, sheetPadding
	for _, s := range surfaces {
		if s.Target.Width > width {
			width = s.Target.Width
		}
		height += s.Target.Height + sheetPadding
	}
	width += 2 * sheetPadding

	px := func(v int) int { return int(math.Round(float64(v) * scale)) }

	canvas := image.NewRGBA(image.Rect(0, 0, px(width), px(height)))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	y := sheetPadding
	for _, s := range surfaces {
		x := (width - s.Target.Width) / 2
		dst := image.Rect(px(x), px(y), px(x+s.Target.Width), px(y+s.Target.Height))
		if s.Image != nil {
			draw.NearestNeighbor.Scale(canvas, dst, s.Image, s.Image.Bounds(), draw.Over, nil)
		}
		y += s.Target.Height + sheetPadding
	}
	return canvas, nil
}
