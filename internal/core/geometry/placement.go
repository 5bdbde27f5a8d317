// Package geometry places a captured raster on a physical page.
package geometry

import (
	"fmt"
	"math"
)

// PageSize is a page in millimetres.
type PageSize struct {
	WidthMM  float64
	HeightMM float64
}

// Label4x6 is a 4×6 inch thermal label.
var Label4x6 = PageSize{WidthMM: 101.6, HeightMM: 152.4}

// Placement is where and how large an image is drawn on a page, in millimetres.
type Placement struct {
	Scale  float64
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Fit scales an imageW×imageH pixel raster uniformly so that it fits page
// without cropping, and centres it. The leftover space on the non-limiting
// axis is split equally between both margins.
func Fit(imageW, imageH int, page PageSize) (Placement, error) {
	if imageW <= 0 || imageH <= 0 {
		return Placement{}, fmt.Errorf("geometry: image size %dx%d must be positive", imageW, imageH)
	}
	if page.WidthMM <= 0 || page.HeightMM <= 0 {
		return Placement{}, fmt.Errorf("geometry: page size %.2fx%.2f must be positive", page.WidthMM, page.HeightMM)
	}

	scale := math.Min(page.WidthMM/float64(imageW), page.HeightMM/float64(imageH))
	w := float64(imageW) * scale
	h := float64(imageH) * scale

	return Placement{
		Scale:  scale,
		X:      (page.WidthMM - w) / 2,
		Y:      (page.HeightMM - h) / 2,
		Width:  w,
		Height: h,
	}, nil
}
