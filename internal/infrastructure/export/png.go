package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
)

type PNGPackager struct{}

func NewPNGPackager() *PNGPackager {
	return &PNGPackager{}
}

func (p *PNGPackager) Package(_ context.Context, img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *PNGPackager) ContentType() string { return "image/png" }
func (p *PNGPackager) Extension() string   { return "png" }
