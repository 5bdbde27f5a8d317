package encoding

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/ports"
)

const (
	trackingAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	trackingSuffixLen = 14
)

// TrackingGenerator issues synthetic tracking codes. Codes are not unique;
// they only need to look like a courier's tracking numbers.
type TrackingGenerator struct {
	rnd ports.Rand
}

func NewTrackingGenerator(rnd ports.Rand) *TrackingGenerator {
	return &TrackingGenerator{rnd: rnd}
}

// Generate returns the courier's prefix followed by 14 characters of [A-Z0-9].
func (g *TrackingGenerator) Generate(c domain.CourierProfile) string {
	var b strings.Builder
	b.Grow(len(c.TrackingPrefix) + trackingSuffixLen)
	b.WriteString(c.TrackingPrefix)
	for i := 0; i < trackingSuffixLen; i++ {
		b.WriteByte(trackingAlphabet[g.rnd.IntN(len(trackingAlphabet))])
	}
	return b.String()
}

// CryptoRand is a ports.Rand backed by crypto/rand.
type CryptoRand struct{}

func (CryptoRand) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("encoding: crypto/rand unavailable: " + err.Error())
	}
	return int(v.Int64())
}
