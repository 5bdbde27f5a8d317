package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/99minutos/label-system/internal/core/domain"
)

func TestCleanCode(t *testing.T) {
	assert.Equal(t, "N49PT", CleanCode(" n4 9pt "))
	assert.Equal(t, "MZ317082951GB", CleanCode("mz3170829 51gb"))
	assert.Equal(t, "AB12", CleanCode("a\tb\n1 2"))
}

func TestCleanReference(t *testing.T) {
	assert.Equal(t, "1102D71CAC8", CleanReference("11-02D 71C AC8"))
	assert.Equal(t, "", CleanReference("  - - "))
}

func TestParsePostage(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"£4.29", 4.29, true},
		{"4.29", 4.29, true},
		{"£1,204.50", 1204.50, true},
		{"GBP 3", 3, true},
		{"about £2.5 total", 2.5, true},
		{"", 0, false},
		{"free", 0, false},
		{"£", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParsePostage(tc.in)
		assert.Equal(t, tc.wantOK, ok, "input %q", tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, "input %q", tc.in)
	}
}

func TestNormalize_TrimsEveryField(t *testing.T) {
	in := domain.ShipmentInput{
		RecipientName:     "  Ada Lovelace ",
		RecipientPostcode: " n4 9pt",
		Reference:         "\tREF-1 ",
		RoutingCode:       " n49 ",
		SignatureRequired: true,
	}
	out := Normalize(in)
	assert.Equal(t, "Ada Lovelace", out.RecipientName)
	assert.Equal(t, "n4 9pt", out.RecipientPostcode)
	assert.Equal(t, "REF-1", out.Reference)
	assert.Equal(t, "n49", out.RoutingCode)
	assert.True(t, out.SignatureRequired)
}
