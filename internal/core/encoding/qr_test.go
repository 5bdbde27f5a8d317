package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQRPayload_KeyOrderAndCasing(t *testing.T) {
	p := NewQRPayload("RMABC", "Royal Mail", "First Class", "n4 9pt", "Ada & Co")
	assert.Equal(t,
		`{"tracking":"RMABC","courier":"Royal Mail","service":"First Class","postcode":"N4 9PT","recipient":"Ada & Co"}`,
		p.String())
}
