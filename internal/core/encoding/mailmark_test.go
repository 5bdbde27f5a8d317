package encoding

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/label-system/internal/core/domain"
)

var mailmarkDate = time.Date(2025, time.April, 7, 14, 30, 0, 0, time.UTC)

func sampleMailmarkInput() MailmarkInput {
	return MailmarkInput{
		Reference:         "11-02D 71C AC8",
		SignatureRequired: false,
		Postage:           "£4.29",
		RecipientPostcode: "N4 9PT",
		SenderPostcode:    "M61 0YU",
		RoutingCode:       "",
		Tracking:          "MZ317082951GB",
	}
}

func newTestEncoder(seq int) *MailmarkEncoder {
	return NewMailmarkEncoder("", fixedClock{t: mailmarkDate}, fixedRand{v: seq})
}

func TestMailmarkEncoder_SamplePayload(t *testing.T) {
	p, err := newTestEncoder(0).Encode(sampleMailmarkInput())
	require.NoError(t, err)

	assert.Equal(t,
		"JGB"+"8215FA"+"1102D71CAC8"+"00020001"+"00429"+"070425"+"000"+"062"+
			"MZ317082951GB"+"N49"+"N49PT"+"GB"+"M610YU",
		p.String())
	assert.Empty(t, p.Degradations())
}

func TestMailmarkEncoder_FieldBoundaries(t *testing.T) {
	p, err := newTestEncoder(7).Encode(sampleMailmarkInput())
	require.NoError(t, err)

	want := []MailmarkField{
		{FieldPrefix, "JGB"},
		{FieldAccount, "8215FA"},
		{FieldReference, "1102D71CAC8"},
		{FieldService, "00020001"},
		{FieldPostage, "00429"},
		{FieldDate, "070425"},
		{FieldSequence, "007"},
		{FieldClass, "062"},
		{FieldTracking, "MZ317082951GB"},
		{FieldRoute, "N49"},
		{FieldDestination, "N49PT"},
		{FieldCountry, "GB"},
		{FieldReturn, "M610YU"},
	}
	assert.Equal(t, want, p.Fields())
}

func TestMailmarkEncoder_SignatureSelectsServiceCode(t *testing.T) {
	in := sampleMailmarkInput()
	in.SignatureRequired = true

	p, err := newTestEncoder(0).Encode(in)
	require.NoError(t, err)
	v, _ := p.Field(FieldService)
	assert.Equal(t, ServiceCodeSigned, v)
}

func TestMailmarkEncoder_RoutingCodeOverridesPostcode(t *testing.T) {
	in := sampleMailmarkInput()
	in.RoutingCode = " m 1-b "

	p, err := newTestEncoder(0).Encode(in)
	require.NoError(t, err)
	v, _ := p.Field(FieldRoute)
	assert.Equal(t, "M1-", v)
}

func TestMailmarkEncoder_PostageRounding(t *testing.T) {
	cases := map[string]string{
		"£4.29":     "00429",
		"0.5":       "00050",
		"£1,204.50": "120450",
		"12":        "01200",
		"":          "00000",
	}
	for raw, want := range cases {
		in := sampleMailmarkInput()
		in.Postage = raw
		p, err := newTestEncoder(0).Encode(in)
		require.NoError(t, err, raw)
		v, _ := p.Field(FieldPostage)
		assert.Equal(t, want, v, raw)
	}
}

func TestMailmarkEncoder_UnparsablePostageDegrades(t *testing.T) {
	in := sampleMailmarkInput()
	in.Postage = "free"

	p, err := newTestEncoder(0).Encode(in)
	require.NoError(t, err)
	v, _ := p.Field(FieldPostage)
	assert.Equal(t, "00000", v)
	require.Len(t, p.Degradations(), 1)
	assert.Equal(t, FieldPostage, p.Degradations()[0].Field)
}

func TestMailmarkEncoder_OversizedPostageIsClamped(t *testing.T) {
	in := sampleMailmarkInput()
	in.Postage = "£99999999999999999999"

	p, err := newTestEncoder(0).Encode(in)
	require.NoError(t, err)
	v, _ := p.Field(FieldPostage)
	assert.Equal(t, "99999999", v)
	require.Len(t, p.Degradations(), 1)
	assert.Equal(t, FieldPostage, p.Degradations()[0].Field)
}

func TestMailmarkEncoder_LargestPostageIsNotDegraded(t *testing.T) {
	in := sampleMailmarkInput()
	in.Postage = "£999,999.99"

	p, err := newTestEncoder(0).Encode(in)
	require.NoError(t, err)
	v, _ := p.Field(FieldPostage)
	assert.Equal(t, "99999999", v)
	assert.Empty(t, p.Degradations())
}

func TestMailmarkEncoder_MalformedPostcodesStillEncode(t *testing.T) {
	in := sampleMailmarkInput()
	in.RecipientPostcode = "x"
	in.SenderPostcode = ""

	p, err := newTestEncoder(0).Encode(in)
	require.NoError(t, err)
	route, _ := p.Field(FieldRoute)
	dest, _ := p.Field(FieldDestination)
	ret, _ := p.Field(FieldReturn)
	assert.Equal(t, "X", route)
	assert.Equal(t, "X", dest)
	assert.Equal(t, "", ret)
}

func TestMailmarkEncoder_BadAccountIDRejected(t *testing.T) {
	enc := NewMailmarkEncoder("short", fixedClock{t: mailmarkDate}, fixedRand{})
	_, err := enc.Encode(sampleMailmarkInput())
	assert.True(t, errors.Is(err, domain.ErrInvalidPayload))
}

func TestMailmarkEncoder_OnlySequenceAndDateVary(t *testing.T) {
	a, err := NewMailmarkEncoder("", fixedClock{t: mailmarkDate}, fixedRand{v: 1}).Encode(sampleMailmarkInput())
	require.NoError(t, err)
	b, err := NewMailmarkEncoder("", fixedClock{t: mailmarkDate.AddDate(0, 1, 3)}, fixedRand{v: 999}).Encode(sampleMailmarkInput())
	require.NoError(t, err)

	af, bf := a.Fields(), b.Fields()
	require.Equal(t, len(af), len(bf))
	for i := range af {
		if af[i].Name == FieldDate || af[i].Name == FieldSequence {
			assert.NotEqual(t, af[i].Value, bf[i].Value)
			continue
		}
		assert.Equal(t, af[i], bf[i])
	}
}
