package encoding

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/ports"
)

// Mailmark constants for the Tracked 24 label.
const (
	MailmarkPrefix           = "JGB"
	DefaultMailmarkAccountID = "8215FA"
	MailmarkClass            = "062"
	MailmarkCountry          = "GB"

	ServiceCodeSigned   = "00010001"
	ServiceCodeUnsigned = "00020001"

	// MaxPostagePence is the largest postage the payload carries (£999,999.99).
	MaxPostagePence = 99999999
)

// Field names of a Mailmark payload, in encoding order.
const (
	FieldPrefix      = "prefix"
	FieldAccount     = "account"
	FieldReference   = "reference"
	FieldService     = "service"
	FieldPostage     = "postage"
	FieldDate        = "date"
	FieldSequence    = "sequence"
	FieldClass       = "class"
	FieldTracking    = "tracking"
	FieldRoute       = "route"
	FieldDestination = "destination"
	FieldCountry     = "country"
	FieldReturn      = "return"
)

var (
	accountPattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)
	digitsPattern  = regexp.MustCompile(`^[0-9]+$`)
)

// MailmarkInput is the raw shipment data that feeds a Mailmark payload.
type MailmarkInput struct {
	Reference         string
	SignatureRequired bool
	Postage           string
	RecipientPostcode string
	SenderPostcode    string
	RoutingCode       string
	Tracking          string
}

// MailmarkField is one sub-field of the payload.
type MailmarkField struct {
	Name  string
	Value string
}

// Degradation records an input that was coerced to a default value.
type Degradation struct {
	Field string
	Raw   string
}

func (d Degradation) String() string {
	return fmt.Sprintf("%s: %q", d.Field, d.Raw)
}

// MailmarkPayload is a validated, ordered set of Mailmark sub-fields.
type MailmarkPayload struct {
	fields       []MailmarkField
	degradations []Degradation
}

// String concatenates the fields with no separators; this is the DataMatrix content.
func (p MailmarkPayload) String() string {
	var b strings.Builder
	for _, f := range p.fields {
		b.WriteString(f.Value)
	}
	return b.String()
}

// Fields returns a copy of the sub-fields in encoding order.
func (p MailmarkPayload) Fields() []MailmarkField {
	return append([]MailmarkField(nil), p.fields...)
}

// Field returns the value of the named sub-field.
func (p MailmarkPayload) Field(name string) (string, bool) {
	for _, f := range p.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Degradations lists inputs that were replaced by defaults.
func (p MailmarkPayload) Degradations() []Degradation {
	return append([]Degradation(nil), p.degradations...)
}

// MailmarkEncoder builds Mailmark DataMatrix payloads. The date and sequence
// digits come from the injected clock and random source.
type MailmarkEncoder struct {
	accountID string
	clock     ports.Clock
	rnd       ports.Rand
}

// NewMailmarkEncoder returns an encoder for accountID. An empty accountID
// selects DefaultMailmarkAccountID.
func NewMailmarkEncoder(accountID string, clock ports.Clock, rnd ports.Rand) *MailmarkEncoder {
	if accountID == "" {
		accountID = DefaultMailmarkAccountID
	}
	return &MailmarkEncoder{accountID: accountID, clock: clock, rnd: rnd}
}

// Encode builds the payload. Postcodes are never validated beyond stripping
// whitespace, so malformed input still encodes; an error is returned only
// when a fixed-width field breaks its layout.
func (e *MailmarkEncoder) Encode(in MailmarkInput) (MailmarkPayload, error) {
	var degraded []Degradation

	postage, ok := ParsePostage(in.Postage)
	if !ok && strings.TrimSpace(in.Postage) != "" {
		degraded = append(degraded, Degradation{Field: FieldPostage, Raw: in.Postage})
	}
	pence, inRange := postagePence(postage)
	if !inRange {
		degraded = append(degraded, Degradation{Field: FieldPostage, Raw: in.Postage})
	}

	service := ServiceCodeUnsigned
	if in.SignatureRequired {
		service = ServiceCodeSigned
	}

	dest := CleanCode(in.RecipientPostcode)
	route := CleanCode(in.RoutingCode)
	if route == "" {
		route = dest
	}

	now := e.clock.Now()

	p := MailmarkPayload{
		fields: []MailmarkField{
			{FieldPrefix, MailmarkPrefix},
			{FieldAccount, e.accountID},
			{FieldReference, CleanReference(in.Reference)},
			{FieldService, service},
			{FieldPostage, fmt.Sprintf("%05d", pence)},
			{FieldDate, now.Format("020106")},
			{FieldSequence, fmt.Sprintf("%03d", e.rnd.IntN(1000))},
			{FieldClass, MailmarkClass},
			{FieldTracking, CleanCode(in.Tracking)},
			{FieldRoute, firstN(route, 3)},
			{FieldDestination, dest},
			{FieldCountry, MailmarkCountry},
			{FieldReturn, CleanCode(in.SenderPostcode)},
		},
		degradations: degraded,
	}
	if err := p.validate(); err != nil {
		return MailmarkPayload{}, err
	}
	return p, nil
}

// postagePence converts pounds to pence. Amounts that are not finite or
// exceed MaxPostagePence are clamped and reported as out of range.
func postagePence(pounds float64) (int64, bool) {
	pence := math.Round(pounds * 100)
	switch {
	case math.IsNaN(pence) || pence < 0:
		return 0, false
	case pence > MaxPostagePence:
		return MaxPostagePence, false
	}
	return int64(pence), true
}

func (p MailmarkPayload) validate() error {
	for _, f := range p.fields {
		var ok bool
		switch f.Name {
		case FieldPrefix:
			ok = f.Value == MailmarkPrefix
		case FieldAccount:
			ok = accountPattern.MatchString(f.Value)
		case FieldService:
			ok = f.Value == ServiceCodeSigned || f.Value == ServiceCodeUnsigned
		case FieldPostage:
			ok = len(f.Value) >= 5 && digitsPattern.MatchString(f.Value)
		case FieldDate:
			ok = len(f.Value) == 6 && digitsPattern.MatchString(f.Value)
		case FieldSequence:
			ok = len(f.Value) == 3 && digitsPattern.MatchString(f.Value)
		case FieldClass:
			ok = f.Value == MailmarkClass
		case FieldRoute:
			ok = utf8.RuneCountInString(f.Value) <= 3
		case FieldCountry:
			ok = f.Value == MailmarkCountry
		default:
			ok = !strings.ContainsFunc(f.Value, unicode.IsSpace)
		}
		if !ok {
			return fmt.Errorf("%w: field %s=%q", domain.ErrInvalidPayload, f.Name, f.Value)
		}
	}
	return nil
}

func firstN(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
