// Package encoding turns cleaned shipment fields into barcode payloads and
// tracking identifiers.
package encoding

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/99minutos/label-system/internal/core/domain"
)

var postageToken = regexp.MustCompile(`\d+(?:\.\d+)?|\.\d+`)

// RemoveSpaces drops every whitespace rune from s.
func RemoveSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// CleanCode strips whitespace and upper-cases s. Postcodes, tracking numbers
// and routing codes are all encoded in this form.
func CleanCode(s string) string {
	return strings.ToUpper(RemoveSpaces(s))
}

// CleanReference strips whitespace and hyphens and upper-cases s.
func CleanReference(s string) string {
	return CleanCode(strings.ReplaceAll(s, "-", ""))
}

// ParsePostage reads a currency amount such as "£1,204.50" or "4.29".
// The second result is false when no number could be found, in which case
// the amount is 0.
func ParsePostage(s string) (float64, bool) {
	s = strings.NewReplacer("£", "", ",", "").Replace(s)
	tok := postageToken.FindString(s)
	if tok == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Normalize trims every free-text field of in.
func Normalize(in domain.ShipmentInput) domain.ShipmentInput {
	for _, f := range []*string{
		&in.Courier, &in.Service,
		&in.SenderName, &in.SenderAddr1, &in.SenderAddr2, &in.SenderCity, &in.SenderPostcode, &in.SenderPhone,
		&in.RecipientName, &in.RecipientAddr1, &in.RecipientAddr2, &in.RecipientCity, &in.RecipientPostcode, &in.RecipientPhone,
		&in.Weight, &in.Reference, &in.Instructions,
		&in.Tracking, &in.ParcelType, &in.Postage, &in.PostByDate, &in.PrintedFrom, &in.SellerType,
		&in.SortCode, &in.RoutingCode,
	} {
		*f = strings.TrimSpace(*f)
	}
	return in
}
