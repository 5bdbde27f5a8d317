// Package layout assembles renderer-agnostic label documents. A Descriptor
// captures everything that differs between label styles; Builder is shared.
package layout

import (
	"fmt"

	"github.com/99minutos/label-system/internal/core/domain"
)

// Layout keys.
const (
	KeyStandard           = "standard"
	KeyRoyalMailTracked24 = "royal-mail-tracked24"
)

// Descriptor configures which fields a label shows, how they are cased and
// in which order the rows are painted.
type Descriptor struct {
	Key  string
	Rows []domain.Row
	// Symbologies are drawn in this order.
	Symbologies []domain.Symbology

	// UpperCaseFullAddress upper-cases every address line. When false only
	// postcodes are upper-cased.
	UpperCaseFullAddress   bool
	UpperCaseRecipientName bool
	JoinSenderCityPostcode bool
	ShowPhones             bool
	GroupTrackingDisplay   bool
	SignatureCaption       bool

	HeaderCaptions []string
	ReturnHeading  string
	FooterNotice   string
	CarbonNotice   string

	ExportScale float64
	FileStem    string
}

// HasRow reports whether r is painted by this layout.
func (d Descriptor) HasRow(r domain.Row) bool {
	for _, row := range d.Rows {
		if row == r {
			return true
		}
	}
	return false
}

// HasSymbology reports whether s is drawn by this layout.
func (d Descriptor) HasSymbology(s domain.Symbology) bool {
	for _, sym := range d.Symbologies {
		if sym == s {
			return true
		}
	}
	return false
}

// Standard is the multi-courier label with a QR code.
var Standard = Descriptor{
	Key: KeyStandard,
	Rows: []domain.Row{
		domain.RowHeader,
		domain.RowTracking,
		domain.RowRecipient,
		domain.RowSender,
		domain.RowInstructions,
		domain.RowMeta,
		domain.RowFooter,
	},
	Symbologies:            []domain.Symbology{domain.SymbologyQR},
	JoinSenderCityPostcode: true,
	ShowPhones:             true,
	FooterNotice:           "This label was generated for demonstration purposes.",
	ExportScale:            2,
	FileStem:               "shipping-label",
}

// RoyalMailTracked24 mirrors the Royal Mail Tracked 24 label with a Mailmark
// DataMatrix and a Code128 tracking barcode.
var RoyalMailTracked24 = Descriptor{
	Key: KeyRoyalMailTracked24,
	Rows: []domain.Row{
		domain.RowHeader,
		domain.RowRouting,
		domain.RowReference,
		domain.RowBarcodes,
		domain.RowAddress,
		domain.RowFooter,
		domain.RowCarbon,
	},
	Symbologies:            []domain.Symbology{domain.SymbologyDataMatrix, domain.SymbologyCode128},
	UpperCaseRecipientName: true,
	GroupTrackingDisplay:   true,
	SignatureCaption:       true,
	HeaderCaptions:         []string{"Tracked", "24", "Delivered By", "Postage Paid GB"},
	ReturnHeading:          "Return Address",
	CarbonNotice:           "Royal Mail: UK's lowest average parcel carbon footprint 200g CO2e",
	ExportScale:            4,
	FileStem:               "royal-mail-tracked24-label",
}

var descriptors = map[string]Descriptor{
	KeyStandard:           Standard,
	KeyRoyalMailTracked24: RoyalMailTracked24,
}

// Lookup returns the descriptor registered under key.
func Lookup(key string) (Descriptor, error) {
	d, ok := descriptors[key]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", domain.ErrUnknownLayout, key)
	}
	return d, nil
}

// For picks the layout a courier/service pair is printed with.
func For(courier, service string) Descriptor {
	if courier == "royal-mail" && service == "Tracked 24" {
		return RoyalMailTracked24
	}
	return Standard
}
