package layout

import (
	"fmt"
	"strings"
	"time"

	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/encoding"
)

// BuildInput is everything the builder needs. Shipment must already be
// normalized and validated; the builder never fills in missing mandatory fields.
type BuildInput struct {
	Descriptor Descriptor
	Courier    domain.CourierProfile
	Service    string
	Shipment   domain.ShipmentInput
	Tracking   string
	Linear     encoding.LinearBarcode
	DataMatrix string
	QR         string
	Date       time.Time
}

// Builder assembles label documents. It is stateless and safe for concurrent use.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build returns a new document for in.
func (b *Builder) Build(in BuildInput) domain.LabelDocument {
	d := in.Descriptor
	s := in.Shipment

	doc := domain.LabelDocument{
		Layout:       d.Key,
		Courier:      in.Courier.Key,
		Service:      in.Service,
		Tracking:     in.Tracking,
		Rows:         append([]domain.Row(nil), d.Rows...),
		Reference:    s.Reference,
		Instructions: s.Instructions,
		ExportScale:  d.ExportScale,
		FileStem:     d.FileStem,
	}

	doc.Header = domain.HeaderBlock{
		CourierName:  in.Courier.DisplayName,
		ServiceBadge: in.Service,
		Captions:     append([]string(nil), d.HeaderCaptions...),
	}
	if d.SignatureCaption && !s.SignatureRequired {
		doc.Header.SignatureText = "No Signature"
	}

	if d.HasRow(domain.RowRouting) {
		doc.Routing = domain.RoutingBlock{
			SortCode:    strings.ToUpper(s.SortCode),
			RoutingCode: strings.ToUpper(s.RoutingCode),
			ParcelType:  s.ParcelType,
			Weight:      s.Weight,
		}
	}

	doc.Barcodes = b.barcodes(in)
	doc.Address = domain.AddressBlock{
		Recipient: b.recipientLines(d, s),
		Return:    b.returnLines(d, s),
	}

	if d.HasRow(domain.RowMeta) {
		doc.Meta = []domain.MetaItem{
			{Label: "Weight", Value: orNA(weightDisplay(s.Weight))},
			{Label: "Reference", Value: orNA(s.Reference)},
			{Label: "Date", Value: in.Date.Format("02/01/2006")},
		}
	}

	doc.Footer = domain.FooterBlock{
		Postage:      PostageDisplay(s.Postage),
		PostBy:       s.PostByDate,
		PrintedFrom:  s.PrintedFrom,
		SellerType:   strings.ToUpper(s.SellerType),
		CarbonNotice: d.CarbonNotice,
		Notice:       d.FooterNotice,
	}

	return doc
}

func (b *Builder) barcodes(in BuildInput) domain.BarcodeBlock {
	d := in.Descriptor
	block := domain.BarcodeBlock{TrackingDisplay: in.Tracking}
	if d.GroupTrackingDisplay {
		block.TrackingDisplay = in.Linear.Display
	}
	for _, sym := range d.Symbologies {
		var payload string
		switch sym {
		case domain.SymbologyDataMatrix:
			block.DataMatrix = in.DataMatrix
			payload = in.DataMatrix
		case domain.SymbologyCode128:
			block.LinearContent = in.Linear.Content
			payload = in.Linear.Content
		case domain.SymbologyQR:
			block.QR = in.QR
			payload = in.QR
		}
		block.Refs = append(block.Refs, domain.BarcodeRef{Symbology: sym, Target: string(sym), Payload: payload})
	}
	return block
}

func (b *Builder) recipientLines(d Descriptor, s domain.ShipmentInput) []string {
	name := s.RecipientName
	if d.UpperCaseRecipientName {
		name = strings.ToUpper(name)
	}
	lines := []string{
		b.addressLine(d, name),
		b.addressLine(d, s.RecipientAddr1),
		b.addressLine(d, s.RecipientAddr2),
		b.addressLine(d, s.RecipientCity),
		strings.ToUpper(s.RecipientPostcode),
	}
	if d.ShowPhones && s.RecipientPhone != "" {
		lines = append(lines, "Tel: "+s.RecipientPhone)
	}
	return compact(lines)
}

func (b *Builder) returnLines(d Descriptor, s domain.ShipmentInput) []string {
	lines := []string{
		b.addressLine(d, s.SenderName),
		b.addressLine(d, s.SenderAddr1),
		b.addressLine(d, s.SenderAddr2),
	}
	postcode := strings.ToUpper(s.SenderPostcode)
	if d.JoinSenderCityPostcode {
		lines = append(lines, strings.TrimSpace(b.addressLine(d, s.SenderCity)+" "+postcode))
	} else {
		lines = append(lines, b.addressLine(d, s.SenderCity), postcode)
	}
	if d.ShowPhones && s.SenderPhone != "" {
		lines = append(lines, "Tel: "+s.SenderPhone)
	}
	lines = compact(lines)
	if d.ReturnHeading != "" {
		lines = append([]string{d.ReturnHeading}, lines...)
	}
	return lines
}

func (b *Builder) addressLine(d Descriptor, s string) string {
	if d.UpperCaseFullAddress {
		return strings.ToUpper(s)
	}
	return s
}

// PostageDisplay renders a postage amount as "£x.xx", or "" when the amount
// is zero or cannot be read.
func PostageDisplay(raw string) string {
	v, ok := encoding.ParsePostage(raw)
	if !ok || v <= 0 {
		return ""
	}
	return fmt.Sprintf("£%.2f", v)
}

func weightDisplay(w string) string {
	if w == "" {
		return ""
	}
	return w + " kg"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func compact(lines []string) []string {
	out := lines[:0]
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
