package domain

import "time"

// Row names one horizontal band of a label, in the order a renderer paints them.
type Row string

const (
	RowHeader       Row = "header"
	RowRouting      Row = "routing"
	RowReference    Row = "reference"
	RowTracking     Row = "tracking"
	RowBarcodes     Row = "barcodes"
	RowRecipient    Row = "recipient"
	RowSender       Row = "sender"
	RowAddress      Row = "address"
	RowInstructions Row = "instructions"
	RowMeta         Row = "meta"
	RowFooter       Row = "footer"
	RowCarbon       Row = "carbon"
)

// Symbology identifies a barcode kind drawn onto a label.
type Symbology string

const (
	SymbologyDataMatrix Symbology = "datamatrix"
	SymbologyCode128    Symbology = "code128"
	SymbologyQR         Symbology = "qr"
)

// HeaderBlock is the top band of the label.
type HeaderBlock struct {
	CourierName   string   `json:"courier_name"`
	ServiceBadge  string   `json:"service_badge"`
	SignatureText string   `json:"signature_text,omitempty"`
	Captions      []string `json:"captions,omitempty"`
}

// RoutingBlock carries the sortation codes and parcel summary.
type RoutingBlock struct {
	SortCode    string `json:"sort_code,omitempty"`
	RoutingCode string `json:"routing_code,omitempty"`
	ParcelType  string `json:"parcel_type,omitempty"`
	Weight      string `json:"weight,omitempty"`
}

// BarcodeRef points a renderer at the payload to draw into a named target.
type BarcodeRef struct {
	Symbology Symbology `json:"symbology"`
	Target    string    `json:"target"`
	Payload   string    `json:"payload"`
}

// BarcodeBlock holds every machine-readable payload of the label.
type BarcodeBlock struct {
	DataMatrix      string       `json:"datamatrix,omitempty"`
	LinearContent   string       `json:"linear_content,omitempty"`
	QR              string       `json:"qr,omitempty"`
	TrackingDisplay string       `json:"tracking_display"`
	Refs            []BarcodeRef `json:"refs"`
}

// AddressBlock holds the display lines of both parties.
type AddressBlock struct {
	Recipient []string `json:"recipient"`
	Return    []string `json:"return"`
}

// MetaItem is one labelled value of the meta row.
type MetaItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FooterBlock is the bottom band of the label.
type FooterBlock struct {
	Postage      string `json:"postage,omitempty"`
	PostBy       string `json:"post_by,omitempty"`
	PrintedFrom  string `json:"printed_from,omitempty"`
	SellerType   string `json:"seller_type,omitempty"`
	CarbonNotice string `json:"carbon_notice,omitempty"`
	Notice       string `json:"notice,omitempty"`
}

// LabelDocument is the renderer-agnostic model of one generated label. It is
// built fresh on every generate call and never mutated afterwards.
type LabelDocument struct {
	ID           string       `json:"id"`
	Layout       string       `json:"layout"`
	Courier      string       `json:"courier"`
	Service      string       `json:"service"`
	Tracking     string       `json:"tracking"`
	GeneratedAt  time.Time    `json:"generated_at"`
	Rows         []Row        `json:"rows"`
	Header       HeaderBlock  `json:"header"`
	Routing      RoutingBlock `json:"routing"`
	Barcodes     BarcodeBlock `json:"barcodes"`
	Address      AddressBlock `json:"address"`
	Meta         []MetaItem   `json:"meta,omitempty"`
	Footer       FooterBlock  `json:"footer"`
	Reference    string       `json:"reference,omitempty"`
	Instructions string       `json:"instructions,omitempty"`
	ExportScale  float64      `json:"export_scale"`
	FileStem     string       `json:"file_stem"`
}
