package encoding

import (
	"bytes"
	"encoding/json"
	"strings"
)

// QRPayload is the JSON object encoded into the QR code of standard labels.
// Field order is part of the contract.
type QRPayload struct {
	Tracking  string `json:"tracking"`
	Courier   string `json:"courier"`
	Service   string `json:"service"`
	Postcode  string `json:"postcode"`
	Recipient string `json:"recipient"`
}

// NewQRPayload upper-cases the postcode; everything else is taken as given.
func NewQRPayload(tracking, courierName, service, postcode, recipient string) QRPayload {
	return QRPayload{
		Tracking:  tracking,
		Courier:   courierName,
		Service:   service,
		Postcode:  strings.ToUpper(postcode),
		Recipient: recipient,
	}
}

// String returns the literal QR content. Characters such as '&' are kept
// verbatim rather than escaped.
func (p QRPayload) String() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		// a struct of strings always encodes
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
