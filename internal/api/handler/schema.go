package handler

import (
	"time"

	"github.com/99minutos/label-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// --- Request types ---

// shipmentFields is the editable field set of a label. It is the body of
// label requests and of template writes.
type shipmentFields struct {
	Courier string `json:"courier" validate:"max=64"`
	Service string `json:"service" validate:"max=64"`

	SenderName     string `json:"sender_name"     validate:"max=100"`
	SenderAddr1    string `json:"sender_addr1"    validate:"max=100"`
	SenderAddr2    string `json:"sender_addr2"    validate:"max=100"`
	SenderCity     string `json:"sender_city"     validate:"max=60"`
	SenderPostcode string `json:"sender_postcode" validate:"max=16"`
	SenderPhone    string `json:"sender_phone"    validate:"max=32"`

	RecipientName     string `json:"recipient_name"     validate:"max=100"`
	RecipientAddr1    string `json:"recipient_addr1"    validate:"max=100"`
	RecipientAddr2    string `json:"recipient_addr2"    validate:"max=100"`
	RecipientCity     string `json:"recipient_city"     validate:"max=60"`
	RecipientPostcode string `json:"recipient_postcode" validate:"max=16"`
	RecipientPhone    string `json:"recipient_phone"    validate:"max=32"`

	Weight       string `json:"weight"       validate:"max=16"`
	Reference    string `json:"reference"    validate:"max=64"`
	Instructions string `json:"instructions" validate:"max=300"`

	Tracking          string `json:"tracking"           validate:"max=40"`
	SignatureRequired bool   `json:"signature_required"`
	ParcelType        string `json:"parcel_type"        validate:"max=40"`
	Postage           string `json:"postage"            validate:"max=20"`
	PostByDate        string `json:"post_by_date"       validate:"max=20"`
	PrintedFrom       string `json:"printed_from"       validate:"max=60"`
	SellerType        string `json:"seller_type"        validate:"max=40"`
	SortCode          string `json:"sort_code"          validate:"max=10"`
	RoutingCode       string `json:"routing_code"       validate:"max=10"`
}

// --- Response types ---

type labelResponse struct {
	Label             *domain.LabelDocument `json:"label"`
	GeneratedTracking bool                  `json:"generated_tracking"`
	Degradations      []string              `json:"degradations,omitempty"`
}

type batchItemResponse struct {
	Index  int                   `json:"index"`
	Label  *domain.LabelDocument `json:"label,omitempty"`
	Error  string                `json:"error,omitempty"`
	Fields []string              `json:"fields,omitempty"`
}

type batchResponse struct {
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Results   []batchItemResponse `json:"results"`
}

type templateResponse struct {
	Name      string         `json:"name"`
	Fields    shipmentFields `json:"fields"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type templateListResponse struct {
	Templates []string `json:"templates"`
}

type courierResponse struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	TrackingPrefix string   `json:"tracking_prefix"`
	DefaultService string   `json:"default_service"`
	Services       []string `json:"services"`
}

type courierListResponse struct {
	Couriers []courierResponse `json:"couriers"`
}

type trackingResponse struct {
	Courier  string `json:"courier"`
	Tracking string `json:"tracking"`
}
