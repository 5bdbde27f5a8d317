package domain

// ShipmentInput is the raw snapshot of one label request. It is also the
// field set persisted by named templates.
type ShipmentInput struct {
	Courier string `json:"courier" bson:"courier"`
	Service string `json:"service" bson:"service"`

	SenderName     string `json:"sender_name" bson:"sender_name"`
	SenderAddr1    string `json:"sender_addr1" bson:"sender_addr1"`
	SenderAddr2    string `json:"sender_addr2" bson:"sender_addr2"`
	SenderCity     string `json:"sender_city" bson:"sender_city"`
	SenderPostcode string `json:"sender_postcode" bson:"sender_postcode"`
	SenderPhone    string `json:"sender_phone" bson:"sender_phone"`

	RecipientName     string `json:"recipient_name" bson:"recipient_name"`
	RecipientAddr1    string `json:"recipient_addr1" bson:"recipient_addr1"`
	RecipientAddr2    string `json:"recipient_addr2" bson:"recipient_addr2"`
	RecipientCity     string `json:"recipient_city" bson:"recipient_city"`
	RecipientPostcode string `json:"recipient_postcode" bson:"recipient_postcode"`
	RecipientPhone    string `json:"recipient_phone" bson:"recipient_phone"`

	Weight       string `json:"weight" bson:"weight"`
	Reference    string `json:"reference" bson:"reference"`
	Instructions string `json:"instructions" bson:"instructions"`

	// Tracking is optional; an identifier is generated when it is empty.
	Tracking          string `json:"tracking" bson:"tracking"`
	SignatureRequired bool   `json:"signature_required" bson:"signature_required"`
	ParcelType        string `json:"parcel_type" bson:"parcel_type"`
	Postage           string `json:"postage" bson:"postage"`
	PostByDate        string `json:"post_by_date" bson:"post_by_date"`
	PrintedFrom       string `json:"printed_from" bson:"printed_from"`
	SellerType        string `json:"seller_type" bson:"seller_type"`
	SortCode          string `json:"sort_code" bson:"sort_code"`
	RoutingCode       string `json:"routing_code" bson:"routing_code"`
}
