package domain

import "time"

// NamedTemplate is a persisted snapshot of shipment fields, keyed by Name.
type NamedTemplate struct {
	Name      string        `json:"name" bson:"name"`
	Fields    ShipmentInput `json:"fields" bson:"fields"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
