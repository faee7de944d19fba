package domain

import "github.com/shopspring/decimal"

type FulfillmentMode string

const (
	ModePickup   FulfillmentMode = "pickup"
	ModeDelivery FulfillmentMode = "delivery"
)

func (m FulfillmentMode) Valid() bool {
	return m == ModePickup || m == ModeDelivery
}

// Label returns the customer-facing German label.
func (m FulfillmentMode) Label() string {
	if m == ModeDelivery {
		return "Lieferung"
	}
	return "Abholung"
}

type DeliveryTime string

const (
	TimeASAP     DeliveryTime = "asap"
	TimeSpecific DeliveryTime = "specific"
)

// DeliveryZone is one row of the static zone table: a delivery area with
// its minimum order value and flat fee.
type DeliveryZone struct {
	Key      string          `json:"key" mapstructure:"key"`
	Label    string          `json:"label" mapstructure:"label"`
	MinOrder decimal.Decimal `json:"min_order" mapstructure:"min_order"`
	Fee      decimal.Decimal `json:"fee" mapstructure:"fee"`
}

// OrderDraft carries the customer-supplied checkout fields. It is ephemeral
// and never persisted.
type OrderDraft struct {
	OrderType    FulfillmentMode `json:"order_type"`
	DeliveryZone string          `json:"delivery_zone,omitempty"`
	DeliveryTime DeliveryTime    `json:"delivery_time"`
	SpecificTime string          `json:"specific_time,omitempty"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	Street       string          `json:"street,omitempty"`
	HouseNumber  string          `json:"house_number,omitempty"`
	Postcode     string          `json:"postcode,omitempty"`
	Note         string          `json:"note,omitempty"`
}
