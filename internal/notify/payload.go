package notify

// The notification endpoint predates this service and expects the
// storefront's original camelCase field names with plain JSON numbers for
// all amounts. Do not rename or re-type.

type MenuItemPayload struct {
	ID     int     `json:"id"`
	Number string  `json:"number"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

type SizePayload struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

type OrderItemPayload struct {
	MenuItem            MenuItemPayload `json:"menuItem"`
	Quantity            int             `json:"quantity"`
	SelectedSize        *SizePayload    `json:"selectedSize,omitempty"`
	SelectedIngredients []string        `json:"selectedIngredients,omitempty"`
	SelectedExtras      []string        `json:"selectedExtras,omitempty"`
	SelectedPastaType   string          `json:"selectedPastaType,omitempty"`
	SelectedSauce       string          `json:"selectedSauce,omitempty"`
}

// OrderPayload is the JSON body POSTed to the email notification endpoint.
type OrderPayload struct {
	OrderType    string             `json:"orderType"`
	DeliveryZone string             `json:"deliveryZone,omitempty"`
	DeliveryTime string             `json:"deliveryTime"`
	SpecificTime string             `json:"specificTime,omitempty"`
	Name         string             `json:"name"`
	Phone        string             `json:"phone"`
	Street       string             `json:"street,omitempty"`
	HouseNumber  string             `json:"houseNumber,omitempty"`
	Postcode     string             `json:"postcode,omitempty"`
	Note         string             `json:"note,omitempty"`
	OrderItems   []OrderItemPayload `json:"orderItems"`
	Subtotal     float64            `json:"subtotal"`
	DeliveryFee  float64            `json:"deliveryFee"`
	Total        float64            `json:"total"`
}
