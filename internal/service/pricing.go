package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecoezer/byaliundmesut/internal/domain"
)

// Quote is the derived monetary view of a cart for a chosen fulfillment
// mode and zone. It is recomputed from scratch on every call; nothing here
// caches or mutates state.
type Quote struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	Total           decimal.Decimal `json:"total"`
	CanOrder        bool            `json:"can_order"`
	MinOrderMessage string          `json:"min_order_message,omitempty"`
}

// EffectivePrice is the unit price of a line: the selected size's price (or
// the base price) plus the fixed surcharge per selected extra.
func EffectivePrice(line domain.OrderLine) decimal.Decimal {
	price := line.MenuItem.Price
	if line.SelectedSize != nil {
		price = line.SelectedSize.Price
	}
	if n := len(line.SelectedExtras); n > 0 {
		price = price.Add(domain.ExtraUnitPrice.Mul(decimal.NewFromInt(int64(n))))
	}
	return price
}

// LineTotal is the line's unit price times its quantity.
func LineTotal(line domain.OrderLine) decimal.Decimal {
	return EffectivePrice(line).Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// ComputeQuote derives subtotal, delivery fee, grand total and order
// eligibility. zone may be nil; for delivery that blocks ordering until a
// zone is chosen. An empty cart never qualifies regardless of mode.
func ComputeQuote(lines []domain.OrderLine, mode domain.FulfillmentMode, zone *domain.DeliveryZone) Quote {
	q := Quote{
		Subtotal:    decimal.Zero,
		DeliveryFee: decimal.Zero,
	}
	for _, l := range lines {
		q.Subtotal = q.Subtotal.Add(LineTotal(l))
	}

	q.CanOrder = len(lines) > 0
	if mode == domain.ModeDelivery {
		if zone == nil {
			q.CanOrder = false
		} else {
			q.DeliveryFee = zone.Fee
			if q.Subtotal.LessThan(zone.MinOrder) {
				q.CanOrder = false
				q.MinOrderMessage = fmt.Sprintf("Mindestbestellwert für %s: %s €",
					zone.Label, domain.FormatEUR(zone.MinOrder))
			}
		}
	}

	q.Total = q.Subtotal.Add(q.DeliveryFee)
	return q
}
