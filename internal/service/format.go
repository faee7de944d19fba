package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ecoezer/byaliundmesut/internal/domain"
)

// FormatOrderMessage renders the customer-facing order text sent over the
// chat channel. The output is deterministic: same draft, lines and quote
// always produce byte-identical text.
func FormatOrderMessage(restaurantName string, draft domain.OrderDraft, zone *domain.DeliveryZone, lines []domain.OrderLine, quote Quote) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🍕 *Neue Bestellung - %s*\n\n", restaurantName)

	fmt.Fprintf(&b, "👤 *Kunde:* %s\n", draft.Name)
	fmt.Fprintf(&b, "📞 *Telefon:* %s\n", draft.Phone)
	fmt.Fprintf(&b, "📦 *Art:* %s\n", draft.OrderType.Label())

	if draft.OrderType == domain.ModeDelivery && zone != nil {
		fmt.Fprintf(&b, "📍 *Adresse:* %s %s, %s\n", draft.Street, draft.HouseNumber, draft.Postcode)
		fmt.Fprintf(&b, "🗺️ *Gebiet:* %s\n", zone.Label)
	}

	if draft.DeliveryTime == domain.TimeSpecific {
		fmt.Fprintf(&b, "⏰ *Zeit:* Um %s Uhr\n\n", draft.SpecificTime)
	} else {
		b.WriteString("⏰ *Zeit:* So schnell wie möglich\n\n")
	}

	b.WriteString("🛒 *Bestellung:*\n")
	for _, line := range lines {
		b.WriteString("• ")
		b.WriteString(formatLine(line))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n💰 *Zwischensumme:* %s €\n", domain.FormatEUR(quote.Subtotal))
	if quote.DeliveryFee.IsPositive() {
		fmt.Fprintf(&b, "🚗 *Liefergebühr:* %s €\n", domain.FormatEUR(quote.DeliveryFee))
	}
	fmt.Fprintf(&b, "💳 *Gesamtbetrag:* %s €\n", domain.FormatEUR(quote.Total))

	if draft.Note != "" {
		fmt.Fprintf(&b, "\n📝 *Anmerkung:* %s", draft.Note)
	}

	return b.String()
}

func formatLine(line domain.OrderLine) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx Nr. %s %s", line.Quantity, line.MenuItem.Number, line.MenuItem.Name)

	if sz := line.SelectedSize; sz != nil {
		if sz.Description != "" {
			fmt.Fprintf(&b, " (%s - %s)", sz.Name, sz.Description)
		} else {
			fmt.Fprintf(&b, " (%s)", sz.Name)
		}
	}
	if line.SelectedPastaType != "" {
		fmt.Fprintf(&b, " - Nudelsorte: %s", line.SelectedPastaType)
	}
	if line.SelectedSauce != "" {
		fmt.Fprintf(&b, " - Soße: %s", line.SelectedSauce)
	}
	if len(line.SelectedIngredients) > 0 {
		fmt.Fprintf(&b, " - Zutaten: %s", strings.Join(line.SelectedIngredients, ", "))
	}
	if n := len(line.SelectedExtras); n > 0 {
		surcharge := domain.ExtraUnitPrice.Mul(decimal.NewFromInt(int64(n)))
		fmt.Fprintf(&b, " - Extras: %s (+%s€)",
			strings.Join(line.SelectedExtras, ", "), domain.FormatEUR(surcharge))
	}

	fmt.Fprintf(&b, " = %s €", domain.FormatEUR(LineTotal(line)))
	return b.String()
}
