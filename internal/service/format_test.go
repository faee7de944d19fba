package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoezer/byaliundmesut/internal/domain"
)

func formatFixture() (domain.OrderDraft, *domain.DeliveryZone, []domain.OrderLine, Quote) {
	draft := domain.OrderDraft{
		OrderType:    domain.ModeDelivery,
		DeliveryZone: "banteln",
		DeliveryTime: domain.TimeSpecific,
		SpecificTime: "18:30",
		Name:         "Max Mustermann",
		Phone:        "0151 2345678",
		Street:       "Hauptstraße",
		HouseNumber:  "12",
		Postcode:     "31028",
		Note:         "Bitte klingeln",
	}
	zone := testZone("25", "2.5")
	lines := []domain.OrderLine{
		{
			MenuItem: domain.MenuItem{ID: 526, Number: "26", Name: "Pizza Margherita", Price: dec("9.00")},
			Quantity: 2,
			SelectedSize: &domain.Size{
				Name: "Large", Price: dec("10.50"), Description: "Ø ca. 30 cm",
			},
			SelectedExtras: []string{"Mais", "Oliven"},
		},
		{
			MenuItem:          domain.MenuItem{ID: 516, Number: "16", Name: "Spaghetti Bolognese", Price: dec("8.50")},
			Quantity:          1,
			SelectedPastaType: "Spaghetti",
		},
	}
	quote := ComputeQuote(lines, draft.OrderType, zone)
	return draft, zone, lines, quote
}

func TestFormatOrderMessage_Content(t *testing.T) {
	draft, zone, lines, quote := formatFixture()

	msg := FormatOrderMessage("by Ali und Mesut", draft, zone, lines, quote)

	assert.True(t, strings.HasPrefix(msg, "🍕 *Neue Bestellung - by Ali und Mesut*\n\n"))
	assert.Contains(t, msg, "👤 *Kunde:* Max Mustermann\n")
	assert.Contains(t, msg, "📞 *Telefon:* 0151 2345678\n")
	assert.Contains(t, msg, "📦 *Art:* Lieferung\n")
	assert.Contains(t, msg, "📍 *Adresse:* Hauptstraße 12, 31028\n")
	assert.Contains(t, msg, "🗺️ *Gebiet:* Banteln\n")
	assert.Contains(t, msg, "⏰ *Zeit:* Um 18:30 Uhr\n")

	// Line with size, extras surcharge and line total: (10.50+2.00)*2.
	assert.Contains(t, msg,
		"• 2x Nr. 26 Pizza Margherita (Large - Ø ca. 30 cm) - Extras: Mais, Oliven (+2,00€) = 25,00 €\n")
	assert.Contains(t, msg, "• 1x Nr. 16 Spaghetti Bolognese - Nudelsorte: Spaghetti = 8,50 €\n")

	assert.Contains(t, msg, "💰 *Zwischensumme:* 33,50 €\n")
	assert.Contains(t, msg, "🚗 *Liefergebühr:* 2,50 €\n")
	assert.Contains(t, msg, "💳 *Gesamtbetrag:* 36,00 €\n")
	assert.True(t, strings.HasSuffix(msg, "📝 *Anmerkung:* Bitte klingeln"))
}

func TestFormatOrderMessage_Deterministic(t *testing.T) {
	draft, zone, lines, quote := formatFixture()

	first := FormatOrderMessage("by Ali und Mesut", draft, zone, lines, quote)
	second := FormatOrderMessage("by Ali und Mesut", draft, zone, lines, quote)

	require.Equal(t, first, second)
}

func TestFormatOrderMessage_PickupOmitsDeliveryBlock(t *testing.T) {
	draft := domain.OrderDraft{
		OrderType:    domain.ModePickup,
		DeliveryTime: domain.TimeASAP,
		Name:         "Max Mustermann",
		Phone:        "0151 2345678",
	}
	lines := []domain.OrderLine{
		{MenuItem: domain.MenuItem{Number: "11", Name: "Pommes frites", Price: dec("4.00")}, Quantity: 1},
	}
	quote := ComputeQuote(lines, draft.OrderType, nil)

	msg := FormatOrderMessage("by Ali und Mesut", draft, nil, lines, quote)

	assert.Contains(t, msg, "📦 *Art:* Abholung\n")
	assert.Contains(t, msg, "⏰ *Zeit:* So schnell wie möglich\n")
	assert.NotContains(t, msg, "Adresse")
	assert.NotContains(t, msg, "Liefergebühr")
	assert.NotContains(t, msg, "Anmerkung")
}

func TestFormatOrderMessage_IngredientsAndSauce(t *testing.T) {
	lines := []domain.OrderLine{
		{
			MenuItem:            domain.MenuItem{Number: "48", Name: "Wunsch Pizza", Price: dec("12.00")},
			Quantity:            1,
			SelectedIngredients: []string{"Gyros", "Mais", "Zwiebeln"},
			SelectedSauce:       "Tzatziki",
		},
	}
	draft := domain.OrderDraft{OrderType: domain.ModePickup, DeliveryTime: domain.TimeASAP,
		Name: "Max Mustermann", Phone: "0151 2345678"}
	quote := ComputeQuote(lines, draft.OrderType, nil)

	msg := FormatOrderMessage("by Ali und Mesut", draft, nil, lines, quote)

	assert.Contains(t, msg, "• 1x Nr. 48 Wunsch Pizza - Soße: Tzatziki - Zutaten: Gyros, Mais, Zwiebeln = 12,00 €\n")
}
