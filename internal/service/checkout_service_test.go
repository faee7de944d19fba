package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ecoezer/byaliundmesut/internal/domain"
	"github.com/ecoezer/byaliundmesut/internal/notify"
)

type mockNotifier struct {
	m        sync.Mutex
	payloads []notify.OrderPayload
	err      error
}

func (m *mockNotifier) Notify(_ context.Context, p notify.OrderPayload) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.payloads = append(m.payloads, p)
	return m.err
}

type mockZones map[string]domain.DeliveryZone

func (m mockZones) Zone(key string) (domain.DeliveryZone, bool) {
	z, ok := m[key]
	return z, ok
}

func newTestCheckout(t *testing.T, notifier *mockNotifier, grace time.Duration) (*CheckoutService, *CartService) {
	t.Helper()
	cart, _ := newTestCart(t)
	zones := mockZones{"banteln": *testZone("25", "2.5")}
	svc := NewCheckoutService(cart, zones, notifier,
		"by Ali und Mesut", "+4915771459166", grace, zap.NewNop())
	return svc, cart
}

func pickupDraft() domain.OrderDraft {
	return domain.OrderDraft{
		OrderType:    domain.ModePickup,
		DeliveryTime: domain.TimeASAP,
		Name:         "Max Mustermann",
		Phone:        "0151 2345678",
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.OrderDraft)
		field  string
	}{
		{"short name", func(d *domain.OrderDraft) { d.Name = "M" }, "name"},
		{"short phone", func(d *domain.OrderDraft) { d.Phone = "12345" }, "phone"},
		{"invalid order type", func(d *domain.OrderDraft) { d.OrderType = "dine_in" }, "order_type"},
		{"specific time without value", func(d *domain.OrderDraft) {
			d.DeliveryTime = domain.TimeSpecific
		}, "specific_time"},
		{"delivery without address", func(d *domain.OrderDraft) {
			d.OrderType = domain.ModeDelivery
			d.DeliveryZone = "banteln"
		}, "delivery_zone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := pickupDraft()
			tt.mutate(&draft)
			fields := ValidateDraft(draft)
			assert.Contains(t, fields, tt.field)
		})
	}

	assert.Empty(t, ValidateDraft(pickupDraft()))
}

func TestSubmit_ValidationFailureBlocksFormatting(t *testing.T) {
	notifier := &mockNotifier{}
	svc, cart := newTestCheckout(t, notifier, 0)
	require.NoError(t, cart.AddItem(context.Background(), pizza(), domain.LineOptions{}))

	draft := pickupDraft()
	draft.Name = "M"

	_, err := svc.Submit(context.Background(), draft)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Name muss mindestens 2 Zeichen haben", vErr.Fields["name"])
	assert.Empty(t, notifier.payloads, "no notification on validation failure")
}

func TestSubmit_EmptyCart(t *testing.T) {
	svc, _ := newTestCheckout(t, &mockNotifier{}, 0)

	_, err := svc.Submit(context.Background(), pickupDraft())

	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestSubmit_BelowMinimumOrder(t *testing.T) {
	notifier := &mockNotifier{}
	svc, cart := newTestCheckout(t, notifier, 0)
	// Subtotal 9.00 < zone minimum 25.
	require.NoError(t, cart.AddItem(context.Background(), pizza(), domain.LineOptions{}))

	draft := pickupDraft()
	draft.OrderType = domain.ModeDelivery
	draft.DeliveryZone = "banteln"
	draft.Street = "Hauptstraße"
	draft.HouseNumber = "12"
	draft.Postcode = "31028"

	_, err := svc.Submit(context.Background(), draft)

	var eErr *EligibilityError
	require.ErrorAs(t, err, &eErr)
	assert.Equal(t, "Mindestbestellwert für Banteln: 25,00 €", eErr.Message)
	assert.Empty(t, notifier.payloads)
}

func TestSubmit_UnknownZone(t *testing.T) {
	svc, cart := newTestCheckout(t, &mockNotifier{}, 0)
	require.NoError(t, cart.AddItem(context.Background(), pizza(), domain.LineOptions{}))

	draft := pickupDraft()
	draft.OrderType = domain.ModeDelivery
	draft.DeliveryZone = "atlantis"
	draft.Street = "Hauptstraße"
	draft.HouseNumber = "12"
	draft.Postcode = "31028"

	_, err := svc.Submit(context.Background(), draft)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "delivery_zone")
}

func TestSubmit_Success(t *testing.T) {
	notifier := &mockNotifier{}
	svc, cart := newTestCheckout(t, notifier, 0)
	require.NoError(t, cart.AddItem(context.Background(), pizza(), domain.LineOptions{}))

	result, err := svc.Submit(context.Background(), pickupDraft())

	require.NoError(t, err)
	assert.NotEmpty(t, result.OrderNumber)
	assert.True(t, result.EmailSent)
	assert.True(t, strings.HasPrefix(result.WhatsAppURL, "https://wa.me/+4915771459166?text="))
	assert.Contains(t, result.Message, "Pizza Margherita")
	assert.Equal(t, "9,00", domain.FormatEUR(result.Quote.Total))

	require.Len(t, notifier.payloads, 1)
	payload := notifier.payloads[0]
	assert.Equal(t, "pickup", payload.OrderType)
	assert.Equal(t, "Max Mustermann", payload.Name)
	require.Len(t, payload.OrderItems, 1)
	assert.Equal(t, 526, payload.OrderItems[0].MenuItem.ID)
	assert.Equal(t, 9.0, payload.OrderItems[0].MenuItem.Price)
	assert.Equal(t, 9.0, payload.Total)
}

func TestSubmit_EmailFailureIsSwallowed(t *testing.T) {
	notifier := &mockNotifier{err: errors.New("endpoint down")}
	svc, cart := newTestCheckout(t, notifier, 0)
	require.NoError(t, cart.AddItem(context.Background(), pizza(), domain.LineOptions{}))

	result, err := svc.Submit(context.Background(), pickupDraft())

	require.NoError(t, err, "best-effort notification must not fail the submission")
	assert.False(t, result.EmailSent)
	assert.NotEmpty(t, result.WhatsAppURL)
}

func TestSubmit_ClearsCartAfterGraceDelay(t *testing.T) {
	svc, cart := newTestCheckout(t, &mockNotifier{}, 5*time.Millisecond)
	require.NoError(t, cart.AddItem(context.Background(), pizza(), domain.LineOptions{}))

	_, err := svc.Submit(context.Background(), pickupDraft())
	require.NoError(t, err)

	// The cart survives the submission itself and is cleared shortly after.
	require.Eventually(t, func() bool {
		return cart.TotalItems() == 0
	}, time.Second, 5*time.Millisecond)
}
