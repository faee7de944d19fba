package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecoezer/byaliundmesut/internal/domain"
	"github.com/ecoezer/byaliundmesut/internal/notify"
)

var ErrCartEmpty = errors.New("cart is empty, nothing to order")

// ValidationError carries field-level messages for a rejected draft.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order draft validation failed (%d fields)", len(e.Fields))
}

// EligibilityError blocks submission when the subtotal is below the zone's
// minimum order value.
type EligibilityError struct {
	Message string
}

func (e *EligibilityError) Error() string { return e.Message }

// Notifier delivers the order payload to the email endpoint. Failures are
// tolerated by the checkout flow.
type Notifier interface {
	Notify(ctx context.Context, payload notify.OrderPayload) error
}

// ZoneDirectory resolves delivery zone keys.
type ZoneDirectory interface {
	Zone(key string) (domain.DeliveryZone, bool)
}

// SubmitResult is the outcome of a successful submission. EmailSent is
// best-effort status only; a false value never fails the submission.
type SubmitResult struct {
	OrderNumber string
	Message     string
	WhatsAppURL string
	Quote       Quote
	EmailSent   bool
}

type CheckoutService struct {
	cart           *CartService
	zones          ZoneDirectory
	notifier       Notifier
	restaurantName string
	whatsAppNumber string
	clearGrace     time.Duration
	log            *zap.Logger
}

func NewCheckoutService(cart *CartService, zones ZoneDirectory, notifier Notifier,
	restaurantName, whatsAppNumber string, clearGrace time.Duration, log *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		cart:           cart,
		zones:          zones,
		notifier:       notifier,
		restaurantName: restaurantName,
		whatsAppNumber: whatsAppNumber,
		clearGrace:     clearGrace,
		log:            log,
	}
}

// ValidateDraft checks the draft's required fields for the chosen
// fulfillment and time mode. Returns an empty map when the draft is valid.
func ValidateDraft(draft domain.OrderDraft) map[string]string {
	fields := make(map[string]string)

	if !draft.OrderType.Valid() {
		fields["order_type"] = "Ungültige Bestellart"
	}
	if utf8.RuneCountInString(draft.Name) < 2 {
		fields["name"] = "Name muss mindestens 2 Zeichen haben"
	}
	if utf8.RuneCountInString(draft.Phone) < 10 {
		fields["phone"] = "Telefonnummer muss mindestens 10 Zeichen haben"
	}
	if draft.OrderType == domain.ModeDelivery {
		if draft.DeliveryZone == "" || draft.Street == "" || draft.HouseNumber == "" || draft.Postcode == "" {
			fields["delivery_zone"] = "Bei Lieferung sind Liefergebiet, Straße, Hausnummer und PLZ erforderlich"
		}
	}
	if draft.DeliveryTime == domain.TimeSpecific && draft.SpecificTime == "" {
		fields["specific_time"] = "Bei spezifischer Zeit muss eine Uhrzeit angegeben werden"
	}
	return fields
}

// Submit validates the draft against the current cart, fires the
// best-effort email notification and produces the chat hand-off message and
// deep link. On success the cart is cleared after the configured grace
// delay so the outbound action can be initiated first.
func (s *CheckoutService) Submit(ctx context.Context, draft domain.OrderDraft) (*SubmitResult, error) {
	if fields := ValidateDraft(draft); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	var zone *domain.DeliveryZone
	if draft.OrderType == domain.ModeDelivery {
		z, ok := s.zones.Zone(draft.DeliveryZone)
		if !ok {
			return nil, &ValidationError{Fields: map[string]string{
				"delivery_zone": "Unbekanntes Liefergebiet",
			}}
		}
		zone = &z
	}

	quote := ComputeQuote(lines, draft.OrderType, zone)
	if !quote.CanOrder {
		return nil, &EligibilityError{Message: quote.MinOrderMessage}
	}

	orderNumber := uuid.NewString()

	// Best-effort email notification, independent of the chat hand-off.
	// Its context survives a canceled request; the notifier's own timeout
	// bounds the wait.
	emailCh := make(chan error, 1)
	go func() {
		emailCh <- s.notifier.Notify(context.WithoutCancel(ctx), buildOrderPayload(draft, lines, quote))
	}()

	message := FormatOrderMessage(s.restaurantName, draft, zone, lines, quote)
	result := &SubmitResult{
		OrderNumber: orderNumber,
		Message:     message,
		WhatsAppURL: notify.WhatsAppURL(s.whatsAppNumber, message),
		Quote:       quote,
	}

	if err := <-emailCh; err != nil {
		s.log.Warn("email notification failed, continuing with chat hand-off",
			zap.String("order_number", orderNumber), zap.Error(err))
	} else {
		result.EmailSent = true
	}

	s.log.Info("order submitted",
		zap.String("order_number", orderNumber),
		zap.String("order_type", string(draft.OrderType)),
		zap.String("total", domain.FormatEUR(quote.Total)))

	time.AfterFunc(s.clearGrace, func() {
		if err := s.cart.Clear(context.Background()); err != nil {
			s.log.Error("failed to clear cart after submission", zap.Error(err))
		}
	})

	return result, nil
}

func buildOrderPayload(draft domain.OrderDraft, lines []domain.OrderLine, quote Quote) notify.OrderPayload {
	items := make([]notify.OrderItemPayload, 0, len(lines))
	for _, l := range lines {
		item := notify.OrderItemPayload{
			MenuItem: notify.MenuItemPayload{
				ID:     l.MenuItem.ID,
				Number: l.MenuItem.Number,
				Name:   l.MenuItem.Name,
				Price:  l.MenuItem.Price.InexactFloat64(),
			},
			Quantity:            l.Quantity,
			SelectedIngredients: l.SelectedIngredients,
			SelectedExtras:      l.SelectedExtras,
			SelectedPastaType:   l.SelectedPastaType,
			SelectedSauce:       l.SelectedSauce,
		}
		if sz := l.SelectedSize; sz != nil {
			item.SelectedSize = &notify.SizePayload{
				Name:        sz.Name,
				Price:       sz.Price.InexactFloat64(),
				Description: sz.Description,
			}
		}
		items = append(items, item)
	}

	return notify.OrderPayload{
		OrderType:    string(draft.OrderType),
		DeliveryZone: draft.DeliveryZone,
		DeliveryTime: string(draft.DeliveryTime),
		SpecificTime: draft.SpecificTime,
		Name:         draft.Name,
		Phone:        draft.Phone,
		Street:       draft.Street,
		HouseNumber:  draft.HouseNumber,
		Postcode:     draft.Postcode,
		Note:         draft.Note,
		OrderItems:   items,
		Subtotal:     quote.Subtotal.InexactFloat64(),
		DeliveryFee:  quote.DeliveryFee.InexactFloat64(),
		Total:        quote.Total.InexactFloat64(),
	}
}
