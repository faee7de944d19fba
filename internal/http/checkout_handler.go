package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ecoezer/byaliundmesut/internal/domain"
	"github.com/ecoezer/byaliundmesut/internal/notify"
	"github.com/ecoezer/byaliundmesut/internal/service"
)

type CheckoutHandler struct {
	checkout *service.CheckoutService
	timeout  time.Duration
}

func NewCheckoutHandler(checkout *service.CheckoutService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, timeout: timeout}
}

type CheckoutRequestDTO struct {
	OrderType    string `json:"order_type"`
	DeliveryZone string `json:"delivery_zone,omitempty"`
	DeliveryTime string `json:"delivery_time"`
	SpecificTime string `json:"specific_time,omitempty"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Street       string `json:"street,omitempty"`
	HouseNumber  string `json:"house_number,omitempty"`
	Postcode     string `json:"postcode,omitempty"`
	Note         string `json:"note,omitempty"`
}

type CheckoutResponseDTO struct {
	OrderNumber string   `json:"order_number"`
	WhatsAppURL string   `json:"whatsapp_url"`
	OpenMode    string   `json:"open_mode"`
	Message     string   `json:"message"`
	EmailSent   bool     `json:"email_sent"`
	Quote       QuoteDTO `json:"quote"`
}

// POST /api/v1/checkout
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	draft := domain.OrderDraft{
		OrderType:    domain.FulfillmentMode(req.OrderType),
		DeliveryZone: req.DeliveryZone,
		DeliveryTime: domain.DeliveryTime(req.DeliveryTime),
		SpecificTime: req.SpecificTime,
		Name:         req.Name,
		Phone:        req.Phone,
		Street:       req.Street,
		HouseNumber:  req.HouseNumber,
		Postcode:     req.Postcode,
		Note:         req.Note,
	}
	if draft.DeliveryTime == "" {
		draft.DeliveryTime = domain.TimeASAP
	}

	result, err := h.checkout.Submit(ctx, draft)
	if err != nil {
		var vErr *service.ValidationError
		var eErr *service.EligibilityError
		switch {
		case errors.As(err, &vErr):
			respondFieldErrors(w, http.StatusUnprocessableEntity, "validation_failed",
				"order draft is incomplete", vErr.Fields)
		case errors.As(err, &eErr):
			respondError(w, http.StatusConflict, "below_minimum_order", eErr.Message)
		case errors.Is(err, service.ErrCartEmpty):
			respondError(w, http.StatusConflict, "cart_empty", "cart is empty")
		default:
			respondError(w, http.StatusInternalServerError, "checkout_failed", "failed to submit order")
		}
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		OrderNumber: result.OrderNumber,
		WhatsAppURL: result.WhatsAppURL,
		OpenMode:    string(notify.OpenModeFor(r.UserAgent())),
		Message:     result.Message,
		EmailSent:   result.EmailSent,
		Quote:       quoteDTO(result.Quote),
	})
}
