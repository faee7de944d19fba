package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ecoezer/byaliundmesut/internal/catalog"
	"github.com/ecoezer/byaliundmesut/internal/domain"
	"github.com/ecoezer/byaliundmesut/internal/service"
)

type CartHandler struct {
	cart    *service.CartService
	catalog *catalog.Catalog
	timeout time.Duration
}

func NewCartHandler(cart *service.CartService, c *catalog.Catalog, timeout time.Duration) *CartHandler {
	return &CartHandler{cart: cart, catalog: c, timeout: timeout}
}

// LineSelectionDTO addresses one cart line: the menu item id plus the full
// configuration tuple.
type LineSelectionDTO struct {
	MenuItemID  int      `json:"menu_item_id"`
	Size        string   `json:"size,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Extras      []string `json:"extras,omitempty"`
	PastaType   string   `json:"pasta_type,omitempty"`
	Sauce       string   `json:"sauce,omitempty"`
}

type UpdateQuantityRequestDTO struct {
	LineSelectionDTO
	Quantity int `json:"quantity"`
}

type CartLineDTO struct {
	domain.OrderLine
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type QuoteDTO struct {
	Subtotal        string `json:"subtotal"`
	DeliveryFee     string `json:"delivery_fee"`
	Total           string `json:"total"`
	CanOrder        bool   `json:"can_order"`
	MinOrderMessage string `json:"min_order_message,omitempty"`
}

type CartResponse struct {
	Lines      []CartLineDTO `json:"lines"`
	TotalItems int           `json:"total_items"`
	Quote      QuoteDTO      `json:"quote"`
}

// GET /api/v1/cart?mode=pickup|delivery&zone=<key>
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	mode := domain.FulfillmentMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = domain.ModePickup
	}
	if !mode.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_mode", "mode must be pickup or delivery")
		return
	}

	var zone *domain.DeliveryZone
	if key := r.URL.Query().Get("zone"); key != "" {
		if z, ok := h.catalog.Zone(key); ok {
			zone = &z
		}
	}

	respondJSON(w, http.StatusOK, h.cartResponse(mode, zone))
}

// POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req LineSelectionDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	item, ok := h.catalog.ItemByID(req.MenuItemID)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown_menu_item", "menu item not found")
		return
	}
	opts, ok := h.resolveOptions(w, item, req)
	if !ok {
		return
	}

	if err := h.cart.AddItem(ctx, item, opts); err != nil {
		respondError(w, http.StatusInternalServerError, "cart_persist_failed", "failed to store cart")
		return
	}
	respondJSON(w, http.StatusCreated, h.cartResponse(domain.ModePickup, nil))
}

// PUT /api/v1/cart/items
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at most 99")
		return
	}

	item, ok := h.catalog.ItemByID(req.MenuItemID)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown_menu_item", "menu item not found")
		return
	}
	opts, ok := h.resolveOptions(w, item, req.LineSelectionDTO)
	if !ok {
		return
	}

	if err := h.cart.UpdateQuantity(ctx, req.MenuItemID, req.Quantity, opts); err != nil {
		respondError(w, http.StatusInternalServerError, "cart_persist_failed", "failed to store cart")
		return
	}
	respondJSON(w, http.StatusOK, h.cartResponse(domain.ModePickup, nil))
}

// DELETE /api/v1/cart/items
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req LineSelectionDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	item, ok := h.catalog.ItemByID(req.MenuItemID)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown_menu_item", "menu item not found")
		return
	}
	opts, ok := h.resolveOptions(w, item, req)
	if !ok {
		return
	}

	if err := h.cart.RemoveItem(ctx, req.MenuItemID, opts); err != nil {
		respondError(w, http.StatusInternalServerError, "cart_persist_failed", "failed to store cart")
		return
	}
	respondJSON(w, http.StatusOK, h.cartResponse(domain.ModePickup, nil))
}

// DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.cart.Clear(ctx); err != nil {
		respondError(w, http.StatusInternalServerError, "cart_persist_failed", "failed to store cart")
		return
	}
	respondJSON(w, http.StatusOK, h.cartResponse(domain.ModePickup, nil))
}

// resolveOptions maps the request's size name onto the item's size list.
// Writes the error response itself when the selection is invalid.
func (h *CartHandler) resolveOptions(w http.ResponseWriter, item domain.MenuItem, req LineSelectionDTO) (domain.LineOptions, bool) {
	opts := domain.LineOptions{
		Ingredients: req.Ingredients,
		Extras:      req.Extras,
		PastaType:   req.PastaType,
		Sauce:       req.Sauce,
	}
	if req.Size != "" {
		sz := item.SizeByName(req.Size)
		if sz == nil {
			respondError(w, http.StatusBadRequest, "invalid_size", "unknown size for this menu item")
			return domain.LineOptions{}, false
		}
		opts.Size = sz
	}
	return opts, true
}

func (h *CartHandler) cartResponse(mode domain.FulfillmentMode, zone *domain.DeliveryZone) CartResponse {
	lines := h.cart.Lines()
	quote := service.ComputeQuote(lines, mode, zone)

	dtos := make([]CartLineDTO, 0, len(lines))
	for _, l := range lines {
		dtos = append(dtos, CartLineDTO{
			OrderLine: l,
			UnitPrice: domain.FormatEUR(service.EffectivePrice(l)),
			LineTotal: domain.FormatEUR(service.LineTotal(l)),
		})
	}

	return CartResponse{
		Lines:      dtos,
		TotalItems: h.cart.TotalItems(),
		Quote:      quoteDTO(quote),
	}
}

func quoteDTO(q service.Quote) QuoteDTO {
	return QuoteDTO{
		Subtotal:        domain.FormatEUR(q.Subtotal),
		DeliveryFee:     domain.FormatEUR(q.DeliveryFee),
		Total:           domain.FormatEUR(q.Total),
		CanOrder:        q.CanOrder,
		MinOrderMessage: q.MinOrderMessage,
	}
}
