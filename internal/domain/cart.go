package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// OrderLine is one distinct (menu item, configuration) pair in the cart.
// Two lines with the same LineKey are the same line and must be merged.
type OrderLine struct {
	MenuItem            MenuItem `json:"menu_item"`
	Quantity            int      `json:"quantity"`
	SelectedSize        *Size    `json:"selected_size,omitempty"`
	SelectedIngredients []string `json:"selected_ingredients,omitempty"`
	SelectedExtras      []string `json:"selected_extras,omitempty"`
	SelectedPastaType   string   `json:"selected_pasta_type,omitempty"`
	SelectedSauce       string   `json:"selected_sauce,omitempty"`
}

// LineOptions is the configuration part of a line, used to address lines
// in cart operations.
type LineOptions struct {
	Size        *Size
	Ingredients []string
	Extras      []string
	PastaType   string
	Sauce       string
}

func (l OrderLine) Options() LineOptions {
	return LineOptions{
		Size:        l.SelectedSize,
		Ingredients: l.SelectedIngredients,
		Extras:      l.SelectedExtras,
		PastaType:   l.SelectedPastaType,
		Sauce:       l.SelectedSauce,
	}
}

// Key returns the line's identity key.
func (l OrderLine) Key() string {
	return LineKey(l.MenuItem.ID, l.Options())
}

// LineKey derives the canonical identity key for a configuration.
// Ingredients and extras are treated as unordered sets: the given order is
// preserved on the line for display, but never affects identity. Every
// value is quoted before joining; option names may themselves contain the
// separator characters ("Peperoni, scharf").
func LineKey(menuItemID int, opts LineOptions) string {
	sizeName := ""
	if opts.Size != nil {
		sizeName = opts.Size.Name
	}
	return fmt.Sprintf("%d|%q|%s|%s|%q|%q",
		menuItemID,
		sizeName,
		canonicalSet(opts.Ingredients),
		canonicalSet(opts.Extras),
		opts.PastaType,
		opts.Sauce,
	)
}

func canonicalSet(values []string) string {
	if len(values) == 0 {
		return ""
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	for i, v := range sorted {
		sorted[i] = strconv.Quote(v)
	}
	return strings.Join(sorted, ",")
}

// CartSnapshot is the read view handed to cart subscribers.
type CartSnapshot struct {
	Lines      []OrderLine `json:"lines"`
	TotalItems int         `json:"total_items"`
}
