package domain

import "github.com/shopspring/decimal"

// Size is a selectable portion of a menu item. Its price replaces the
// item's base price when selected.
type Size struct {
	Name        string          `json:"name" mapstructure:"name"`
	Price       decimal.Decimal `json:"price" mapstructure:"price"`
	Description string          `json:"description,omitempty" mapstructure:"description"`
}

type MenuItem struct {
	ID          int             `json:"id" mapstructure:"id"`
	Number      string          `json:"number" mapstructure:"number"`
	Name        string          `json:"name" mapstructure:"name"`
	Description string          `json:"description,omitempty" mapstructure:"description"`
	Price       decimal.Decimal `json:"price" mapstructure:"price"`
	Sizes       []Size          `json:"sizes,omitempty" mapstructure:"sizes"`

	// Flags controlling which option pickers apply to the item.
	IsPizza         bool `json:"is_pizza,omitempty" mapstructure:"is_pizza"`
	IsSpezialitaet  bool `json:"is_spezialitaet,omitempty" mapstructure:"is_spezialitaet"`
	IsBeerSelection bool `json:"is_beer_selection,omitempty" mapstructure:"is_beer_selection"`
}

// SizeByName returns the item's size with the given name, or nil.
func (m MenuItem) SizeByName(name string) *Size {
	for i := range m.Sizes {
		if m.Sizes[i].Name == name {
			return &m.Sizes[i]
		}
	}
	return nil
}
