package http

import (
	"net/http"

	"github.com/ecoezer/byaliundmesut/internal/catalog"
)

type MenuHandler struct {
	catalog *catalog.Catalog
}

func NewMenuHandler(c *catalog.Catalog) *MenuHandler {
	return &MenuHandler{catalog: c}
}

type MenuOptionsDTO struct {
	WunschPizzaIngredients []string `json:"wunsch_pizza_ingredients"`
	PizzaExtras            []string `json:"pizza_extras"`
	PastaTypes             []string `json:"pasta_types"`
	SauceTypes             []string `json:"sauce_types"`
	SaladSauceTypes        []string `json:"salad_sauce_types"`
	BeerTypes              []string `json:"beer_types"`
}

type MenuResponse struct {
	Sections []catalog.Section `json:"sections"`
	Options  MenuOptionsDTO    `json:"options"`
}

func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, MenuResponse{
		Sections: h.catalog.Sections(),
		Options: MenuOptionsDTO{
			WunschPizzaIngredients: catalog.WunschPizzaIngredients,
			PizzaExtras:            catalog.PizzaExtras,
			PastaTypes:             catalog.PastaTypes,
			SauceTypes:             catalog.SauceTypes,
			SaladSauceTypes:        catalog.SaladSauceTypes,
			BeerTypes:              catalog.BeerTypes,
		},
	})
}

func (h *MenuHandler) GetZones(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Zones())
}
