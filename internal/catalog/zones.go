package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/ecoezer/byaliundmesut/internal/domain"
)

// DefaultZones returns the built-in delivery zone table: minimum order
// value and flat delivery fee per area.
func DefaultZones() []domain.DeliveryZone {
	return []domain.DeliveryZone{
		zone("lutter", "Lutter am Barenberge", 0, 0),
		zone("banteln", "Banteln", 25, 2.5),
		zone("barfelde", "Barfelde", 20, 2.5),
		zone("betheln", "Betheln", 25, 3),
		zone("brueggen", "Brüggen", 35, 3),
		zone("deinsen", "Deinsen", 35, 4),
		zone("duingen", "Duingen", 40, 4),
		zone("dunsen-gime", "Dunsen (Gime)", 30, 3),
		zone("eime", "Eime", 25, 3),
		zone("eitzum", "Eitzum", 25, 3),
		zone("elze", "Elze", 35, 4),
		zone("gronau", "Gronau", 15, 1.5),
		zone("gronau-doetzum", "Gronau Dötzum", 20, 2),
		zone("gronau-eddighausen", "Gronau Eddighausen", 20, 2.5),
		zone("haus-escherde", "Haus Escherde", 25, 3),
		zone("heinum", "Heinum", 25, 3),
		zone("kolonie-godenau", "Kolonie Godenau", 40, 4),
		zone("mehle-elze", "Mehle (Elze)", 35, 4),
		zone("nienstedt", "Nienstedt", 35, 4),
		zone("nordstemmen", "Nordstemmen", 35, 4),
		zone("rheden-elze", "Rheden (Elze)", 25, 3),
		zone("sibesse", "Sibesse", 40, 4),
		zone("sorsum-elze", "Sorsum (Elze)", 35, 4),
		zone("wallensted", "Wallensted", 25, 3),
	}
}

func zone(key, label string, minOrder, fee float64) domain.DeliveryZone {
	return domain.DeliveryZone{
		Key:      key,
		Label:    label,
		MinOrder: decimal.NewFromFloat(minOrder),
		Fee:      decimal.NewFromFloat(fee),
	}
}
