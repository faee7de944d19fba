package config

import (
	"github.com/shopspring/decimal"

	"github.com/ecoezer/byaliundmesut/internal/domain"
)

// Zones converts the configured zone override into domain records. Returns
// nil when no override is configured.
func (c *Config) Zones() []domain.DeliveryZone {
	if len(c.DeliveryZones) == 0 {
		return nil
	}
	zones := make([]domain.DeliveryZone, 0, len(c.DeliveryZones))
	for _, z := range c.DeliveryZones {
		zones = append(zones, domain.DeliveryZone{
			Key:      z.Key,
			Label:    z.Label,
			MinOrder: decimal.NewFromFloat(z.MinOrder),
			Fee:      decimal.NewFromFloat(z.Fee),
		})
	}
	return zones
}
