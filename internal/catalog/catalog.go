package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/ecoezer/byaliundmesut/internal/domain"
)

// Section is one ordered group of menu items ("Pizza", "Snacks", ...).
type Section struct {
	Key   string            `json:"key"`
	Title string            `json:"title"`
	Items []domain.MenuItem `json:"items"`
}

// Catalog is the read-only menu: ordered sections, an id index and the
// delivery zone table. It is built once at startup and never mutated.
type Catalog struct {
	sections []Section
	byID     map[int]domain.MenuItem
	zones    map[string]domain.DeliveryZone
	zoneList []domain.DeliveryZone
}

type menuFile struct {
	Sections []sectionFile `mapstructure:"sections"`
}

type sectionFile struct {
	Key   string     `mapstructure:"key"`
	Title string     `mapstructure:"title"`
	Items []itemFile `mapstructure:"items"`
}

type itemFile struct {
	ID              int        `mapstructure:"id"`
	Number          string     `mapstructure:"number"`
	Name            string     `mapstructure:"name"`
	Description     string     `mapstructure:"description"`
	Price           float64    `mapstructure:"price"`
	Sizes           []sizeFile `mapstructure:"sizes"`
	IsPizza         bool       `mapstructure:"is_pizza"`
	IsSpezialitaet  bool       `mapstructure:"is_spezialitaet"`
	IsBeerSelection bool       `mapstructure:"is_beer_selection"`
}

type sizeFile struct {
	Name        string  `mapstructure:"name"`
	Price       float64 `mapstructure:"price"`
	Description string  `mapstructure:"description"`
}

// Load reads the menu data file and assembles the catalog. A non-empty
// zones slice overrides the built-in delivery zone table.
func Load(menuFile string, zones []domain.DeliveryZone) (*Catalog, error) {
	sections, err := loadMenu(menuFile)
	if err != nil {
		return nil, err
	}
	return New(sections, zones)
}

// New assembles a catalog from already-built sections. An empty zones slice
// selects the built-in zone table.
func New(sections []Section, zones []domain.DeliveryZone) (*Catalog, error) {
	if len(zones) == 0 {
		zones = DefaultZones()
	}

	c := &Catalog{
		sections: sections,
		byID:     make(map[int]domain.MenuItem),
		zones:    make(map[string]domain.DeliveryZone, len(zones)),
		zoneList: zones,
	}
	for _, s := range sections {
		for _, it := range s.Items {
			if _, dup := c.byID[it.ID]; dup {
				return nil, fmt.Errorf("duplicate menu item id %d", it.ID)
			}
			c.byID[it.ID] = it
		}
	}
	for _, z := range zones {
		c.zones[z.Key] = z
	}
	return c, nil
}

func loadMenu(path string) ([]Section, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading menu file: %w", err)
	}
	var mf menuFile
	if err := v.Unmarshal(&mf); err != nil {
		return nil, fmt.Errorf("unable to decode menu file: %w", err)
	}

	sections := make([]Section, 0, len(mf.Sections))
	for _, sf := range mf.Sections {
		s := Section{Key: sf.Key, Title: sf.Title}
		for _, it := range sf.Items {
			item := domain.MenuItem{
				ID:              it.ID,
				Number:          it.Number,
				Name:            it.Name,
				Description:     it.Description,
				Price:           decimal.NewFromFloat(it.Price),
				IsPizza:         it.IsPizza,
				IsSpezialitaet:  it.IsSpezialitaet,
				IsBeerSelection: it.IsBeerSelection,
			}
			for _, sz := range it.Sizes {
				item.Sizes = append(item.Sizes, domain.Size{
					Name:        sz.Name,
					Price:       decimal.NewFromFloat(sz.Price),
					Description: sz.Description,
				})
			}
			s.Items = append(s.Items, item)
		}
		sections = append(sections, s)
	}
	return sections, nil
}

// Sections returns the menu sections in display order.
func (c *Catalog) Sections() []Section { return c.sections }

// ItemByID looks a menu item up by its id.
func (c *Catalog) ItemByID(id int) (domain.MenuItem, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Zone looks a delivery zone up by its key.
func (c *Catalog) Zone(key string) (domain.DeliveryZone, bool) {
	z, ok := c.zones[key]
	return z, ok
}

// Zones returns the delivery zone table in its defined order.
func (c *Catalog) Zones() []domain.DeliveryZone { return c.zoneList }
