package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type RestaurantConfig struct {
	Name           string `mapstructure:"name"`
	Phone          string `mapstructure:"phone"`
	WhatsAppNumber string `mapstructure:"whatsapp_number"`
}

type NotifyConfig struct {
	URL     string        `mapstructure:"url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CartConfig struct {
	FilePath        string        `mapstructure:"file_path"`
	ClearGraceDelay time.Duration `mapstructure:"clear_grace_delay"`
}

type ZoneConfig struct {
	Key      string  `mapstructure:"key"`
	Label    string  `mapstructure:"label"`
	MinOrder float64 `mapstructure:"min_order"`
	Fee      float64 `mapstructure:"fee"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Restaurant RestaurantConfig `mapstructure:"restaurant"`
	Notify     NotifyConfig     `mapstructure:"notify"`
	Cart       CartConfig       `mapstructure:"cart"`
	MenuFile   string           `mapstructure:"menu_file"`

	// DeliveryZones overrides the built-in zone table when non-empty.
	DeliveryZones []ZoneConfig `mapstructure:"delivery_zones"`
}

// Load reads the configuration from the given file (or ./config/config.yaml
// when empty) with environment variable overrides.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath("config")
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("STOREFRONT")
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("restaurant.name", "by Ali und Mesut")
	v.SetDefault("restaurant.phone", "01577 1459166")
	v.SetDefault("restaurant.whatsapp_number", "+4915771459166")
	v.SetDefault("notify.timeout", 5*time.Second)
	v.SetDefault("cart.file_path", "cart.json")
	v.SetDefault("cart.clear_grace_delay", time.Second)
	v.SetDefault("menu_file", "config/menu.yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
