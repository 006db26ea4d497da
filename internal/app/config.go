package app

import (
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Config holds the complete application configuration, loadable from
// environment variables (CUPCAKE_ prefix), flags, or YAML config files.
// The defaults reproduce the demo storefront as shipped.
type Config struct {
	DeliveryFee string        `default:"5.00" usage:"Flat delivery fee added to every order" flag:"delivery-fee"`
	PromoCode   string        `default:"PROMO10" usage:"Recognized coupon code" flag:"promo-code"`
	PromoRate   string        `default:"0.10" usage:"Fractional discount rate of the coupon" flag:"promo-rate"`
	AdminUser   string        `default:"admin" usage:"Admin panel username" flag:"admin-user"`
	AdminPass   string        `default:"admin123" usage:"Admin panel password" flag:"admin-pass"`
	PixKey      string        `default:"a1b2c3d4-e5f6-7890-g1h2-i3j4k5l6m7n8" usage:"Static Pix payment key shown at checkout" flag:"pix-key"`
	LongPress   time.Duration `default:"1500ms" usage:"Hold duration of the home-logo gesture that opens the admin login" flag:"long-press"`
	LogFile     string        `default:"cupcake-shop.log" usage:"Log file path (the terminal belongs to the UI)" flag:"log-file"`
}

// LoadConfig loads configuration from environment variables, flags and YAML
// config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CUPCAKE",
		Files:     []string{"config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}

// deliveryFee parses the configured delivery fee.
func (c *Config) deliveryFee() (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(c.DeliveryFee)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "parse delivery fee")
	}
	return fee, nil
}

// promoRate parses the configured discount rate.
func (c *Config) promoRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.PromoRate)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "parse promo rate")
	}
	return rate, nil
}
