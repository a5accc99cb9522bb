// Package config assembles the runtime configuration for one generation run
// from environment variables. Nothing outside this package reads the
// environment; the resulting struct is handed to constructors.
package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config carries every tunable of a run.
type Config struct {
	ShopDomain  string        `validate:"required_without=APIEndpoint"`
	AccessToken string        `validate:"required"`
	APIVersion  string        `validate:"required"`
	APIEndpoint string        // optional full GraphQL URL override, wins over ShopDomain+APIVersion
	HTTPTimeout time.Duration `validate:"gt=0"`

	// Fetch windows. Selection only ever sees the first page of each
	// collection, so these bound the reachable customers and variants.
	CustomerPageSize int `validate:"gt=0"`
	ProductPageSize  int `validate:"gt=0"`
	VariantPageSize  int `validate:"gt=0"`

	RabbitMQURL string // optional; empty disables event publishing
}

// ConfigError reports missing or invalid settings, keyed by field name.
type ConfigError struct {
	Fields map[string]string
}

func (e *ConfigError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %s", name, e.Fields[name]))
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

// Load reads the environment, applies defaults and validates the result.
func Load() (*Config, error) {
	viper.SetDefault("SHOPIFY_API_VERSION", "2025-10")
	viper.SetDefault("SHOPIFY_HTTP_TIMEOUT", "30s")
	viper.SetDefault("CUSTOMER_PAGE_SIZE", 25)
	viper.SetDefault("PRODUCT_PAGE_SIZE", 25)
	viper.SetDefault("VARIANT_PAGE_SIZE", 5)
	viper.AutomaticEnv()

	cfg := &Config{
		ShopDomain:       viper.GetString("SHOPIFY_SHOP_DOMAIN"),
		AccessToken:      viper.GetString("SHOPIFY_ACCESS_TOKEN"),
		APIVersion:       viper.GetString("SHOPIFY_API_VERSION"),
		APIEndpoint:      viper.GetString("SHOPIFY_API_ENDPOINT"),
		HTTPTimeout:      viper.GetDuration("SHOPIFY_HTTP_TIMEOUT"),
		CustomerPageSize: viper.GetInt("CUSTOMER_PAGE_SIZE"),
		ProductPageSize:  viper.GetInt("PRODUCT_PAGE_SIZE"),
		VariantPageSize:  viper.GetInt("VARIANT_PAGE_SIZE"),
		RabbitMQURL:      viper.GetString("RABBITMQ_URL"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, ve := range validationErrors {
			fields[ve.Field()] = fmt.Sprintf("failed on the '%s' tag", ve.Tag())
		}
	} else {
		fields["Config"] = err.Error()
	}
	return &ConfigError{Fields: fields}
}
