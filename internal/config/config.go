package config

import "github.com/kelseyhightower/envconfig"

// Config holds the runtime knobs for the storefront client and the local
// backend simulator.
type Config struct {
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8080"`
	CartPath   string `envconfig:"CART_PATH" default:"cart.json"`
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
