package apiclient

import "time"

// Config configures the API client.
type Config struct {
	BaseURL string        `env:"PROVEO_API_URL" envDefault:"http://localhost:3000"` // Backend origin, no trailing slash
	Timeout time.Duration `env:"PROVEO_API_TIMEOUT" envDefault:"30s"`
}
