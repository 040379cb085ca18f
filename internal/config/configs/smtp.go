package configs

import "time"

// SMTP configures the relay used to deliver cost estimates. An empty
// Host disables delivery; sends are then logged instead.
type SMTP struct {
	Host    string        `env:"HOST" envDefault:""`
	Port    uint16        `env:"PORT" envDefault:"25"`
	From    string        `env:"FROM" envDefault:"ops@example.com"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Enabled reports whether a relay host is configured.
func (c SMTP) Enabled() bool {
	return c.Host != ""
}
