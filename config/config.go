package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds every startup setting. Required fields abort startup when
// absent; the rest carry development defaults.
type Config struct {
	Port string `envconfig:"PORT" default:"8000"`

	// Document store
	MongoURI string `envconfig:"MONGODB_URI" required:"true"`
	DBName   string `envconfig:"DB_NAME" default:"parcelDB"`

	// Identity provider shared secret for bearer-token verification
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// Payment processor
	StripeSecretKey string `envconfig:"PAYMENT_GATEWAY_KEY" required:"true"`

	// Email notifications (optional; rider notifications are skipped when unset)
	PostmarkToken string `envconfig:"POSTMARK_API_TOKEN"`
	EmailSender   string `envconfig:"EMAIL_SENDER"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
