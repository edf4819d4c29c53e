package auth

import "os"

// Config holds auth configuration
type Config struct {
	Issuer string
	Secret string
}

// DefaultIssuer is the token issuer expected on API tokens.
const DefaultIssuer = "alx-crm"

// LoadConfig reads config from env with sensible defaults.
// You can override with AUTH_ISSUER and AUTH_SECRET.
func LoadConfig() Config {
	issuer := os.Getenv("AUTH_ISSUER")
	if issuer == "" {
		issuer = DefaultIssuer
	}
	secret := os.Getenv("AUTH_SECRET")
	return Config{
		Issuer: issuer,
		Secret: secret,
	}
}
