package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// Principal holds identity extracted from a validated token.
type Principal struct {
	UserID string
	Email  string
	Roles  []string
	Claims jwt.MapClaims
}

var (
	ErrNoToken       = errors.New("no token provided")
	ErrNoSecret      = errors.New("auth secret not configured")
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidIssuer = errors.New("invalid issuer")
	ErrMissingSub    = errors.New("missing sub claim")
)

// Verifier validates HMAC-signed API tokens.
type Verifier struct {
	cfg Config
}

// NewVerifier constructs a verifier with config.
func NewVerifier(cfg Config) *Verifier {
	return &Verifier{cfg: cfg}
}

// ParseAndVerifyToken verifies a bearer token, validates issuer/exp and returns Principal.
func (v *Verifier) ParseAndVerifyToken(tokenString string) (*Principal, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}
	if v.cfg.Secret == "" {
		return nil, ErrNoSecret
	}
	tokenString = strings.TrimSpace(tokenString)
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// enforce HS256
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(v.cfg.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	// issuer
	if iss, _ := claims["iss"].(string); iss != v.cfg.Issuer {
		return nil, ErrInvalidIssuer
	}
	// exp
	if !claims.VerifyExpiresAt(jwt.TimeFunc().Unix(), true) {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrMissingSub
	}

	email, _ := claims["email"].(string)

	var roles []string
	if rr, ok := claims["roles"].([]interface{}); ok {
		for _, r := range rr {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
	}

	return &Principal{
		UserID: sub,
		Email:  email,
		Roles:  roles,
		Claims: claims,
	}, nil
}
