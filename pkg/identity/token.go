package identity

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a bearer token fails verification.
var ErrInvalidToken = errors.New("invalid identity token")

// Authenticator resolves the user behind a request. It returns nil and no
// error for anonymous requests.
type Authenticator interface {
	Authenticate(r *http.Request) (*User, error)
}

// TokenConfig configures HS256 identity tokens.
type TokenConfig struct {
	// Secret is the shared HMAC key. Required.
	Secret []byte

	// Issuer, when set, must match the iss claim.
	Issuer string

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// claims is the token payload.
type claims struct {
	jwt.RegisteredClaims
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// Tokens verifies and issues bearer tokens.
type Tokens struct {
	cfg TokenConfig
}

// NewTokens returns a token verifier and issuer.
func NewTokens(cfg TokenConfig) (*Tokens, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("identity token secret is required")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Tokens{cfg: cfg}, nil
}

// Authenticate implements Authenticator using the Authorization header.
func (t *Tokens) Authenticate(r *http.Request) (*User, error) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if h == "" {
		return nil, nil
	}

	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return nil, fmt.Errorf("%w: expected bearer authorization", ErrInvalidToken)
	}

	return t.Verify(token)
}

// Verify parses a token and returns its user.
func (t *Tokens) Verify(token string) (*User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.cfg.Now),
		jwt.WithExpirationRequired(),
	}
	if t.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.cfg.Issuer))
	}

	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return t.cfg.Secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if parsed.Subject == "" {
		return nil, fmt.Errorf("%w: sub is required", ErrInvalidToken)
	}

	return &User{
		ID:    parsed.Subject,
		Name:  parsed.Name,
		Roles: parsed.Roles,
	}, nil
}

// Issue signs a token for u valid for ttl.
func (t *Tokens) Issue(u User, ttl time.Duration) (string, error) {
	if u.ID == "" {
		return "", errors.New("user id is required")
	}

	now := t.cfg.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    t.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:  u.Name,
		Roles: u.Roles,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("sign identity token: %w", err)
	}
	return signed, nil
}

// Anonymous is an Authenticator that treats every request as anonymous.
type Anonymous struct{}

// Authenticate always returns nil.
func (Anonymous) Authenticate(*http.Request) (*User, error) {
	return nil, nil
}
