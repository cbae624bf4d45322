package authgate

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rickscode/SabaySell-sub001/internal/models"
)

// ErrResolverMisconfigured signals that the identity collaborator cannot be
// consulted at all (e.g. no verification secret configured). The gate treats
// it as a fail-open condition, not a per-request authentication failure.
var ErrResolverMisconfigured = errors.New("session resolver misconfigured")

// SessionResolver resolves the current session for a request. A nil session
// with a nil error means an anonymous request; an error means the resolver
// itself is unusable.
type SessionResolver interface {
	Resolve(r *http.Request) (*models.Session, error)
}

// sessionCookie is the cookie the web frontend stores the token in.
const sessionCookie = "session"

// JWTResolver verifies an HS256 session token issued by the identity
// collaborator, read from the session cookie or an Authorization bearer
// header.
type JWTResolver struct {
	secret []byte
}

// NewJWTResolver creates a resolver verifying tokens with the given secret
func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret)}
}

// Resolve extracts and verifies the session token. An absent or invalid
// token yields an anonymous request, not an error: only a missing secret is
// a resolver failure.
func (j *JWTResolver) Resolve(r *http.Request) (*models.Session, error) {
	if len(j.secret) == 0 {
		return nil, fmt.Errorf("resolve session: %w - empty JWT secret", ErrResolverMisconfigured)
	}

	raw := tokenFromRequest(r)
	if raw == "" {
		return nil, nil
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil
	}
	userID, _ := claims["user_id"].(string)
	exp, expErr := claims.GetExpirationTime()
	if userID == "" || expErr != nil || exp == nil {
		return nil, nil
	}

	return &models.Session{UserID: userID, Expiry: exp.Time}, nil
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// StaticResolver always returns the same session. It exists for tests and
// local development seeding.
type StaticResolver struct {
	Session *models.Session
	Err     error
}

// Resolve returns the configured session or error
func (s StaticResolver) Resolve(_ *http.Request) (*models.Session, error) {
	return s.Session, s.Err
}
