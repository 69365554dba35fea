package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/peoplehub/hr-platform/internal/core/domain"
)

const tokenIssuer = "hr-platform"

// TokenClaims is the payload embedded in a session token: identity id
// (subject), username, and role id, plus the registered expiry.
type TokenClaims struct {
	Username string `json:"username"`
	RoleID   string `json:"role_id"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed session tokens. Validation
// is stateless: the token is the sole source of truth until it expires, so
// deactivating an account does not revoke tokens already in the wild. That
// trade-off is accepted here in exchange for skipping a store lookup on every
// request.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 4 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding the identity's id, username, and role.
func (s *TokenService) Issue(identity *domain.Identity) (string, error) {
	now := time.Now().UTC()
	claims := TokenClaims{
		Username: identity.Username,
		RoleID:   identity.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Authenticate verifies a previously issued token and recovers its claims.
// Failures map onto the token error taxonomy: domain.ErrTokenMalformed for
// structural problems, domain.ErrTokenExpired past the embedded expiry, and
// domain.ErrTokenInvalid for everything else including signature mismatch.
func (s *TokenService) Authenticate(token string) (*TokenClaims, error) {
	if token == "" {
		return nil, domain.ErrTokenMalformed
	}

	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenInvalid
		}
	}
	if !parsed.Valid || claims.Subject == "" || claims.Username == "" || claims.RoleID == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
