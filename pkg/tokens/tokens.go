package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/satriajanaka/go-auth-scaffold/internal/domain/entity"
)

// Manager issues and verifies signed session tokens. The signing secret
// and lifetime are fixed at construction; rotating the secret
// invalidates every previously issued token.
type Manager struct {
	secret    []byte
	expiresIn time.Duration
}

// Claims carries the safe user projection under "data", mirroring the
// cookie payload the frontend store expects.
type Claims struct {
	Data entity.SafeUser `json:"data"`
	jwt.RegisteredClaims
}

func NewManager(secret string, expiresIn time.Duration) *Manager {
	return &Manager{secret: []byte(secret), expiresIn: expiresIn}
}

// Issue signs a token embedding the safe projection plus issued-at and
// expiry timestamps. Returns the token string and its expiry.
func (m *Manager) Issue(user entity.SafeUser) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.expiresIn)
	claims := &Claims{
		Data: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.secret)
	return s, exp, err
}

// Verify decodes a token and returns the embedded projection. Malformed
// structure, a signature mismatch, and an expired token all yield
// ok=false; callers treat that the same as an absent token. A token
// presented at or after its expiry instant is invalid.
func (m *Manager) Verify(tokenStr string) (entity.SafeUser, bool) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return entity.SafeUser{}, false
	}
	return claims.Data, true
}
