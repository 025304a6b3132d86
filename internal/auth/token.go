package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the HTTP-only cookie the login endpoint sets.
const CookieName = "auth-token"

const tokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the payload embedded in a signed credential.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: tokenTTL}
}

func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

func (t *Tokens) Issue(id Identity) (string, error) {
	now := time.Now()
	c := claims{
		UserID: id.UserID,
		Email:  id.Email,
		Role:   id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (t *Tokens) Verify(raw string) (*Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(raw, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: c.UserID, Email: c.Email, Role: c.Role}, nil
}

// FromRequest locates a credential in the auth cookie or a Bearer
// header and verifies it. Every failure mode collapses to nil: callers
// must treat a nil identity as unauthenticated.
func (t *Tokens) FromRequest(r *http.Request) *Identity {
	raw := ""
	if cookie, err := r.Cookie(CookieName); err == nil {
		raw = cookie.Value
	} else {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return nil
		}
		raw = strings.TrimPrefix(header, "Bearer ")
	}

	id, err := t.Verify(raw)
	if err != nil {
		return nil
	}
	return id
}
