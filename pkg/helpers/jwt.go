package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// JWTManager signs and verifies access tokens. Whatever claim set the caller
// supplies is signed as-is; the API contract only requires an "email" claim
// to be present for ownership checks downstream.
type JWTManager struct {
	Secret    []byte
	AccessTTL time.Duration
}

func NewJWTManager(secret string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), AccessTTL: accessTTL}
}

// Issue signs the given claim set with an expiry of AccessTTL from now.
// The input map is not mutated.
func (m *JWTManager) Issue(payload map[string]any) (string, time.Time, error) {
	exp := time.Now().Add(m.AccessTTL)
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = jwt.NewNumericDate(time.Now())
	claims["exp"] = jwt.NewNumericDate(exp)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Verify checks signature and expiry and returns the decoded claims.
func (m *JWTManager) Verify(tokenStr string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// EmailClaim extracts the "email" claim; empty string when absent.
func EmailClaim(claims jwt.MapClaims) string {
	if v, ok := claims["email"].(string); ok {
		return v
	}
	return ""
}
