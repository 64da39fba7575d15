package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by a moderator access token.
type Claims struct {
	ModeratorID string `json:"moderator_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// Manager handles JWT operations for the moderation console.
type Manager struct {
	secret string
	expiry time.Duration
}

// NewManager creates a JWT manager. expiryHours bounds access token lifetime.
func NewManager(secret string, expiryHours int) *Manager {
	if expiryHours <= 0 {
		expiryHours = 12
	}
	return &Manager{
		secret: secret,
		expiry: time.Duration(expiryHours) * time.Hour,
	}
}

// GenerateAccessToken issues a moderator access token.
func (m *Manager) GenerateAccessToken(moderatorID, email string) (string, error) {
	claims := Claims{
		ModeratorID: moderatorID,
		Email:       email,
		Role:        "moderator",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateToken validates and parses a token.
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
