package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the session token claims
type Claims struct {
	SessionID uuid.UUID `json:"sid"`
	jwt.RegisteredClaims
}

// Manager issues and validates anonymous session tokens
type Manager struct {
	secret string
	expiry time.Duration
	issuer string
}

// NewManager creates a new JWT manager
func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{
		secret: secret,
		expiry: expiry,
		issuer: "agendacraft",
	}
}

// GenerateSessionToken signs a token bound to the given session
func (m *Manager) GenerateSessionToken(sessionID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   sessionID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateSessionToken validates a token and returns its session ID
func (m *Manager) ValidateSessionToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithIssuer(m.issuer))

	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}
	if claims.SessionID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("token carries no session")
	}

	return claims.SessionID, nil
}

// GetExpiry returns the session token lifetime
func (m *Manager) GetExpiry() time.Duration {
	return m.expiry
}
