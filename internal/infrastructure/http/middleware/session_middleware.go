package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/agendacraft/pkg/jwt"
	"github.com/johnquangdev/agendacraft/pkg/reqcontext"
)

const (
	// SessionIDKey is the echo context key holding the session uuid.UUID
	SessionIDKey = "session_id"
	// HeaderSessionToken carries a newly issued token for clients that prefer Bearer auth
	HeaderSessionToken = "X-Session-Token"
)

// SessionOptions configures the anonymous session middleware
type SessionOptions struct {
	CookieName   string
	SecureCookie bool
}

// EchoSession returns an Echo middleware that resolves the caller's anonymous session.
// A valid token from the Authorization header or the session cookie is reused;
// otherwise a new session ID is issued and sent back as a cookie and a header.
func EchoSession(tokens *jwt.Manager, opts SessionOptions, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			sessionID, err := tokens.ValidateSessionToken(extractToken(req, opts.CookieName))
			if err != nil {
				sessionID = uuid.New()
				token, err := tokens.GenerateSessionToken(sessionID)
				if err != nil {
					if logger != nil {
						logger.Error("failed to issue session token", zap.Error(err))
					}
					return echo.NewHTTPError(http.StatusInternalServerError, "Failed to start session")
				}

				c.SetCookie(&http.Cookie{
					Name:     opts.CookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(tokens.GetExpiry().Seconds()),
					HttpOnly: true,
					Secure:   opts.SecureCookie,
					SameSite: http.SameSiteLaxMode,
				})
				c.Response().Header().Set(HeaderSessionToken, token)
			}

			ctx := reqcontext.WithSessionID(req.Context(), sessionID)
			if rid := requestID(c); rid != "" {
				ctx = reqcontext.WithRequestID(ctx, rid)
			}
			c.SetRequest(req.WithContext(ctx))
			c.Set(SessionIDKey, sessionID)

			return next(c)
		}
	}
}

// GetSessionID returns the session resolved by EchoSession
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(SessionIDKey).(uuid.UUID)
	return id, ok
}

// Helper functions

func extractToken(r *http.Request, cookieName string) string {
	// Try Authorization header first
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	// Try cookie as fallback
	cookie, err := r.Cookie(cookieName)
	if err == nil {
		return cookie.Value
	}

	return ""
}

// requestID prefers the ID generated by echo's RequestID middleware
func requestID(c echo.Context) string {
	if rid := c.Response().Header().Get(echo.HeaderXRequestID); rid != "" {
		return rid
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
