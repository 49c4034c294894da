package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/agendacraft/pkg/jwt"
	"github.com/johnquangdev/agendacraft/pkg/reqcontext"
)

const testCookie = "agenda_session"

func runSession(t *testing.T, tokens *jwt.Manager, req *http.Request) (*httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen uuid.UUID
	handler := EchoSession(tokens, SessionOptions{CookieName: testCookie}, nil)(func(c echo.Context) error {
		id, ok := GetSessionID(c)
		require.True(t, ok)
		ctxID, ok := reqcontext.GetSessionID(c.Request().Context())
		require.True(t, ok)
		assert.Equal(t, id, ctxID)
		seen = id
		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, handler(c))
	return rec, seen
}

func TestEchoSession_IssuesNewSession(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/v1/agenda", nil)

	rec, id := runSession(t, tokens, req)

	assert.NotEqual(t, uuid.Nil, id)
	token := rec.Header().Get(HeaderSessionToken)
	require.NotEmpty(t, token)

	parsed, err := tokens.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestEchoSession_ReusesCookie(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	existing := uuid.New()
	token, err := tokens.GenerateSessionToken(existing)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/agenda", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})

	rec, id := runSession(t, tokens, req)

	assert.Equal(t, existing, id)
	assert.Empty(t, rec.Header().Get(HeaderSessionToken))
	assert.Empty(t, rec.Result().Cookies())
}

func TestEchoSession_ReusesBearer(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	existing := uuid.New()
	token, err := tokens.GenerateSessionToken(existing)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/agenda", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	_, id := runSession(t, tokens, req)
	assert.Equal(t, existing, id)
}

func TestEchoSession_ReplacesForeignToken(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	foreign, err := jwt.NewManager("other-secret", time.Hour).GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/agenda", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: foreign})

	rec, id := runSession(t, tokens, req)
	assert.NotEqual(t, uuid.Nil, id)
	assert.NotEmpty(t, rec.Header().Get(HeaderSessionToken))
}
