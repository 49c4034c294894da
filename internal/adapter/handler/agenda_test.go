package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/agendacraft/internal/adapter/presenter"
	"github.com/johnquangdev/agendacraft/internal/adapter/repository"
	"github.com/johnquangdev/agendacraft/internal/infrastructure/cache"
	httpmw "github.com/johnquangdev/agendacraft/internal/infrastructure/http/middleware"
	agendaUsecase "github.com/johnquangdev/agendacraft/internal/usecase/agenda"
	"github.com/johnquangdev/agendacraft/pkg/config"
	"github.com/johnquangdev/agendacraft/pkg/jwt"
	pkgvalidator "github.com/johnquangdev/agendacraft/pkg/validator"
)

const reply = `{"title":"Sprint Planning","items":[
 {"title":"Review","summary":"Last sprint.","actionItems":["Close tickets","Demo"],"stakeholders":["Team"],"suggestedPercentage":25},
 {"title":"Plan","summary":"Next sprint.","actionItems":[],"stakeholders":["PO","Team"],"suggestedPercentage":75}]}`

type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (s *stubGenerator) GenerateAgenda(ctx context.Context, text string) (string, error) {
	s.calls++
	return s.reply, s.err
}

type envelope struct {
	Code    interface{}       `json:"code"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Info    string            `json:"info"`
	Details map[string]string `json:"details"`
}

type sessionView struct {
	State         string `json:"state"`
	TotalDuration int    `json:"total_duration"`
	Error         string `json:"error"`
	Agenda        *struct {
		Title            string `json:"title"`
		TotalDuration    int    `json:"total_duration"`
		AllocatedMinutes int    `json:"allocated_minutes"`
		Items            []struct {
			Title       string   `json:"title"`
			Minutes     int      `json:"minutes"`
			ActionItems []string `json:"action_items"`
		} `json:"items"`
	} `json:"agenda"`
}

type testServer struct {
	e         *echo.Echo
	generator *stubGenerator
	token     string
}

func newTestServer(t *testing.T, gen *stubGenerator) *testServer {
	t.Helper()

	store := cache.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	sessions := repository.NewSessionRepository(store, time.Hour)
	svc := agendaUsecase.NewService(sessions, nil, nil, gen, presenter.NewDocxRenderer(), 60, zap.NewNop())

	cfg := &config.Config{Server: config.ServerConfig{Environment: "test"}}
	tokens := jwt.NewManager("test-secret", time.Hour)
	sessionMW := httpmw.EchoSession(tokens, httpmw.SessionOptions{CookieName: "agenda_session"}, nil)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	NewRouter(cfg, NewAgendaHandler(svc, 1<<20, nil), nil, nil, sessionMW).Setup(e)

	return &testServer{e: e, generator: gen}
}

func (s *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	if tok := rec.Header().Get(httpmw.HeaderSessionToken); tok != "" {
		s.token = tok
	}
	return rec
}

func (s *testServer) upload(t *testing.T, fileName, content string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/agenda/upload", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return s.do(t, req)
}

func (s *testServer) setDuration(t *testing.T, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/v1/agenda/duration", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return s.do(t, req)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) (envelope, sessionView) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var view sessionView
	if len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, &view))
	}
	return env, view
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{reply: reply})
	rec := srv.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHealth_ReportsRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	redisStore := cache.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = redisStore.Close() })

	sessions := repository.NewSessionRepository(redisStore, time.Hour)
	svc := agendaUsecase.NewService(sessions, nil, nil, &stubGenerator{reply: reply}, presenter.NewDocxRenderer(), 60, zap.NewNop())
	sessionMW := httpmw.EchoSession(jwt.NewManager("test-secret", time.Hour), httpmw.SessionOptions{CookieName: "agenda_session"}, nil)

	e := echo.New()
	NewRouter(&config.Config{}, NewAgendaHandler(svc, 1<<20, nil), nil, nil, sessionMW).
		WithHealthCheck("redis", redisStore).
		Setup(e)

	get := func() (*httptest.ResponseRecorder, map[string]interface{}) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return rec, body
	}

	rec, body := get()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, map[string]interface{}{"redis": "ok"}, body["dependencies"])

	mr.Close()
	rec, body = get()
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "degraded", body["status"])
	deps, ok := body["dependencies"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEqual(t, "ok", deps["redis"])
}

func TestGetSession_NewSession(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{reply: reply})

	rec := srv.do(t, httptest.NewRequest(http.MethodGet, "/v1/agenda", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, srv.token)

	env, view := decode(t, rec)
	assert.EqualValues(t, 200, env.Code)
	assert.Equal(t, "idle", view.State)
	assert.Equal(t, 60, view.TotalDuration)
	assert.Nil(t, view.Agenda)
}

func TestUpload_FullFlow(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{reply: reply})

	rec := srv.upload(t, "notes.md", "# Sprint\n- review\n- plan")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, view := decode(t, rec)
	assert.Equal(t, "displaying", view.State)
	require.NotNil(t, view.Agenda)
	assert.Equal(t, "Sprint Planning", view.Agenda.Title)
	require.Len(t, view.Agenda.Items, 2)
	assert.Equal(t, 15, view.Agenda.Items[0].Minutes)
	assert.Equal(t, 45, view.Agenda.Items[1].Minutes)
	assert.Equal(t, []string{}, view.Agenda.Items[1].ActionItems)

	// duration change recomputes minutes
	rec = srv.setDuration(t, `{"total_duration": 120}`)
	require.Equal(t, http.StatusOK, rec.Code)
	_, view = decode(t, rec)
	assert.Equal(t, 30, view.Agenda.Items[0].Minutes)
	assert.Equal(t, 90, view.Agenda.Items[1].Minutes)

	// text export
	rec = srv.do(t, httptest.NewRequest(http.MethodGet, "/v1/agenda/export", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), "text/plain"))
	want := "Meeting Agenda: Sprint Planning\n\n" +
		"1. Review (30m)\nSummary: Last sprint.\nAction Items: Close tickets, Demo\nStakeholders: Team\n" +
		"\n" +
		"2. Plan (90m)\nSummary: Next sprint.\nAction Items: \nStakeholders: PO, Team\n"
	assert.Equal(t, want, rec.Body.String())

	// docx export
	rec = srv.do(t, httptest.NewRequest(http.MethodGet, "/v1/agenda/export?format=docx", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, presenter.DocxContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="Sprint-Planning.docx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))

	// second upload is refused while displaying
	rec = srv.upload(t, "other.md", "x")
	assert.Equal(t, http.StatusConflict, rec.Code)
	env, _ := decode(t, rec)
	assert.Equal(t, "AGENDA_ALREADY_DISPLAYED", env.Code)

	// reset keeps the duration
	rec = srv.do(t, httptest.NewRequest(http.MethodDelete, "/v1/agenda", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	_, view = decode(t, rec)
	assert.Equal(t, "idle", view.State)
	assert.Nil(t, view.Agenda)
	assert.Equal(t, 120, view.TotalDuration)

	assert.Equal(t, 1, srv.generator.calls)
}

func TestUpload_UnsupportedType(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{reply: reply})

	rec := srv.upload(t, "slides.pdf", "%PDF")
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	env, _ := decode(t, rec)
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", env.Code)
	assert.Equal(t, "Unsupported file type. Please upload .docx or .md files.", env.Message)
	assert.Equal(t, 0, srv.generator.calls)

	rec = srv.do(t, httptest.NewRequest(http.MethodGet, "/v1/agenda", nil))
	_, view := decode(t, rec)
	assert.Equal(t, "idle", view.State)
	assert.Equal(t, "Unsupported file type. Please upload .docx or .md files.", view.Error)
}

func TestUpload_GenerationFailure(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{err: errors.New("upstream 503")})

	rec := srv.upload(t, "notes.txt", "agenda please")
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	env, _ := decode(t, rec)
	assert.Equal(t, "AGENDA_GENERATION_FAILED", env.Code)

	rec = srv.do(t, httptest.NewRequest(http.MethodGet, "/v1/agenda", nil))
	_, view := decode(t, rec)
	assert.Equal(t, "idle", view.State)
	assert.Nil(t, view.Agenda)
}

func TestUpload_MissingFile(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{reply: reply})

	req := httptest.NewRequest(http.MethodPost, "/v1/agenda/upload", strings.NewReader(""))
	rec := srv.do(t, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env, _ := decode(t, rec)
	assert.Equal(t, "MISSING_FILE", env.Code)
}

func TestUpdateDuration_Validation(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{reply: reply})

	rec := srv.setDuration(t, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env, _ := decode(t, rec)
	assert.Equal(t, "INVALID_ARGUMENT", env.Code)
	assert.Equal(t, "required", env.Details["total_duration"])

	rec = srv.setDuration(t, `{"total_duration": "soon"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.setDuration(t, `{"total_duration": 9223372036854775807}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env, _ = decode(t, rec)
	assert.Equal(t, "max", env.Details["total_duration"])

	rec = srv.setDuration(t, `{"total_duration": 10080}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.setDuration(t, `{"total_duration": 0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	_, view := decode(t, rec)
	assert.Equal(t, 1, view.TotalDuration)
}

func TestExport_Errors(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{reply: reply})

	rec := srv.do(t, httptest.NewRequest(http.MethodGet, "/v1/agenda/export", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env, _ := decode(t, rec)
	assert.Equal(t, "AGENDA_NOT_FOUND", env.Code)

	rec = srv.do(t, httptest.NewRequest(http.MethodGet, "/v1/agenda/export?format=pdf", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOptionalFeaturesDisabled(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{reply: reply})

	rec := srv.do(t, httptest.NewRequest(http.MethodGet, "/v1/agenda/generations", nil))
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	env, _ := decode(t, rec)
	assert.Equal(t, "FEATURE_DISABLED", env.Code)

	rec = srv.do(t, httptest.NewRequest(http.MethodGet, "/v1/agenda/uploads", nil))
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "Sprint-Planning.docx", exportFileName("Sprint Planning"))
	assert.Equal(t, "Q3-Roadmap-Review.docx", exportFileName("Q3: Roadmap / Review!"))
	assert.Equal(t, "agenda.docx", exportFileName("???"))
}
