//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/alarino/alarino-backend/internal/adapter/postgres"
	dailywordrepo "github.com/alarino/alarino-backend/internal/adapter/postgres/dailyword"
	missingrepo "github.com/alarino/alarino-backend/internal/adapter/postgres/missing"
	proverbrepo "github.com/alarino/alarino-backend/internal/adapter/postgres/proverb"
	"github.com/alarino/alarino-backend/internal/adapter/postgres/testhelper"
	translationrepo "github.com/alarino/alarino-backend/internal/adapter/postgres/translation"
	wordrepo "github.com/alarino/alarino-backend/internal/adapter/postgres/word"
	"github.com/alarino/alarino-backend/internal/config"
	"github.com/alarino/alarino-backend/internal/service/bulkupload"
	"github.com/alarino/alarino-backend/internal/service/dailyword"
	proverbsvc "github.com/alarino/alarino-backend/internal/service/proverb"
	"github.com/alarino/alarino-backend/internal/service/translator"
	"github.com/alarino/alarino-backend/internal/transport/middleware"
	"github.com/alarino/alarino-backend/internal/transport/rest"
)

const adminAPIKey = "test-admin-key"

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). The oracle is disabled,
// so translate requests are dictionary-only.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	words := wordrepo.New(pool)
	translations := translationrepo.New(pool)
	missing := missingrepo.New(pool)
	daily := dailywordrepo.New(pool)
	proverbs := proverbrepo.New(pool)

	translatorSvc := translator.NewService(logger, words, missing, nil, 50*time.Millisecond)
	dailySvc := dailyword.NewService(logger, daily, words, translations, 5, true)
	proverbSvc := proverbsvc.NewService(logger, proverbs)
	uploadSvc := bulkupload.NewService(logger, words, translations, txm)

	cfg := &config.Config{
		Server: config.ServerConfig{
			RateLimitPerMin: 10000,
		},
		Admin: config.AdminConfig{APIKey: adminAPIKey},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(cfg, logger, limiter, rest.Handlers{
		Translate: rest.NewTranslateHandler(translatorSvc, logger),
		DailyWord: rest.NewDailyWordHandler(dailySvc, logger),
		Proverb:   rest.NewProverbHandler(proverbSvc, logger),
		Admin:     rest.NewAdminHandler(uploadSvc, translatorSvc, logger),
		Health:    rest.NewHealthHandler(pool, "test-version"),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// envelope mirrors the API response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doJSON sends a request with an optional JSON body and admin key, and
// returns the status code plus the decoded envelope.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, adminKey string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if adminKey != "" {
		req.Header.Set("Authorization", "Bearer "+adminKey)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// The admin gate and the rate limiter reply with plain text; leave
	// the envelope zeroed for those.
	var env envelope
	if json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &env))
	}

	return resp.StatusCode, env
}

// decodeData unmarshals the envelope data into out.
func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}
