package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiorswala/studio-backend/internal/db"
	"github.com/interiorswala/studio-backend/internal/handlers"
	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/middleware"
	"github.com/interiorswala/studio-backend/internal/realtime"
	"github.com/interiorswala/studio-backend/internal/repos"
	"github.com/interiorswala/studio-backend/internal/server"
	"github.com/interiorswala/studio-backend/internal/services"
	"github.com/interiorswala/studio-backend/internal/types"
)

type stubGenerator struct {
	concept *types.Concept
	err     error
}

func (sg *stubGenerator) Generate(ctx context.Context, prompt string) (*types.Concept, error) {
	if sg.err != nil {
		return nil, sg.err
	}
	return sg.concept, nil
}

func newTestRouter(t *testing.T, generator services.ConceptGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("development")
	require.NoError(t, err)
	t.Cleanup(log.Sync)

	sqliteService, err := db.Open(filepath.Join(t.TempDir(), "studio.db"), log)
	require.NoError(t, err)
	require.NoError(t, sqliteService.AutoMigrateAll())
	require.NoError(t, sqliteService.SeedDefaults())
	gormDB := sqliteService.DB()

	profileRepo := repos.NewProfileRepo(gormDB, log)
	portfolioRepo := repos.NewPortfolioRepo(gormDB, log)
	quotationRepo := repos.NewQuotationRepo(gormDB, log)

	hub := realtime.NewHub(log)
	notifier := services.NewQuotationNotifier(hub, nil)

	profileService := services.NewProfileService(gormDB, log, profileRepo)
	portfolioService := services.NewPortfolioService(gormDB, log, portfolioRepo)
	quotationService := services.NewQuotationService(gormDB, log, quotationRepo, notifier)
	authService := services.NewAuthService(log)

	return server.NewRouter(server.RouterConfig{
		ProfileHandler:   handlers.NewProfileHandler(profileService),
		PortfolioHandler: handlers.NewPortfolioHandler(portfolioService),
		QuotationHandler: handlers.NewQuotationHandler(quotationService),
		ConceptHandler:   handlers.NewConceptHandler(log, generator),
		AuthHandler:      handlers.NewAuthHandler(authService),
		RealtimeHandler:  handlers.NewRealtimeHandler(log, hub),
		AdminMiddleware:  middleware.NewAdminMiddleware(log, authService),
		Environment:      "development",
		StaticDir:        "dist",
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if out != nil && rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out))
	}
	return rr
}

func TestSubmitQuotationEndToEnd(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	router := newTestRouter(t, nil)

	submission := map[string]string{
		"name":        "Asha",
		"email":       "a@x.com",
		"phone":       "555",
		"projectType": "Residential",
		"budget":      "₹20L-₹50L",
		"message":     "test",
	}
	var created struct {
		ID int64 `json:"id"`
	}
	rr := doJSON(t, router, http.MethodPost, "/api/quotations", submission, &created)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotZero(t, created.ID)

	var listed []types.QuotationRequest
	rr = doJSON(t, router, http.MethodGet, "/api/quotations", nil, &listed)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, "Asha", listed[0].Name)
	assert.Equal(t, "₹20L-₹50L", listed[0].Budget)
	assert.False(t, listed[0].CreatedAt.IsZero())
}

func TestDeleteMissingPortfolioItemSucceeds(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	router := newTestRouter(t, nil)

	var before []types.PortfolioItem
	rr := doJSON(t, router, http.MethodGet, "/api/portfolio", nil, &before)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, before, 6)

	var ack struct {
		Success bool `json:"success"`
	}
	rr = doJSON(t, router, http.MethodDelete, "/api/portfolio/999999", nil, &ack)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, ack.Success)

	var after []types.PortfolioItem
	rr = doJSON(t, router, http.MethodGet, "/api/portfolio", nil, &after)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, after, len(before))
}

func TestDeletePortfolioRejectsNonNumericID(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	router := newTestRouter(t, nil)

	rr := doJSON(t, router, http.MethodDelete, "/api/portfolio/not-a-number", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProfileReplaceRoundTrip(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	router := newTestRouter(t, nil)

	replacement := map[string]any{
		"phone":   "+91 11111 22222",
		"email":   "studio@example.com",
		"address": "New Studio Address",
		"socialLinks": []map[string]string{
			{"platform": "Instagram", "url": "https://instagram.com/studio"},
			{"platform": "LinkedIn", "url": "https://linkedin.com/company/studio"},
		},
	}
	var ack struct {
		Success bool `json:"success"`
	}
	rr := doJSON(t, router, http.MethodPost, "/api/profile", replacement, &ack)
	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, ack.Success)

	var got types.Profile
	rr = doJSON(t, router, http.MethodGet, "/api/profile", nil, &got)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "+91 11111 22222", got.Phone)
	assert.Equal(t, "studio@example.com", got.Email)

	var links []types.SocialLink
	require.NoError(t, json.Unmarshal(got.SocialLinks, &links))
	require.Len(t, links, 2)
	assert.Equal(t, "Instagram", links[0].Platform)
	assert.Equal(t, "LinkedIn", links[1].Platform)
}

func TestWebSocketReceivesNewQuotation(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	router := newTestRouter(t, nil)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	submission := map[string]string{
		"name":        "Ravi",
		"email":       "r@x.com",
		"phone":       "556",
		"projectType": "Commercial",
		"budget":      "₹50L+",
		"message":     "office floor",
	}
	raw, err := json.Marshal(submission)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+"/api/quotations", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var event struct {
		Type      string                  `json:"type"`
		Quotation *types.QuotationRequest `json:"quotation"`
	}
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "NEW_QUOTATION", event.Type)
	require.NotNil(t, event.Quotation)
	assert.Equal(t, "Ravi", event.Quotation.Name)
	assert.Equal(t, "Commercial", event.Quotation.ProjectType)
	assert.NotZero(t, event.Quotation.ID)
	assert.False(t, event.Quotation.CreatedAt.IsZero())

	// A listener connecting after the broadcast gets nothing; it must fetch
	// current state via the list endpoint instead.
	late, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = late.Close() })
	require.NoError(t, late.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	var missed json.RawMessage
	err = late.ReadJSON(&missed)
	require.Error(t, err, "late listener should time out without a replayed event")
}

func TestConceptEndpoint(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	t.Run("configured generator returns concept", func(t *testing.T) {
		router := newTestRouter(t, &stubGenerator{concept: &types.Concept{
			Theme:        "Japandi Calm",
			ColorPalette: []string{"#EAE7E1", "#2F2F2F"},
			KeyFeatures:  []string{"low seating"},
			Materials:    []string{"oak"},
			Description:  "warm minimalism",
			DesignPlan:   []string{"measure", "mood board"},
		}})

		var got types.Concept
		rr := doJSON(t, router, http.MethodPost, "/api/concept", map[string]string{"prompt": "calm living room"}, &got)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Japandi Calm", got.Theme)
		assert.Len(t, got.ColorPalette, 2)
	})

	t.Run("provider failure maps to bad gateway", func(t *testing.T) {
		router := newTestRouter(t, &stubGenerator{err: fmt.Errorf("model overloaded")})
		rr := doJSON(t, router, http.MethodPost, "/api/concept", map[string]string{"prompt": "x"}, nil)
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("unconfigured generator reports unavailable", func(t *testing.T) {
		router := newTestRouter(t, nil)
		rr := doJSON(t, router, http.MethodPost, "/api/concept", map[string]string{"prompt": "x"}, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestAdminRoutesRequireTokenWhenConfigured(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "studio-secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_JWT_SECRET", "router-test-key")
	router := newTestRouter(t, nil)

	rr := doJSON(t, router, http.MethodGet, "/api/quotations", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	// Public submission stays open.
	var created struct {
		ID int64 `json:"id"`
	}
	rr = doJSON(t, router, http.MethodPost, "/api/quotations", map[string]string{"name": "Open"}, &created)
	require.Equal(t, http.StatusOK, rr.Code)

	var login struct {
		Token string `json:"token"`
	}
	rr = doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]string{"password": "studio-secret"}, &login)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotEmpty(t, login.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/quotations", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
