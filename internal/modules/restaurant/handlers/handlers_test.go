package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/chat"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/models"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/repositories"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/services"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/shared/database"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

// stubGenerator answers every call with the same text or error
type stubGenerator struct {
	text string
	err  error
}

func (g *stubGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	return g.text, g.err
}

func (g *stubGenerator) GetProviderName() string { return "stub" }

type stubStore struct {
	rows []analytics.OrderRecord
}

func (s *stubStore) FetchOrders(ctx context.Context, userID string, r analytics.DateRange) ([]analytics.OrderRecord, error) {
	var out []analytics.OrderRecord
	for _, row := range s.rows {
		if row.UserID == userID && r.Contains(row.OrderDate) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubStore) FetchFullContext(ctx context.Context, userID string) (*analytics.FullContext, error) {
	return &analytics.FullContext{}, nil
}

func chatApp(invoker *llm.Invoker) *fiber.App {
	store := &stubStore{rows: []analytics.OrderRecord{
		{UserID: "u1", OrderDate: "2024-06-10", ItemName: "Künefe", MenuGroup: "Tatlı", ServiceType: "Paket Servis", Amount: decimal.RequireFromString("100")},
		{UserID: "u1", OrderDate: "2024-06-11", ItemName: "Ayran", MenuGroup: "İçecek", ServiceType: "Paket Servis", Amount: decimal.RequireFromString("50")},
	}}
	engine := chat.NewEngine(store, invoker, chat.WithClock(func() time.Time {
		return time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)
	}))

	app := fiber.New()
	(&Handlers{
		Health: NewHealthHandler("stub"),
		Chat:   NewChatHandler(engine),
	}).Register(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return do(t, app, req)
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestChatValidation(t *testing.T) {
	app := chatApp(llm.NewInvoker(&stubGenerator{text: "ok"}, []string{"m1"}))

	status, body := postJSON(t, app, "/api/chat", `{"messages":[]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "messages required", body["error"])

	status, body = postJSON(t, app, "/api/chat", `{"messages":[{"role":"user","content":"   "}]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "empty_user_message", body["error"])
}

func TestChatMissingCredential(t *testing.T) {
	app := chatApp(nil)

	status, body := postJSON(t, app, "/api/chat", `{"messages":[{"role":"user","content":"Merhaba"}]}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Missing GOOGLE_GENAI_API_KEY", body["error"])
}

func TestChatGroundedSummary(t *testing.T) {
	app := chatApp(llm.NewInvoker(&stubGenerator{text: "Toplam 150 TL."}, []string{"m1"}))

	status, body := postJSON(t, app, "/api/chat",
		`{"userId":"u1","messages":[{"role":"user","content":"Toplam gelir ne kadar?"}]}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Toplam 150 TL.", body["reply"])
	assert.Equal(t, chat.AnalyticsModel, body["model"])
}

func TestChatInvalidCredential(t *testing.T) {
	gen := &stubGenerator{err: &llm.ProviderError{
		Provider:   "gemini",
		Model:      "m1",
		StatusCode: http.StatusUnauthorized,
		Body:       "API key not valid. Please pass a valid API key.",
	}}
	app := chatApp(llm.NewInvoker(gen, []string{"m1"}))

	status, body := postJSON(t, app, "/api/chat", `{"messages":[{"role":"user","content":"Merhaba"}]}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "API_KEY_INVALID", body["error"])
	assert.Equal(t, invalidKeyHint, body["detail"])
}

func TestChatNoSupportedModel(t *testing.T) {
	gen := &stubGenerator{err: &llm.ProviderError{Provider: "gemini", Model: "m1", StatusCode: http.StatusNotFound, Body: "not found"}}
	app := chatApp(llm.NewInvoker(gen, []string{"m1", "m2"}))

	status, body := postJSON(t, app, "/api/chat", `{"messages":[{"role":"user","content":"Merhaba"}]}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "no_supported_model_for_api_version", body["error"])
}

func TestHealthRoutes(t *testing.T) {
	app := chatApp(nil)

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Restaurant Analytics API", body["name"])
	assert.Equal(t, "1.0.0", body["version"])

	status, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, body["time"])
}

func dataApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.Open("sqlite:"+filepath.Join(t.TempDir(), "api.db"), logger.Silent)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.MenuItem{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	orderRepo := repositories.NewOrderRepo(db)
	menuRepo := repositories.NewMenuItemRepo(db)

	app := fiber.New()
	(&Handlers{
		Dashboard: NewDashboardHandler(services.NewDashboardService(orderRepo)),
		Order: NewOrderHandler(
			services.NewOrderService(orderRepo, export.NewService()),
			services.NewSeedService(orderRepo, menuRepo),
		),
		Menu: NewMenuHandler(services.NewMenuService(menuRepo)),
	}).Register(app)
	return app
}

func TestOrderLifecycle(t *testing.T) {
	app := dataApp(t)

	status, body := postJSON(t, app, "/api/orders",
		`{"user_id":"u1","menu_group":"Tatlı","service_type":"Paket Servis","item_name":"Künefe","amount":0}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["error"], "required")

	status, body = postJSON(t, app, "/api/orders",
		`{"user_id":"u1","menu_group":"Tatlı","service_type":"Paket Servis","item_name":"Künefe","amount":12.5,"order_date":"2024-06-10"}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "2024-06-10", body["order_date"])

	status, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/orders?userId=u1&start=2024-06-01", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 1, body["total"])

	status, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/orders?userId=u1&start=01-06-2024", nil))
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard?userId=u1", nil))
	assert.Equal(t, fiber.StatusOK, status)
	kpis := body["kpis"].(map[string]interface{})
	assert.EqualValues(t, 12.5, kpis["totalRevenue"])
	assert.EqualValues(t, 1, kpis["orderCount"])
}

func TestSeedRequiresMenu(t *testing.T) {
	app := dataApp(t)

	status, _ := do(t, app, httptest.NewRequest(http.MethodPost, "/api/orders/seed?userId=u1", nil))
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = postJSON(t, app, "/api/menu-items", `{"name":"Künefe","menu_group":"Tatlı"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := do(t, app, httptest.NewRequest(http.MethodPost, "/api/orders/seed?userId=u1", nil))
	assert.Equal(t, fiber.StatusCreated, status)
	assert.EqualValues(t, 120, body["inserted"])
}

func TestExportEndpoint(t *testing.T) {
	app := dataApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/orders/export?userId=u1&format=pdf", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "siparisler.pdf")

	status, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/api/orders/export?userId=u1&format=csv", nil))
	assert.Equal(t, fiber.StatusBadRequest, status)
}
