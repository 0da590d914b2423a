package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eesaa/retail-suite/internal/application/assistant"
	"github.com/eesaa/retail-suite/internal/application/auth"
	"github.com/eesaa/retail-suite/internal/application/billing"
	"github.com/eesaa/retail-suite/internal/application/documents"
	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/application/inventory"
	"github.com/eesaa/retail-suite/internal/application/ledger"
	"github.com/eesaa/retail-suite/internal/application/ports"
	"github.com/eesaa/retail-suite/internal/application/reports"
	"github.com/eesaa/retail-suite/internal/infrastructure/excel"
	infrapdf "github.com/eesaa/retail-suite/internal/infrastructure/pdf"
	"github.com/eesaa/retail-suite/internal/infrastructure/storage"
	apihttp "github.com/eesaa/retail-suite/internal/interfaces/http"
	"github.com/eesaa/retail-suite/internal/state"
	"github.com/eesaa/retail-suite/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test wiring
// ──────────────────────────────────────────────────────────────────────────────

type stubLLM struct{}

func (stubLLM) ChatWithContext(context.Context, string, []byte) (string, error) {
	return "stub reply", nil
}
func (stubLLM) GenerateText(context.Context, string) (string, error) { return "stub text", nil }
func (stubLLM) Analyze(context.Context, string) (string, error)      { return "stub analysis", nil }
func (stubLLM) SearchGrounded(context.Context, string) (*ports.GroundedResult, error) {
	return &ports.GroundedResult{Text: "stub trends"}, nil
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	log := logger.Nop()
	store, err := state.New(storage.NewMemoryKV(), log)
	require.NoError(t, err)

	authUC, err := auth.NewWithPINs(auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer,
	}, nil, log)
	require.NoError(t, err)

	ledgerUC := ledger.NewUseCase(store, log)
	reportsUC := reports.NewUseCase(store, log)

	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		AuthUC:      authUC,
		BillingUC:   billing.NewUseCase(store, log),
		LedgerUC:    ledgerUC,
		InventoryUC: inventory.NewUseCase(store, log),
		ReportsUC:   reportsUC,
		AssistantUC: assistant.NewUseCase(store, stubLLM{}, log),
		DocumentsUC: documents.NewUseCase(store, ledgerUC, reportsUC, infrapdf.NewMarotoRenderer(), excel.NewExporter()),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func login(t *testing.T, app *fiber.App, userID, pin string) string {
	t.Helper()
	resp, body := jsonRequest(t, app, nethttp.MethodPost, "/api/auth/login", "", dto.LoginRequest{UserID: userID, PIN: pin})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode, "login failed: %s", body)

	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func jsonRequest(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (*nethttp.Response, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth endpoints
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ListUsersIsPublic(t *testing.T) {
	app := setupApp(t)

	resp, body := jsonRequest(t, app, nethttp.MethodGet, "/api/auth/users", "", nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var users []dto.UserResponse
	require.NoError(t, json.Unmarshal(body, &users))
	require.Len(t, users, 3)
	assert.Equal(t, "Rajesh Shah", users[0].Name)
}

func TestAPI_LoginRejectsBadPIN(t *testing.T) {
	app := setupApp(t)

	resp, body := jsonRequest(t, app, nethttp.MethodPost, "/api/auth/login", "", dto.LoginRequest{UserID: "1", PIN: "0000"})
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "UNAUTHORIZED")
}

func TestAPI_ProtectedRoutesNeedToken(t *testing.T) {
	app := setupApp(t)

	resp, _ := jsonRequest(t, app, nethttp.MethodGet, "/api/dashboard", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Billing flow
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CheckoutHappyPath(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "3", "3333")

	resp, body := jsonRequest(t, app, nethttp.MethodPost, "/api/billing/checkout", token, dto.CheckoutRequest{
		CustomerID:  "C1",
		Items:       []dto.CartLineRequest{{ProductID: "P1", Quantity: 1}},
		PaymentType: "CASH",
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode, "body: %s", body)

	var inv map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &inv))
	assert.Equal(t, "B1", inv["branchId"], "staff sell from their own branch")
	assert.Equal(t, "6136", inv["grandTotal"], "5,200 plus 18% GST")
}

func TestAPI_CheckoutInsufficientStock(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "3", "3333")

	resp, body := jsonRequest(t, app, nethttp.MethodPost, "/api/billing/checkout", token, dto.CheckoutRequest{
		CustomerID:  "C1",
		Items:       []dto.CartLineRequest{{ProductID: "P1", Quantity: 50}},
		PaymentType: "CASH",
	})
	assert.Equal(t, nethttp.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "INSUFFICIENT_STOCK")
}

func TestAPI_CheckoutCreditLimit(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "2", "2222")

	breach := dto.CheckoutRequest{
		CustomerID:  "C1",
		BranchID:    "B3",
		Items:       []dto.CartLineRequest{{ProductID: "P2", Quantity: 2}},
		PaymentType: "CREDIT",
	}
	resp, body := jsonRequest(t, app, nethttp.MethodPost, "/api/billing/checkout", token, breach)
	assert.Equal(t, nethttp.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "CREDIT_LIMIT_EXCEEDED")

	breach.Override = true
	resp, _ = jsonRequest(t, app, nethttp.MethodPost, "/api/billing/checkout", token, breach)
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode, "override lets the sale through")
}

// ──────────────────────────────────────────────────────────────────────────────
// Role enforcement and lookups
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CatalogWritesNeedAdmin(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "3", "3333")

	resp, body := jsonRequest(t, app, nethttp.MethodPost, "/api/products", token, dto.SaveProductRequest{
		Name: "Bench Scale", SKU: "BS-1",
	})
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestAPI_UnknownCustomerIs404(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "1", "1111")

	resp, body := jsonRequest(t, app, nethttp.MethodGet, "/api/customers/missing", token, nil)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestAPI_TransferRouteIsNotAProductID(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "1", "1111")

	resp, body := jsonRequest(t, app, nethttp.MethodPost, "/api/products/transfer", token, dto.TransferRequest{
		ProductID: "P1", FromBranch: "FACTORY", ToBranch: "B1", Quantity: 5,
	})
	assert.Equal(t, nethttp.StatusNoContent, resp.StatusCode, "body: %s", body)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reports and documents
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Dashboard(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "3", "3333")

	resp, body := jsonRequest(t, app, nethttp.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var d map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &d))
	assert.Equal(t, "B1", d["branchId"], "staff dashboards are branch scoped")
}

func TestAPI_SalesReportRejectsUnknownPeriod(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "1", "1111")

	resp, body := jsonRequest(t, app, nethttp.MethodGet, "/api/reports/sales?period=fortnight", token, nil)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestAPI_BalanceSheetPDF(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "1", "1111")

	resp, body := jsonRequest(t, app, nethttp.MethodGet, "/api/reports/balance-sheet/pdf", token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), "response is a PDF document")
}

func TestAPI_SalesReportXLSX(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "1", "1111")

	resp, body := jsonRequest(t, app, nethttp.MethodGet, "/api/reports/sales/xlsx", token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.True(t, bytes.HasPrefix(body, []byte("PK")), "xlsx files are zip archives")
}

// ──────────────────────────────────────────────────────────────────────────────
// Assistant
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_AssistantChat(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "1", "1111")

	resp, body := jsonRequest(t, app, nethttp.MethodPost, "/api/assistant/chat", token, dto.ChatRequest{Message: "how are sales?"})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "stub reply")
}
