package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"onyxgas/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter() *gin.Engine {
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	hb := &handlers.HandlerBundle{
		CreateCardPaymentHandler:    ok,
		ConfirmCardPaymentHandler:   ok,
		CreateWalletPaymentHandler:  ok,
		CaptureWalletPaymentHandler: ok,
		CreateContactHandler:        ok,
		ListPaymentsHandler:         ok,
		ListContactsHandler:         ok,
	}
	r := gin.New()
	RegisterRoutes(r, hb)
	return r
}

func TestWrongMethodGets405(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payments/card", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "Method not allowed")
}

func TestPreflightSucceedsWithNoBody(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/payments/card", nil)
	// httptest.NewRequest defaults Host to "example.com"; use a different
	// origin so the cors middleware sees a cross-origin preflight rather
	// than a same-origin request.
	req.Header.Set("Origin", "https://client.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/payments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthRoute(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
