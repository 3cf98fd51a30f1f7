package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCustomerHandler_NormalizeCustomer_Integration(t *testing.T) {
	platform, err := entity.NewPlatformContext("shopify", "graphql")
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	h := &CustomerHandler{
		platform:   platform,
		customerUC: impl.NewCustomerService(platform, logger),
		logger:     logger,
	}

	body := `{
		"id": "gid://shopify/Customer/42",
		"firstName": "Ada",
		"lastName": "Lovelace",
		"email": "ada@example.com",
		"isLoggedIn": true,
		"status": "loaded"
	}`
	c, rec := newTestContext(t, http.MethodPost, "/customers/normalize", body)

	require.NoError(t, h.NormalizeCustomer(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, `"email":"ada@example.com"`)
	assert.Contains(t, responseBody, `"isLoggedIn":true`)
	assert.Contains(t, responseBody, `"origin":"shopify"`)
}

func TestCustomerHandler_NormalizeCustomer_CanonicalPassthrough(t *testing.T) {
	platform, err := entity.NewPlatformContext("big_commerce", "graphql")
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	h := &CustomerHandler{
		platform:   platform,
		customerUC: impl.NewCustomerService(platform, logger),
		logger:     logger,
	}

	body := `{"id":"7","email":"kept@example.com","isLoggedIn":true,"status":"loaded","origin":"shopify"}`
	c, rec := newTestContext(t, http.MethodPost, "/customers/normalize", body)

	require.NoError(t, h.NormalizeCustomer(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"email":"kept@example.com"`)
	assert.Contains(t, responseBody, `"origin":"shopify"`)
}

func TestStoreHandler_FormatTimestamp_Integration(t *testing.T) {
	platform, err := entity.NewPlatformContext("shopify", "rest")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Store.Locale = "en-US"
	cfg.Store.Currency = "USD"
	cfg.Store.DateStyle = "date"

	h := &StoreHandler{
		cfg:      cfg,
		platform: platform,
		logger:   slog.New(slog.DiscardHandler),
	}

	body := `{"value":"2023-05-01T15:04:05Z"}`
	c, rec := newTestContext(t, http.MethodPost, "/store/format/timestamp", body)

	require.NoError(t, h.FormatTimestamp(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "May 1, 2023")
}

func TestStoreHandler_FormatTimestamp_RejectsGarbage(t *testing.T) {
	platform, err := entity.NewPlatformContext("shopify", "rest")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Store.DateStyle = "datetime"

	h := &StoreHandler{
		cfg:      cfg,
		platform: platform,
		logger:   slog.New(slog.DiscardHandler),
	}

	c, rec := newTestContext(t, http.MethodPost, "/store/format/timestamp", `{"value":"not a date"}`)

	require.NoError(t, h.FormatTimestamp(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
