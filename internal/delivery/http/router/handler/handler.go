// Package handler contains the HTTP handlers of the normalization API. Each
// handler decodes the raw platform payload for the configured platform,
// dispatches to the matching usecase and writes the unified response
// envelope.
package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"storefront/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// readBody drains the request body so a payload can be probed and then
// decoded into its concrete shape.
func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable request body")
	}

	return body, nil
}

// decodeInto unmarshals a raw body into the platform-specific shape.
func decodeInto(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	return nil
}

// originOf probes a payload for the canonical origin tag without committing
// to a shape. Already-normalized records carry a non-empty origin.
func originOf(body []byte) string {
	var probe struct {
		Origin string `json:"origin"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}

	return probe.Origin
}
