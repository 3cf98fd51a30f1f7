package middleware

import (
	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID assigns every request a tracking id, honoring one supplied by the
// caller, and echoes it back in the response header.
func RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		request := c.Request()
		c.SetRequest(request.WithContext(
			deliverycontext.WithRequestID(request.Context(), requestID),
		))

		return next(c)
	}
}
