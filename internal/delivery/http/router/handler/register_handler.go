package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RegisterHandlerParams holds dependencies for RegisterHandler, injected by Fx.
type RegisterHandlerParams struct {
	fx.In

	RegisterUC usecase.RegisterUsecase
	Logger     *slog.Logger
}

// RegisterHandler serves registration validation and payload shaping.
type RegisterHandler struct {
	registerUC usecase.RegisterUsecase
	logger     *slog.Logger
}

// NewRegisterHandler is the constructor for RegisterHandler
func NewRegisterHandler(params RegisterHandlerParams) *RegisterHandler {
	return &RegisterHandler{
		registerUC: params.RegisterUC,
		logger:     params.Logger,
	}
}

// Validate reports whether the form data carries every field the platform
// requires.
func (h *RegisterHandler) Validate(c echo.Context) error {
	var data entity.RegisterData
	if err := c.Bind(&data); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid register data")
	}

	return response.Success(c, http.StatusOK, map[string]bool{
		"valid": h.registerUC.ValidateRegisterData(data),
	}, "Register data validated")
}

// Payload shapes the platform's account create payload.
func (h *RegisterHandler) Payload(c echo.Context) error {
	var data entity.RegisterData
	if err := c.Bind(&data); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid register data")
	}

	payload, err := h.registerUC.DenormalizeRegisterData(data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payload, "Register payload shaped")
}

// NormalizeResult maps the platform's registration response to the canonical
// form error list.
func (h *RegisterHandler) NormalizeResult(c echo.Context) error {
	var raw usecase.RawRegisterResult
	if err := c.Bind(&raw); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid register result")
	}

	return response.Success(c, http.StatusOK, h.registerUC.NormalizeRegisterResult(raw), "Register result normalized")
}
