package impl

import (
	"encoding/json"
	"log/slog"
	"sort"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/platform/bigcommerce"
	"storefront/internal/platform/shopify"
	"storefront/internal/usecase"
)

// FormErrorCodeRegister marks form errors originating from an account create.
const FormErrorCodeRegister = "REGISTER_ERROR"

type registerService struct {
	platform entity.PlatformContext
	logger   *slog.Logger
}

// NewRegisterService creates a registration service bound to the given
// platform.
func NewRegisterService(platform entity.PlatformContext, logger *slog.Logger) usecase.RegisterUsecase {
	return &registerService{
		platform: platform,
		logger:   logger,
	}
}

// requiredFields returns the registration fields the active platform's
// account create cannot do without. BigCommerce creates the default address
// in the same call, so it also demands the address fields.
func (s *registerService) requiredFields() []string {
	if s.platform.Platform == entity.PlatformBigCommerce {
		return bigcommerce.RegisterRequiredFields
	}
	return shopify.RegisterRequiredFields
}

func (s *registerService) ValidateRegisterData(data entity.RegisterData) bool {
	for _, field := range s.requiredFields() {
		if data.Field(field) == "" {
			return false
		}
	}
	return true
}

func (s *registerService) DenormalizeRegisterData(data entity.RegisterData) (usecase.RegisterPayload, error) {
	if !s.ValidateRegisterData(data) {
		return usecase.RegisterPayload{}, domainerrors.ErrIncompleteRegisterData.WrapMessage("denormalize register data")
	}

	switch s.platform.Platform {
	case entity.PlatformShopify:
		payload := shopify.DenormalizeRegisterData(data)
		return usecase.RegisterPayload{Shopify: &payload}, nil

	case entity.PlatformBigCommerce:
		payload := bigcommerce.DenormalizeRegisterData(data)
		return usecase.RegisterPayload{BigCommerce: &payload}, nil

	default:
		return usecase.RegisterPayload{}, domainerrors.ErrUnsupportedPlatform.WrapMessage("denormalize register data")
	}
}

// NormalizeRegisterResult maps the platform's registration response to the
// canonical form error list. Shopify reports errors as an array of messages;
// BigCommerce's management API returns a field-keyed object. Both forms are
// accepted regardless of the active platform since proxies have been seen
// forwarding either.
func (s *registerService) NormalizeRegisterResult(raw usecase.RawRegisterResult) entity.RegisterResult {
	if len(raw.Errors) == 0 {
		return entity.RegisterResult{}
	}

	var list []struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw.Errors, &list); err == nil {
		formErrors := make([]entity.FormError, 0, len(list))
		for _, item := range list {
			message := item.Message
			if message == "" {
				message = "n/a"
			}
			formErrors = append(formErrors, entity.FormError{
				Message: message,
				Code:    FormErrorCodeRegister,
			})
		}
		return entity.RegisterResult{Errors: formErrors}
	}

	var keyed map[string]string
	if err := json.Unmarshal(raw.Errors, &keyed); err == nil {
		fields := make([]string, 0, len(keyed))
		for field := range keyed {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		formErrors := make([]entity.FormError, 0, len(keyed))
		for _, field := range fields {
			formErrors = append(formErrors, entity.FormError{
				Message: keyed[field],
				Field:   field,
				Code:    FormErrorCodeRegister,
			})
		}
		return entity.RegisterResult{Errors: formErrors}
	}

	s.logger.Warn("unrecognized register error payload", slog.String("payload", string(raw.Errors)))
	return entity.RegisterResult{}
}
