// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StoreHandler    *handler.StoreHandler
	CustomerHandler *handler.CustomerHandler
	CatalogHandler  *handler.CatalogHandler
	CheckoutHandler *handler.CheckoutHandler
	RegisterHandler *handler.RegisterHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	storeHandler    *handler.StoreHandler
	customerHandler *handler.CustomerHandler
	catalogHandler  *handler.CatalogHandler
	checkoutHandler *handler.CheckoutHandler
	registerHandler *handler.RegisterHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		storeHandler:    params.StoreHandler,
		customerHandler: params.CustomerHandler,
		catalogHandler:  params.CatalogHandler,
		checkoutHandler: params.CheckoutHandler,
		registerHandler: params.RegisterHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Store context and display formatting
	storeGroup := e.Group("/store")
	{
		storeGroup.GET("", r.storeHandler.Info)
		storeGroup.POST("/format/money", r.storeHandler.FormatMoney)
		storeGroup.POST("/format/timestamp", r.storeHandler.FormatTimestamp)
	}

	// Customer state and address payloads
	customerGroup := e.Group("/customers")
	{
		customerGroup.POST("/normalize", r.customerHandler.NormalizeCustomer)
		customerGroup.POST("/addresses/payload", r.customerHandler.CreateAddressPayload)
		customerGroup.PUT("/addresses/:id/payload", r.customerHandler.UpdateAddressPayload)
		customerGroup.DELETE("/addresses/:id/payload", r.customerHandler.DeleteAddressPayload)
	}

	// Catalog records
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.POST("/products/normalize", r.catalogHandler.NormalizeProduct)
		catalogGroup.POST("/search/normalize", r.catalogHandler.NormalizeSearchResults)
		catalogGroup.POST("/collections/normalize", r.catalogHandler.NormalizeCollection)
	}

	// Cart lines and mutations
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.POST("/items/normalize", r.checkoutHandler.NormalizeItem)
		checkoutGroup.POST("/cart-price/normalize", r.checkoutHandler.NormalizeCartPrice)
		checkoutGroup.POST("/cart-item-id", r.checkoutHandler.ResolveCartItemID)
		checkoutGroup.POST("/remove-id", r.checkoutHandler.CartRemoveID)
		checkoutGroup.POST("/items/update-payload", r.checkoutHandler.UpdateItemPayload)
		checkoutGroup.POST("/options/payload", r.checkoutHandler.OptionsPayload)
		checkoutGroup.POST("/max-quantity", r.checkoutHandler.MaxQuantity)
		checkoutGroup.POST("/add-to-cart-state", r.checkoutHandler.AddToCartState)
	}

	// Registration
	registerGroup := e.Group("/register")
	{
		registerGroup.POST("/validate", r.registerHandler.Validate)
		registerGroup.POST("/payload", r.registerHandler.Payload)
		registerGroup.POST("/result/normalize", r.registerHandler.NormalizeResult)
	}
}
