// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"terraverde/internal/delivery/http/middleware"
	"terraverde/internal/delivery/http/router/handler"
	"terraverde/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects every handler the router wires up.
type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	ProductHandler      *handler.ProductHandler
	OrderHandler        *handler.OrderHandler
	BlogHandler         *handler.BlogHandler
	OfferingHandler     *handler.OfferingHandler
	EventHandler        *handler.EventHandler
	NewsHandler         *handler.NewsHandler
	ConsultationHandler *handler.ConsultationHandler
	FavoriteHandler     *handler.FavoriteHandler
	ReviewHandler       *handler.ReviewHandler
	CartHandler         *handler.CartHandler
	SearchHandler       *handler.SearchHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/google", p.AuthHandler.GoogleSignIn)
		authGroup.POST("/refresh", p.AuthHandler.RefreshToken)
		authGroup.POST("/logout", p.AuthHandler.Logout)
	}

	// Public catalog and content routes
	e.GET("/products", p.ProductHandler.List)
	e.GET("/products/:id", p.ProductHandler.Get)
	e.GET("/products/:id/reviews", p.ReviewHandler.ListForProduct)
	e.GET("/blog", p.BlogHandler.List)
	e.GET("/blog/:id", p.BlogHandler.Get)
	e.GET("/services", p.OfferingHandler.List)
	e.GET("/services/:id", p.OfferingHandler.Get)
	e.GET("/events", p.EventHandler.List)
	e.GET("/events/:id", p.EventHandler.Get)
	e.GET("/news", p.NewsHandler.List)
	e.GET("/news/:id", p.NewsHandler.Get)
	e.GET("/search", p.SearchHandler.Global)

	// Routes that require authentication
	userGroup := e.Group("")
	userGroup.Use(p.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/profile", p.ProfileHandler.GetProfile)
		userGroup.PATCH("/profile", p.ProfileHandler.UpdateProfile)
		userGroup.POST("/profile/picture", p.ProfileHandler.UploadPicture)

		userGroup.POST("/orders", p.OrderHandler.Create)
		userGroup.GET("/orders", p.OrderHandler.ListMine)
		userGroup.GET("/orders/:id", p.OrderHandler.Get)

		userGroup.POST("/reviews", p.ReviewHandler.Create)
		userGroup.DELETE("/reviews/:id", p.ReviewHandler.Delete)

		userGroup.GET("/favorites", p.FavoriteHandler.List)
		userGroup.POST("/favorites", p.FavoriteHandler.Add)
		userGroup.DELETE("/favorites", p.FavoriteHandler.Remove)

		userGroup.GET("/cart", p.CartHandler.Get)
		userGroup.POST("/cart/items", p.CartHandler.AddItem)
		userGroup.PUT("/cart/items", p.CartHandler.SetItemQuantity)
		userGroup.DELETE("/cart/items/:productID", p.CartHandler.RemoveItem)
		userGroup.DELETE("/cart", p.CartHandler.Clear)

		userGroup.POST("/consultations", p.ConsultationHandler.Request)
		userGroup.GET("/consultations", p.ConsultationHandler.ListMine)
	}

	// Back-office routes that require authentication and the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/orders", p.OrderHandler.ListAll)
		adminGroup.PATCH("/orders/:id/status", p.OrderHandler.UpdateStatus)

		adminGroup.GET("/products", p.ProductHandler.ListAll)
		adminGroup.POST("/products", p.ProductHandler.Create)
		adminGroup.PATCH("/products/:id", p.ProductHandler.Update)
		adminGroup.DELETE("/products/:id", p.ProductHandler.Delete)

		adminGroup.GET("/blog", p.BlogHandler.ListAll)
		adminGroup.GET("/blog/:id", p.BlogHandler.GetAny)
		adminGroup.POST("/blog", p.BlogHandler.Create)
		adminGroup.PATCH("/blog/:id", p.BlogHandler.Update)
		adminGroup.DELETE("/blog/:id", p.BlogHandler.Delete)

		adminGroup.GET("/services", p.OfferingHandler.ListAll)
		adminGroup.POST("/services", p.OfferingHandler.Create)
		adminGroup.PATCH("/services/:id", p.OfferingHandler.Update)
		adminGroup.DELETE("/services/:id", p.OfferingHandler.Delete)

		adminGroup.GET("/events", p.EventHandler.ListAll)
		adminGroup.POST("/events", p.EventHandler.Create)
		adminGroup.PATCH("/events/:id", p.EventHandler.Update)
		adminGroup.DELETE("/events/:id", p.EventHandler.Delete)

		adminGroup.GET("/news", p.NewsHandler.ListAll)
		adminGroup.POST("/news", p.NewsHandler.Create)
		adminGroup.PATCH("/news/:id", p.NewsHandler.Update)
		adminGroup.DELETE("/news/:id", p.NewsHandler.Delete)

		adminGroup.GET("/consultations", p.ConsultationHandler.ListAll)
		adminGroup.PATCH("/consultations/:id/status", p.ConsultationHandler.UpdateStatus)

		adminGroup.GET("/users", p.AdminHandler.ListUsers)
		adminGroup.PATCH("/users/:id/access", p.AdminHandler.UpdateUserAccess)

		adminGroup.POST("/uploads", p.AdminHandler.UploadImage)
		adminGroup.POST("/seed", p.AdminHandler.Seed)
	}
}
