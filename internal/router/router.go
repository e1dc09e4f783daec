package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/causeway/backend/api/handler"
)

type Handlers struct {
	Donations *apiHandler.DonationHandler
	Causes    *apiHandler.CauseHandler
	News      *apiHandler.NewsHandler
	Contact   *apiHandler.ContactHandler
	Auth      *apiHandler.AuthHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Public site endpoints
	r.POST("/donate", handlers.Donations.Create)
	r.POST("/contact", handlers.Contact.Create)
	r.GET("/api/v1/news", handlers.News.List)
	r.GET("/api/v1/causes", handlers.Causes.List)
	r.GET("/api/v1/causes/{id}", handlers.Causes.Get)

	// Auth routes
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/refresh", handlers.Auth.Refresh)

	// Staff routes
	r.POST("/api/v1/news", authMiddleware(handlers.News.Create))
	r.POST("/api/v1/causes", authMiddleware(handlers.Causes.Create))
	r.GET("/api/v1/donations", authMiddleware(handlers.Donations.List))

	return r
}
