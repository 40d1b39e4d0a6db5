// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"path/filepath"

	"jild/config"
	"jild/internal/delivery/api/middleware"
	"jild/internal/delivery/api/router/handler"
	"jild/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PhotoUploadPath is the only route whose body limit follows inference.maxImageBytes.
const PhotoUploadPath = "/api/v1/analysis/photo"

const defaultMaxImageBytes = 5 * 1024 * 1024

// SPAPaths are the client-side routes served by the single-page app.
var SPAPaths = []string{
	"/",
	"/ai-recommendations",
	"/shop",
	"/sign-in",
	"/sign-up",
	"/forgot-password",
	"/reset-password",
	"/profile",
}

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	SessionHandler       *handler.SessionHandler
	QuestionnaireHandler *handler.QuestionnaireHandler
	AnalysisHandler      *handler.AnalysisHandler
	ShopHandler          *handler.ShopHandler
	ProfileHandler       *handler.ProfileHandler
	DeviceHandler        *handler.DeviceHandler
	AuthMiddleware       *middleware.AuthMiddleware
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	sessionHandler       *handler.SessionHandler
	questionnaireHandler *handler.QuestionnaireHandler
	analysisHandler      *handler.AnalysisHandler
	shopHandler          *handler.ShopHandler
	profileHandler       *handler.ProfileHandler
	deviceHandler        *handler.DeviceHandler
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		sessionHandler:       params.SessionHandler,
		questionnaireHandler: params.QuestionnaireHandler,
		analysisHandler:      params.AnalysisHandler,
		shopHandler:          params.ShopHandler,
		profileHandler:       params.ProfileHandler,
		deviceHandler:        params.DeviceHandler,
		authMiddleware:       params.AuthMiddleware,
		config:               params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/sign-in", r.authHandler.SignIn)
		authGroup.POST("/sign-out", r.authHandler.SignOut)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.GET("/session", r.sessionHandler.CurrentSession, r.authMiddleware.OptionalAuth)
		authGroup.GET("/session/events", r.sessionHandler.Events, r.authMiddleware.Authenticate)
	}

	questionnaireGroup := apiV1.Group("/questionnaire")
	questionnaireGroup.Use(r.authMiddleware.Authenticate)
	{
		questionnaireGroup.GET("", r.questionnaireHandler.Load)
		questionnaireGroup.GET("/options", r.questionnaireHandler.Options)
		questionnaireGroup.PATCH("/fields/:section", r.questionnaireHandler.UpdateField)
		questionnaireGroup.POST("/checklists/:field/toggle", r.questionnaireHandler.ToggleOption)
		questionnaireGroup.POST("/advance", r.questionnaireHandler.Advance)
		questionnaireGroup.POST("/retreat", r.questionnaireHandler.Retreat)
	}

	analysisGroup := apiV1.Group("/analysis")
	analysisGroup.Use(r.authMiddleware.Authenticate)
	{
		analysisGroup.POST("/photo", r.analysisHandler.UploadPhoto, middleware.PhotoBodyLimit(r.maxImageBytes()))
		analysisGroup.GET("/results", r.analysisHandler.Results)
		analysisGroup.GET("/results/tabs/:tab", r.analysisHandler.RoutineTab)
		analysisGroup.GET("/results/qrcode", r.analysisHandler.ResultsQRCode)
	}

	shopGroup := apiV1.Group("/shop")
	shopGroup.Use(r.authMiddleware.OptionalAuth)
	{
		shopGroup.GET("/products", r.shopHandler.ListProducts)
		shopGroup.GET("/categories", r.shopHandler.Categories)
		shopGroup.GET("/cart", r.shopHandler.GetCart)
		shopGroup.POST("/cart/items", r.shopHandler.AddToCart)
		shopGroup.PATCH("/cart/items/:id", r.shopHandler.UpdateQuantity)
		shopGroup.DELETE("/cart/items/:id", r.shopHandler.RemoveFromCart)
		shopGroup.POST("/wishlist/:id", r.shopHandler.ToggleWishlist)
		shopGroup.POST("/orders", r.shopHandler.PlaceOrder)
	}

	profileGroup := apiV1.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.SaveProfile)
	}

	devicesGroup := apiV1.Group("/devices")
	devicesGroup.Use(r.authMiddleware.Authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

func (r *router) maxImageBytes() int64 {
	if r.config.Inference == nil || r.config.Inference.MaxImageBytes <= 0 {
		return defaultMaxImageBytes
	}

	return r.config.Inference.MaxImageBytes
}

// RegisterMetricsRoute exposes the Prometheus scrape endpoint when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler()))
}

// RegisterStaticRoutes serves the built single-page app from http.staticDir.
// Every client-side route answers with index.html; other files are served as-is.
func (r *router) RegisterStaticRoutes(e *echo.Echo) {
	dir := r.config.HTTP.StaticDir
	if dir == "" {
		return
	}

	index := filepath.Join(dir, "index.html")
	for _, path := range SPAPaths {
		e.File(path, index)
	}
	e.Static("/", dir)
}
