package server

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/interiorswala/studio-backend/internal/handlers"
	"github.com/interiorswala/studio-backend/internal/middleware"
)

type RouterConfig struct {
	ProfileHandler   *handlers.ProfileHandler
	PortfolioHandler *handlers.PortfolioHandler
	QuotationHandler *handlers.QuotationHandler
	ConceptHandler   *handlers.ConceptHandler
	AuthHandler      *handlers.AuthHandler
	RealtimeHandler  *handlers.RealtimeHandler
	AdminMiddleware  *middleware.AdminMiddleware

	// Environment selects asset serving: in production the prebuilt bundle
	// under StaticDir is served with an SPA fallback; in development the
	// frontend runs on its own dev server and only the API is exposed.
	Environment string
	StaticDir   string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	requireAdmin := cfg.AdminMiddleware.RequireAdmin()

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Public
		api.GET("/profile", cfg.ProfileHandler.GetProfile)
		api.GET("/portfolio", cfg.PortfolioHandler.ListPortfolio)
		api.POST("/quotations", cfg.QuotationHandler.SubmitQuotation)
		api.POST("/concept", cfg.ConceptHandler.GenerateConcept)
		api.POST("/admin/login", cfg.AuthHandler.AdminLogin)

		// Admin
		api.POST("/profile", requireAdmin, cfg.ProfileHandler.ReplaceProfile)
		api.POST("/portfolio", requireAdmin, cfg.PortfolioHandler.AddPortfolioItem)
		api.DELETE("/portfolio/:id", requireAdmin, cfg.PortfolioHandler.DeletePortfolioItem)
		api.GET("/quotations", requireAdmin, cfg.QuotationHandler.ListQuotations)
		api.DELETE("/quotations/:id", requireAdmin, cfg.QuotationHandler.DeleteQuotation)
	}

	// The realtime channel upgrades at the service root; plain GETs to the
	// root fall through to asset serving.
	indexFile := filepath.Join(cfg.StaticDir, "index.html")
	production := strings.EqualFold(cfg.Environment, "production")
	router.GET("/", func(c *gin.Context) {
		if websocket.IsWebSocketUpgrade(c.Request) {
			cfg.RealtimeHandler.Stream(c)
			return
		}
		if production {
			c.File(indexFile)
			return
		}
		c.String(http.StatusOK, "ok")
	})

	if production {
		router.Static("/assets", filepath.Join(cfg.StaticDir, "assets"))
		router.NoRoute(func(c *gin.Context) {
			if c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.File(indexFile)
				return
			}
			c.Status(http.StatusNotFound)
		})
	}

	return router
}
