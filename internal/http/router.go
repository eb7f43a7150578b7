package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ororso11/m-led/internal/config"
	"github.com/ororso11/m-led/internal/http/handlers"
	"github.com/ororso11/m-led/internal/http/middleware"
	"github.com/ororso11/m-led/internal/modules/auth"
	"github.com/ororso11/m-led/internal/modules/products"
	"github.com/ororso11/m-led/internal/modules/schema"
	"github.com/ororso11/m-led/internal/modules/specsheet"
	"github.com/ororso11/m-led/internal/storage"
)

// Deps bundles everything the router wires together.
type Deps struct {
	Logger      *slog.Logger
	DB          *gorm.DB
	Cfg         config.Config
	SchemaStore *schema.Store
	Mirror      *products.Store
	ProductSvc  *products.Service
	AuthSvc     *auth.Service
	Generator   *specsheet.Generator
	Storage     storage.Storage
}

// NewRouter assembles the gin engine: request id, logging, recovery and
// error rendering around the public catalog API, the auth endpoints and
// the session-guarded admin API.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	sessionCfg := middleware.SessionCfg{
		DB:         d.DB,
		CookieName: d.Cfg.SessionCookieName,
		Secure:     d.Cfg.SessionSecure,
		TTL:        d.Cfg.SessionTTL,
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.ErrorHandler(d.Logger))
	r.Use(middleware.SessionMiddleware(sessionCfg))

	catalogH := handlers.NewCatalogHandler(d.Mirror, d.SchemaStore)
	detailH := handlers.NewProductDetailHandler(d.Mirror, d.SchemaStore)
	specsheetH := handlers.NewSpecsheetHandler(d.Mirror, d.SchemaStore, d.Generator)
	settingsH := handlers.NewSettingsHandler(d.SchemaStore)
	statusH := handlers.NewStatusHandler(d.Mirror)
	authH := handlers.NewAuthHandler(d.AuthSvc, sessionCfg)

	r.GET("/healthz", handlers.Healthz)

	api := r.Group("/api")
	{
		api.GET("/products", catalogH.List)
		api.GET("/products/:id", detailH.Detail)
		api.POST("/products/:id/specsheet", specsheetH.Export)
		api.GET("/settings", settingsH.Get)
		api.GET("/status", statusH.Status)

		api.POST("/login", authH.Login)
		api.POST("/logout", authH.Logout)
	}

	adminProductsH := handlers.NewAdminProductsHandler(d.ProductSvc)
	adminSettingsH := handlers.NewAdminSettingsHandler(d.SchemaStore)

	admin := api.Group("/admin", middleware.RequireAdmin())
	{
		admin.POST("/products", adminProductsH.Create)
		admin.PUT("/products/:id", adminProductsH.Update)
		admin.DELETE("/products/:id", adminProductsH.Delete)

		admin.PUT("/settings", adminSettingsH.Replace)
		admin.POST("/settings/categories", adminSettingsH.AddCategory)
		admin.DELETE("/settings/categories/:key", adminSettingsH.DeleteCategory)
		admin.POST("/settings/categories/:key/values", adminSettingsH.AddCategoryValue)
		admin.DELETE("/settings/categories/:key/values", adminSettingsH.DeleteCategoryValue)
		admin.POST("/settings/columns", adminSettingsH.AddColumn)
		admin.DELETE("/settings/columns/:id", adminSettingsH.DeleteColumn)
	}

	// Locally stored uploads are served straight from disk; S3 serves its
	// own public URLs.
	if local, ok := d.Storage.(*storage.Local); ok {
		r.Static("/uploads", local.BaseDir)
	}

	return r
}
