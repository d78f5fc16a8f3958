// Package http assembles the gin engine: middleware chain, page routes,
// and the admin group.
package http

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Code0plux/Website/internal/http/flash"
	"github.com/Code0plux/Website/internal/http/handlers"
	"github.com/Code0plux/Website/internal/http/middleware"
	adminsession "github.com/Code0plux/Website/internal/modules/admin"
	"github.com/Code0plux/Website/internal/modules/auth"
	"github.com/Code0plux/Website/internal/modules/catalog"
	"github.com/Code0plux/Website/internal/modules/order"
	"github.com/Code0plux/Website/internal/storage"
)

func NewRouter(logger *slog.Logger, db *gorm.DB, store storage.FactoryResult) *gin.Engine {
	flashCodec := flash.NewCodec(secretFromEnv("FLASH_SECRET"), "gs_flash", secureCookies())
	sessCfg := middleware.SessionCfg{
		DB:         db,
		CookieName: "gs_session",
		Secure:     secureCookies(),
		TTL:        7 * 24 * time.Hour,
	}

	repo := catalog.NewGormRepo(db)
	users := auth.NewRepo(db)
	drafts := adminsession.NewStore()
	uploader := adminsession.NewUploader(store.Storage, logger)
	composer := order.FromEnv()

	home := handlers.NewHomeHandler(repo, composer, logger)
	product := handlers.NewProductHandler(repo, composer, logger)
	authH := handlers.NewAuthHandlers(users, flashCodec, sessCfg, drafts)
	adminH := handlers.NewAdminHandler(repo, drafts, uploader, flashCodec, logger)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.FlashMiddleware(flashCodec))
	r.Use(middleware.SessionMiddleware(sessCfg))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })

	r.GET("/", home.Get)
	r.GET("/product/:id", product.Get)

	r.GET("/login", authH.LoginGet)
	r.POST("/login", authH.LoginPost)
	r.POST("/logout", authH.LogoutPost)

	adm := r.Group("/admin", middleware.RequireAdmin(flashCodec))
	{
		adm.GET("", adminH.Dashboard)
		adm.POST("/upload", adminH.Upload)
		adm.POST("/images/:index/remove", adminH.RemoveImage)
		adm.POST("/edit/:id", adminH.EditBegin)
		adm.POST("/cancel", adminH.Cancel)
		adm.POST("/submit", adminH.Submit)
		adm.GET("/delete/:id", adminH.DeleteConfirm)
		adm.POST("/delete/:id", adminH.Delete)
	}

	// The local storage driver serves its uploads straight from disk.
	if store.Driver == "local" {
		dir := os.Getenv("LOCAL_UPLOAD_DIR")
		if dir == "" {
			dir = "./storage/uploads"
		}
		r.Static("/uploads", dir)
	}

	return r
}

func secretFromEnv(key string) []byte {
	if v := os.Getenv(key); v != "" {
		return []byte(v)
	}
	// Dev fallback; production sets real secrets.
	return []byte("dev-only-" + key)
}

func secureCookies() bool {
	return os.Getenv("COOKIE_SECURE") == "true"
}
