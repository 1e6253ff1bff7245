package apphttp

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lunarest.com/app/internal/http/cartcookie"
	"lunarest.com/app/internal/http/flash"
	"lunarest.com/app/internal/http/handlers"
	"lunarest.com/app/internal/http/middleware"
	"lunarest.com/app/internal/modules/cart"
	"lunarest.com/app/internal/modules/catalog"
	"lunarest.com/app/internal/modules/currency"
)

type Config struct {
	CookieSecret  []byte
	SecureCookies bool
	BaseCurrency  string
	DisplayRates  map[string]float64
}

// NewRouter wires middleware, services and routes.
func NewRouter(logger *slog.Logger, db *gorm.DB, cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.ErrorHandler(logger))

	flashCodec := flash.NewCodec(cfg.CookieSecret, "lunarest_flash", cfg.SecureCookies)
	ck := cartcookie.New(cfg.CookieSecret, cartcookie.DefaultCookieName, cfg.SecureCookies)

	curr := currency.NewService(cfg.BaseCurrency, cfg.DisplayRates)
	catalogSvc := catalog.NewService(catalog.NewGormRepo(db), logger)
	cartSvc := cart.NewService(db, curr)

	r.Use(middleware.FlashMiddleware(flashCodec))
	r.Use(middleware.CartCount(ck, cartSvc.Repo(), logger))

	products := handlers.NewProductsHandler(catalogSvc, curr.BaseCurrency())
	cartH := handlers.NewCartHandler(catalogSvc, cartSvc, flashCodec, ck, logger)
	badge := handlers.NewCartBadgeHandler()

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	r.GET("/products", products.List)
	r.GET("/products/:slug", products.Show)
	r.GET("/products/:slug/card", products.CardState)

	r.GET("/cart", cartH.Get)
	r.POST("/cart/add", cartH.Add)
	r.POST("/cart/items/update", cartH.Update)
	r.POST("/cart/items/remove", cartH.Remove)
	r.GET("/cart/badge", badge.GetBadge)

	return r
}
