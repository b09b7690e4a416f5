package main

import (
	"database/sql"

	"boutique-be/internal/cart"
	"boutique-be/internal/catalog"
	"boutique-be/internal/config"
	"boutique-be/internal/db"
	"boutique-be/internal/handler"
	"boutique-be/internal/logger"
	"boutique-be/internal/middleware"
	"boutique-be/internal/offer"
	"boutique-be/internal/order"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func setupRouter(database *sql.DB, secret []byte) *echo.Echo {
	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	offerRepo := offer.NewRepository(database)
	offerSvc := offer.NewService(offerRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, catalogRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	e := echo.New()
	e.HideBanner = true

	e.Use(echo.WrapMiddleware(logger.RequestIDMiddleware))
	e.Use(echo.WrapMiddleware(logger.LoggingMiddleware))
	e.Use(echo.WrapMiddleware(middleware.Auth(secret)))
	e.Use(echo.WrapMiddleware(middleware.RateLimit))

	handler.RegisterRoutes(e, handler.Handlers{
		Catalog: handler.NewCatalogHandler(catalogSvc),
		Offer:   handler.NewOfferHandler(offerSvc),
		Cart:    handler.NewCartHandler(cartSvc),
		Order:   handler.NewOrderHandler(orderSvc),
	})

	return e
}

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	e := setupRouter(database, []byte(cfg.SecretKey))

	logger.L().Info("server starting", zap.String("port", cfg.AppPort))
	if err := e.Start(":" + cfg.AppPort); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
