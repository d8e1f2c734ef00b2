package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/qualifygym/commerce/internal/cart/handler"
	infraRepo "github.com/qualifygym/commerce/internal/cart/infra/repository"
	"github.com/qualifygym/commerce/internal/cart/model"
	"github.com/qualifygym/commerce/internal/cart/usecase"
	"github.com/qualifygym/commerce/internal/config"
	"github.com/qualifygym/commerce/internal/infra/db"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "carrito").Logger()

	_ = godotenv.Load()

	cfg, err := config.Load("8082")
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect")
	}

	//(usuario_id, producto_id) の複合ユニークもここで張られる
	if err := gormDB.AutoMigrate(&model.CartItem{}); err != nil {
		logger.Fatal().Err(err).Msg("migrate")
	}

	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	uc := usecase.NewCartUsecase(cartItemRepo)
	h := handler.NewCartHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	h.RegisterRoutes(e)

	logger.Info().Str("port", cfg.Port).Msg("carrito iniciado")
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server")
	}
}
