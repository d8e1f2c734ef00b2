package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/qualifygym/commerce/internal/config"
	"github.com/qualifygym/commerce/internal/infra/db"
	"github.com/qualifygym/commerce/internal/order/handler"
	infraRepo "github.com/qualifygym/commerce/internal/order/infra/repository"
	"github.com/qualifygym/commerce/internal/order/model"
	"github.com/qualifygym/commerce/internal/order/usecase"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "ordenes").Logger()

	_ = godotenv.Load()

	cfg, err := config.Load("8083")
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect")
	}

	if err := gormDB.AutoMigrate(&model.Order{}, &model.OrderItem{}); err != nil {
		logger.Fatal().Err(err).Msg("migrate")
	}

	txManager := infraRepo.NewTxManagerGorm(gormDB)
	uc := usecase.NewOrderUsecase(txManager)
	h := handler.NewOrderHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	h.RegisterRoutes(e)

	logger.Info().Str("port", cfg.Port).Msg("ordenes iniciado")
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server")
	}
}
