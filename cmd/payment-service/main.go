package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/qualifygym/commerce/internal/config"
	"github.com/qualifygym/commerce/internal/infra/db"
	"github.com/qualifygym/commerce/internal/payment/handler"
	infraRepo "github.com/qualifygym/commerce/internal/payment/infra/repository"
	"github.com/qualifygym/commerce/internal/payment/model"
	"github.com/qualifygym/commerce/internal/payment/usecase"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "pagos").Logger()

	_ = godotenv.Load()

	cfg, err := config.Load("8084")
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect")
	}

	if err := gormDB.AutoMigrate(&model.Payment{}); err != nil {
		logger.Fatal().Err(err).Msg("migrate")
	}

	paymentRepo := infraRepo.NewPaymentGormRepository(gormDB)
	uc := usecase.NewPaymentUsecase(paymentRepo)
	h := handler.NewPaymentHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	h.RegisterRoutes(e)

	logger.Info().Str("port", cfg.Port).Msg("pagos iniciado")
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server")
	}
}
