package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/qualifygym/commerce/internal/account/handler"
	infraRepo "github.com/qualifygym/commerce/internal/account/infra/repository"
	"github.com/qualifygym/commerce/internal/account/model"
	"github.com/qualifygym/commerce/internal/account/repository"
	"github.com/qualifygym/commerce/internal/account/usecase"
	"github.com/qualifygym/commerce/internal/config"
	"github.com/qualifygym/commerce/internal/infra/db"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "usuarios").Logger()

	_ = godotenv.Load()

	cfg, err := config.Load("8085")
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect")
	}

	if err := gormDB.AutoMigrate(&model.Role{}, &model.User{}); err != nil {
		logger.Fatal().Err(err).Msg("migrate")
	}

	userRepo := infraRepo.NewUserGormRepository(gormDB)
	roleRepo := infraRepo.NewRoleGormRepository(gormDB)

	// 公開登録はUsuarioロール前提なので起動時に存在を保証しておく
	if err := seedRoles(context.Background(), roleRepo); err != nil {
		logger.Fatal().Err(err).Msg("seed roles")
	}

	hasher := usecase.NewBcryptPasswordHasher(cfg.BcryptCost)
	uc := usecase.NewUserUsecase(userRepo, roleRepo, hasher)
	h := handler.NewUserHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	h.RegisterRoutes(e)

	logger.Info().Str("port", cfg.Port).Msg("usuarios iniciado")
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server")
	}
}

func seedRoles(ctx context.Context, roles repository.RoleRepository) error {
	for _, name := range []string{model.RoleAdminName, model.RoleUserName} {
		_, err := roles.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if _, err := roles.Create(ctx, model.Role{Name: name}); err != nil {
			return err
		}
	}
	return nil
}
