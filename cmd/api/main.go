package main

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"obrasgov/internal/config"
	"obrasgov/internal/domain/sqlite"
	"obrasgov/internal/domain/sqlite/repository"
	"obrasgov/internal/http/handler"
	"obrasgov/internal/service"
	"obrasgov/internal/utils/validators"
)

func main() {
	validate := validator.New()
	validators.Register(validate)

	// Loads from .env when present; env vars may also come from the shell
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env loaded: %v", err)
	}

	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		cfg = config.Default()
	} else if err != nil {
		panic(err)
	}
	cfg.ApplyEnv()

	// Init SQLite
	db, err := sqlite.Init(cfg.DatabasePath)
	if err != nil {
		panic(err)
	}

	// Getting repos
	instituicaoRepo := repository.NewInstituicaoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	projetoRepo := repository.NewProjetoRepository(db)
	vinculoRepo := repository.NewVinculoRepository(db)
	fonteRepo := repository.NewFonteRepository(db)
	relatorioRepo := repository.NewRelatorioRepository(db)

	// Getting services
	loaderService := service.NewLoaderService(instituicaoRepo, categoriaRepo, projetoRepo, vinculoRepo, fonteRepo, validate)
	relatorioService := service.NewRelatorioService(relatorioRepo, projetoRepo)

	// Getting handlers
	loadRoutes := handler.NewLoadDefault(loaderService)
	relatorioRoutes := handler.NewRelatorioDefault(relatorioService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("100M"))

	// Batch load
	e.POST("/api/loads", loadRoutes.CreateLoad)

	// Derived read views
	e.GET("/api/projetos/:id/resumo-financeiro", relatorioRoutes.GetResumoFinanceiro)
	e.GET("/api/projetos/:id/instituicoes", relatorioRoutes.GetInstituicoes)
	e.GET("/api/relatorios/eixos", relatorioRoutes.GetEstatisticas)
	e.GET("/api/relatorios/atrasados", relatorioRoutes.GetAtrasados)

	// Healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(cfg.ListenAddr); err != nil {
		panic(err)
	}
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
