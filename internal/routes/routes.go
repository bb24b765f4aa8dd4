package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/audit"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/config"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/consultorio-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/timezone"
	ucConsulta "github.com/BruksfildServices01/consultorio-scheduler/internal/usecase/consulta"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	logger *slog.Logger,
	auditDispatcher *audit.Dispatcher,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logger))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	consultaRepo := infraRepo.NewConsultaGormRepository(db)
	loc := timezone.Location(cfg.Timezone)
	clock := timezone.NewClock(cfg.Timezone)

	// ======================================================
	// 🧠 USE CASES CONSULTAS
	// ======================================================
	createConsultaUC := ucConsulta.NewCreateConsulta(
		consultaRepo,
		auditDispatcher,
		clock,
	)

	cancelConsultaUC := ucConsulta.NewCancelConsulta(
		consultaRepo,
		auditDispatcher,
		clock,
	)

	listConsultasUC := ucConsulta.NewListConsultas(
		consultaRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	consultaHandler := handlers.NewConsultaHandler(
		createConsultaUC,
		cancelConsultaUC,
		listConsultasUC,
		logger,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db, loc)
	healthHandler := handlers.NewHealthHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/readyz", healthHandler.Ready)

	consultas := r.Group("/consultas")
	{
		consultas.GET("", consultaHandler.List)
		consultas.POST("", consultaHandler.Create)
		consultas.DELETE("/:id", consultaHandler.Cancel)
	}

	r.GET("/auditoria", auditLogsHandler.List)
}
