package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/consultorio-scheduler/internal/db"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/httperr"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := dbpkg.Ping(ctx, h.db); err != nil {
		httperr.Unavailable(c, "db_unavailable", "Banco de dados indisponível.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
