package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/models"
)

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
	auditDateLayout   = "2006-01-02"
)

// ======================================================
// HANDLER
// ======================================================

// AuditLogsHandler expõe a trilha de auditoria das consultas. Os filtros
// from/to são dias (AAAA-MM-DD) no fuso do consultório, ambos inclusivos.
type AuditLogsHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewAuditLogsHandler(db *gorm.DB, loc *time.Location) *AuditLogsHandler {
	if loc == nil {
		loc = time.Local
	}
	return &AuditLogsHandler{db: db, loc: loc}
}

type auditQuery struct {
	action    string
	entity    string
	requestID string
	from      *time.Time
	to        *time.Time // exclusivo: início do dia seguinte
	page      int
	limit     int
}

func (h *AuditLogsHandler) parseQuery(c *gin.Context) (auditQuery, bool) {
	q := auditQuery{
		action:    c.Query("action"),
		entity:    c.Query("entity"),
		requestID: c.Query("request_id"),
		page:      1,
		limit:     auditDefaultLimit,
	}

	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		q.page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= auditMaxLimit {
		q.limit = l
	}

	if raw := c.Query("from"); raw != "" {
		from, err := time.ParseInLocation(auditDateLayout, raw, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Parâmetro from deve estar no formato AAAA-MM-DD.")
			return q, false
		}
		q.from = &from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := time.ParseInLocation(auditDateLayout, raw, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Parâmetro to deve estar no formato AAAA-MM-DD.")
			return q, false
		}
		end := to.AddDate(0, 0, 1)
		q.to = &end
	}

	return q, true
}

func (q auditQuery) apply(tx *gorm.DB) *gorm.DB {
	if q.action != "" {
		tx = tx.Where("action = ?", q.action)
	}
	if q.entity != "" {
		tx = tx.Where("entity = ?", q.entity)
	}
	if q.requestID != "" {
		tx = tx.Where("request_id = ?", q.requestID)
	}
	if q.from != nil {
		tx = tx.Where("created_at >= ?", *q.from)
	}
	if q.to != nil {
		tx = tx.Where("created_at < ?", *q.to)
	}
	return tx
}

// ======================================================
// LIST
// ======================================================

func (h *AuditLogsHandler) List(c *gin.Context) {
	q, ok := h.parseQuery(c)
	if !ok {
		return
	}

	base := q.apply(h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{}))

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	var logs []models.AuditLog
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("id DESC").
		Limit(q.limit).
		Offset((q.page - 1) * q.limit).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.Page(c, q.page, q.limit, total, logs)
}
