package handlers

import (
	"errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/consultorio-scheduler/internal/domain/consulta"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/middleware"
	ucConsulta "github.com/BruksfildServices01/consultorio-scheduler/internal/usecase/consulta"
)

// ======================================================
// MENSAGENS
// ======================================================

const (
	msgCreated   = "Consulta agendada com sucesso"
	msgCancelled = "Consulta cancelada com sucesso"
	msgPastDate  = "Não é possível agendar consultas no passado."
	msgConflict  = "Já existe uma consulta agendada para este horário com o mesmo médico."
	msgNotFound  = "Consulta não encontrada ou já foi cancelada"
	msgInternal  = "Erro interno."
	msgBadBody   = "O corpo da requisição deve ser um JSON válido."
)

var storageMessages = map[string]string{
	domain.OpList:          "Erro ao listar consultas",
	domain.OpFindConflict:  "Erro ao verificar disponibilidade",
	domain.OpInsert:        "Erro ao agendar a consulta",
	domain.OpFindScheduled: "Erro ao verificar consulta agendada",
	domain.OpCancel:        "Erro ao cancelar a consulta",
}

// ======================================================
// HANDLER
// ======================================================

type ConsultaHandler struct {
	create *ucConsulta.CreateConsulta
	cancel *ucConsulta.CancelConsulta
	list   *ucConsulta.ListConsultas
	log    *slog.Logger
}

func NewConsultaHandler(
	create *ucConsulta.CreateConsulta,
	cancel *ucConsulta.CancelConsulta,
	list *ucConsulta.ListConsultas,
	log *slog.Logger,
) *ConsultaHandler {
	return &ConsultaHandler{
		create: create,
		cancel: cancel,
		list:   list,
		log:    log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateConsultaRequest struct {
	Data     string `json:"data"`
	Horario  string `json:"horario"`
	Paciente string `json:"paciente"`
	Medico   string `json:"medico"`
}

// bindCreateRequest lê o corpo campo a campo: um tipo JSON errado em um
// campo vira erro desse campo, e não do corpo inteiro.
func bindCreateRequest(c *gin.Context) (CreateConsultaRequest, error) {
	var raw map[string]any
	// corpo vazio vale como {}: cada campo ausente vira um erro de campo
	if err := c.ShouldBindJSON(&raw); err != nil && !errors.Is(err, io.EOF) {
		return CreateConsultaRequest{}, err
	}

	return CreateConsultaRequest{
		Data:     scalarString(raw["data"]),
		Horario:  scalarString(raw["horario"]),
		Paciente: scalarString(raw["paciente"]),
		Medico:   scalarString(raw["medico"]),
	}, nil
}

// scalarString converte escalares para texto; ausente, null, objeto e
// lista viram "" e falham na validação do próprio campo.
func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ConsultaHandler) List(c *gin.Context) {
	consultas, err := h.list.Execute(c.Request.Context())
	if err != nil {
		h.writeStorageError(c, err)
		return
	}

	httpresp.OK(c, consultas)
}

// ======================================================
// CREATE
// ======================================================

func (h *ConsultaHandler) Create(c *gin.Context) {
	req, err := bindCreateRequest(c)
	if err != nil {
		httperr.Fields(c, []httperr.FieldError{{
			Type:     "field",
			Value:    nil,
			Msg:      msgBadBody,
			Path:     "body",
			Location: "body",
		}})
		return
	}

	created, err := h.create.Execute(
		c.Request.Context(),
		domain.CreateInput{
			Data:     req.Data,
			Horario:  req.Horario,
			Paciente: req.Paciente,
			Medico:   req.Medico,
		},
	)
	if err != nil {
		h.mapCreateErrors(c, err)
		return
	}

	h.log.Info("consulta agendada",
		"request_id", c.GetString(middleware.ContextRequestID),
		"id", created.ID,
	)

	httpresp.MessageWithID(c, msgCreated, created.ID)
}

// ======================================================
// CANCEL
// ======================================================

func (h *ConsultaHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, domain.CodeNotFound, msgNotFound)
		return
	}

	if _, err := h.cancel.Execute(c.Request.Context(), uint(id)); err != nil {
		h.mapCancelErrors(c, err)
		return
	}

	h.log.Info("consulta cancelada",
		"request_id", c.GetString(middleware.ContextRequestID),
		"id", id,
	)

	httpresp.Message(c, msgCancelled)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func (h *ConsultaHandler) mapCreateErrors(c *gin.Context, err error) {
	var fve *domain.FieldValidationError
	switch {
	case errors.As(err, &fve):
		out := make([]httperr.FieldError, 0, len(fve.Errors))
		for _, fe := range fve.Errors {
			out = append(out, httperr.FieldError{
				Type:     "field",
				Value:    fe.Value,
				Msg:      fe.Message,
				Path:     fe.Field,
				Location: "body",
			})
		}
		httperr.Fields(c, out)

	case httperr.IsBusiness(err, domain.CodePastDate):
		httperr.BadRequest(c, domain.CodePastDate, msgPastDate)

	case httperr.IsBusiness(err, domain.CodeSlotConflict):
		httperr.BadRequest(c, domain.CodeSlotConflict, msgConflict)

	default:
		h.writeStorageError(c, err)
	}
}

func (h *ConsultaHandler) mapCancelErrors(c *gin.Context, err error) {
	// já cancelada conta como não encontrada
	if code, ok := httperr.BusinessCode(err); ok &&
		(code == domain.CodeNotFound || code == domain.CodeInvalidState) {
		httperr.NotFound(c, domain.CodeNotFound, msgNotFound)
		return
	}
	h.writeStorageError(c, err)
}

func (h *ConsultaHandler) writeStorageError(c *gin.Context, err error) {
	code, msg := "internal_error", msgInternal

	var se *domain.StorageError
	if errors.As(err, &se) {
		code = "storage_" + se.Op
		if m, ok := storageMessages[se.Op]; ok {
			msg = m
		}
	}

	h.log.Error("request failed",
		"request_id", c.GetString(middleware.ContextRequestID),
		"path", c.FullPath(),
		"err", err,
	)

	httperr.Internal(c, code, msg)
}
