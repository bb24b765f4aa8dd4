package consulta

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consultorio-scheduler/internal/domain/consulta"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/models"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/requestid"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CreateConsulta struct {
	rules *domain.Rules
	repo  domain.Repository
	audit *audit.Dispatcher
	now   timezone.Clock
}

func NewCreateConsulta(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now timezone.Clock,
) *CreateConsulta {
	return &CreateConsulta{
		rules: domain.NewRules(repo),
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateConsulta) Execute(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Consulta, error) {

	// --------------------------------------------------
	// 1️⃣ Regras (formato, passado, conflito)
	// --------------------------------------------------
	c, err := uc.rules.ValidateCreateRequest(ctx, in, uc.now())
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			uc.dispatchConflict(ctx, in)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Gravação
	// --------------------------------------------------
	if err := uc.repo.Insert(ctx, c); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			uc.dispatchConflict(ctx, in)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionConsultaCreated,
		Entity:    audit.EntityConsulta,
		EntityID:  &c.ID,
		RequestID: requestid.From(ctx),
	})

	return c, nil
}

func (uc *CreateConsulta) dispatchConflict(ctx context.Context, in domain.CreateInput) {
	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionConsultaConflict,
		Entity:    audit.EntityConsulta,
		RequestID: requestid.From(ctx),
		Metadata: map[string]any{
			"data":    in.Data,
			"horario": in.Horario,
			"medico":  in.Medico,
		},
	})
}
