package consulta

import (
	"context"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consultorio-scheduler/internal/domain/consulta"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/models"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/requestid"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/timezone"
)

type CancelConsulta struct {
	rules *domain.Rules
	repo  domain.Repository
	audit *audit.Dispatcher
	now   timezone.Clock
}

func NewCancelConsulta(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now timezone.Clock,
) *CancelConsulta {
	return &CancelConsulta{
		rules: domain.NewRules(repo),
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

func (uc *CancelConsulta) Execute(
	ctx context.Context,
	id uint,
) (*models.Consulta, error) {

	c, err := uc.rules.ValidateCancelRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := domain.Cancel(c, now); err != nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.repo.Cancel(ctx, c.ID, now); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionConsultaCancelled,
		Entity:    audit.EntityConsulta,
		EntityID:  &c.ID,
		RequestID: requestid.From(ctx),
	})

	return c, nil
}
