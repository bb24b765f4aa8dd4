package consulta

import (
	"context"
	"time"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/models"
)

// Rules é o motor de regras de agendamento: toda criação e cancelamento
// passa por aqui antes de o Store ser alterado.
type Rules struct {
	repo Repository
}

func NewRules(repo Repository) *Rules {
	return &Rules{repo: repo}
}

// ValidateCreateRequest aplica formato, data passada e conflito, nessa ordem.
// A checagem de conflito e a inserção não são atômicas entre si.
func (r *Rules) ValidateCreateRequest(
	ctx context.Context,
	in CreateInput,
	now time.Time,
) (*models.Consulta, error) {

	if fieldErrs := ValidateFields(in); len(fieldErrs) > 0 {
		return nil, &FieldValidationError{Errors: fieldErrs}
	}

	if IsInPast(in.Data, in.Horario, now) {
		return nil, ErrPastDate
	}

	existing, err := r.repo.FindConflict(ctx, in.Data, in.Horario, in.Medico)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	return &models.Consulta{
		Data:     in.Data,
		Horario:  in.Horario,
		Paciente: in.Paciente,
		Medico:   in.Medico,
		Status:   string(InitialStatus()),
	}, nil
}

func (r *Rules) ValidateCancelRequest(
	ctx context.Context,
	id uint,
) (*models.Consulta, error) {

	c, err := r.repo.FindScheduledByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	if err := CanCancel(Status(c.Status)); err != nil {
		return nil, ErrNotFound
	}

	return c, nil
}
