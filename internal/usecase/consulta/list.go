package consulta

import (
	"context"

	domain "github.com/BruksfildServices01/consultorio-scheduler/internal/domain/consulta"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/dto"
)

type ListConsultas struct {
	repo domain.Repository
}

func NewListConsultas(
	repo domain.Repository,
) *ListConsultas {
	return &ListConsultas{
		repo: repo,
	}
}

func (uc *ListConsultas) Execute(
	ctx context.Context,
) ([]dto.ConsultaDTO, error) {

	consultas, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ConsultaDTO, 0, len(consultas))
	for _, c := range consultas {
		out = append(out, dto.ConsultaDTO{
			ID:       c.ID,
			Data:     c.Data,
			Horario:  c.Horario,
			Paciente: c.Paciente,
			Medico:   c.Medico,
			Status:   c.Status,
		})
	}

	return out, nil
}
