package consulta

import (
	"context"
	"time"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/models"
)

// Repository é o Store de consultas. Falhas de I/O voltam como *StorageError.
type Repository interface {
	// todas as consultas, em ordem de inserção
	ListAll(ctx context.Context) ([]models.Consulta, error)

	// consulta marcada no mesmo slot, ou nil
	FindConflict(
		ctx context.Context,
		data string,
		horario string,
		medico string,
	) (*models.Consulta, error)

	// grava com status scheduled e preenche o ID
	Insert(ctx context.Context, c *models.Consulta) error

	// só devolve a consulta se ainda estiver marcada
	FindScheduledByID(ctx context.Context, id uint) (*models.Consulta, error)

	// não revalida: quem chama já conferiu a elegibilidade
	Cancel(ctx context.Context, id uint, at time.Time) error
}
