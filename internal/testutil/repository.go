package testutil

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/consultorio-scheduler/internal/domain/consulta"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/models"
)

// FailingRepository delega para Inner, mas falha nas operações listadas em Fail.
type FailingRepository struct {
	Inner domain.Repository
	Fail  map[string]error
}

func (r *FailingRepository) failure(op string) error {
	if err, ok := r.Fail[op]; ok {
		return &domain.StorageError{Op: op, Err: err}
	}
	return nil
}

func (r *FailingRepository) ListAll(ctx context.Context) ([]models.Consulta, error) {
	if err := r.failure(domain.OpList); err != nil {
		return nil, err
	}
	return r.Inner.ListAll(ctx)
}

func (r *FailingRepository) FindConflict(ctx context.Context, data, horario, medico string) (*models.Consulta, error) {
	if err := r.failure(domain.OpFindConflict); err != nil {
		return nil, err
	}
	return r.Inner.FindConflict(ctx, data, horario, medico)
}

func (r *FailingRepository) Insert(ctx context.Context, c *models.Consulta) error {
	if err := r.failure(domain.OpInsert); err != nil {
		return err
	}
	return r.Inner.Insert(ctx, c)
}

func (r *FailingRepository) FindScheduledByID(ctx context.Context, id uint) (*models.Consulta, error) {
	if err := r.failure(domain.OpFindScheduled); err != nil {
		return nil, err
	}
	return r.Inner.FindScheduledByID(ctx, id)
}

func (r *FailingRepository) Cancel(ctx context.Context, id uint, at time.Time) error {
	if err := r.failure(domain.OpCancel); err != nil {
		return err
	}
	return r.Inner.Cancel(ctx, id, at)
}

var _ domain.Repository = (*FailingRepository)(nil)
