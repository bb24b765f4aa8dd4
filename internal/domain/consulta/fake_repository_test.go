package consulta

import (
	"context"
	"time"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/models"
)

type fakeRepository struct {
	rows []models.Consulta
	err  error
}

func (f *fakeRepository) ListAll(ctx context.Context) ([]models.Consulta, error) {
	if f.err != nil {
		return nil, &StorageError{Op: OpList, Err: f.err}
	}
	return append([]models.Consulta(nil), f.rows...), nil
}

func (f *fakeRepository) FindConflict(ctx context.Context, data, horario, medico string) (*models.Consulta, error) {
	if f.err != nil {
		return nil, &StorageError{Op: OpFindConflict, Err: f.err}
	}
	for i := range f.rows {
		r := f.rows[i]
		if r.Data == data && r.Horario == horario && r.Medico == medico && r.Status == string(StatusScheduled) {
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) Insert(ctx context.Context, c *models.Consulta) error {
	if f.err != nil {
		return &StorageError{Op: OpInsert, Err: f.err}
	}
	c.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeRepository) FindScheduledByID(ctx context.Context, id uint) (*models.Consulta, error) {
	if f.err != nil {
		return nil, &StorageError{Op: OpFindScheduled, Err: f.err}
	}
	for i := range f.rows {
		if f.rows[i].ID == id && f.rows[i].Status == string(StatusScheduled) {
			r := f.rows[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) Cancel(ctx context.Context, id uint, at time.Time) error {
	if f.err != nil {
		return &StorageError{Op: OpCancel, Err: f.err}
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Status = string(StatusCancelled)
			f.rows[i].CancelledAt = &at
		}
	}
	return nil
}

var _ Repository = (*fakeRepository)(nil)
