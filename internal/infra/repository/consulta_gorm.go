package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/consultorio-scheduler/internal/db"
	domain "github.com/BruksfildServices01/consultorio-scheduler/internal/domain/consulta"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/models"
)

type ConsultaGormRepository struct {
	db *gorm.DB
}

func NewConsultaGormRepository(db *gorm.DB) *ConsultaGormRepository {
	return &ConsultaGormRepository{db: db}
}

// --------------------------------------------------
// Listagem
// --------------------------------------------------

func (r *ConsultaGormRepository) ListAll(
	ctx context.Context,
) ([]models.Consulta, error) {

	var consultas []models.Consulta
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&consultas).Error; err != nil {
		return nil, &domain.StorageError{Op: domain.OpList, Err: err}
	}

	return consultas, nil
}

// --------------------------------------------------
// Criação / conflito
// --------------------------------------------------

func (r *ConsultaGormRepository) FindConflict(
	ctx context.Context,
	data string,
	horario string,
	medico string,
) (*models.Consulta, error) {

	var c models.Consulta
	err := r.db.WithContext(ctx).
		Where(
			"data = ? AND horario = ? AND medico = ? AND status = ?",
			data, horario, medico, string(domain.StatusScheduled),
		).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StorageError{Op: domain.OpFindConflict, Err: err}
	}

	return &c, nil
}

func (r *ConsultaGormRepository) Insert(
	ctx context.Context,
	c *models.Consulta,
) error {

	c.Status = string(domain.InitialStatus())

	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		// outra requisição ocupou o slot entre a checagem e o insert
		if dbpkg.IsUniqueViolation(err) {
			return domain.ErrConflict
		}
		return &domain.StorageError{Op: domain.OpInsert, Err: err}
	}

	return nil
}

// --------------------------------------------------
// Cancelamento
// --------------------------------------------------

func (r *ConsultaGormRepository) FindScheduledByID(
	ctx context.Context,
	id uint,
) (*models.Consulta, error) {

	var c models.Consulta
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, string(domain.StatusScheduled)).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StorageError{Op: domain.OpFindScheduled, Err: err}
	}

	return &c, nil
}

func (r *ConsultaGormRepository) Cancel(
	ctx context.Context,
	id uint,
	at time.Time,
) error {

	if err := r.db.WithContext(ctx).
		Model(&models.Consulta{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       string(domain.StatusCancelled),
			"cancelled_at": at,
		}).Error; err != nil {
		return &domain.StorageError{Op: domain.OpCancel, Err: err}
	}

	return nil
}

// Compile-time check
var _ domain.Repository = (*ConsultaGormRepository)(nil)
