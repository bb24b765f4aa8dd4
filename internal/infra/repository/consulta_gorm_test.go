package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbpkg "github.com/BruksfildServices01/consultorio-scheduler/internal/db"
	domain "github.com/BruksfildServices01/consultorio-scheduler/internal/domain/consulta"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/models"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/testutil"
)

func newConsulta(data, horario, paciente, medico string) *models.Consulta {
	return &models.Consulta{Data: data, Horario: horario, Paciente: paciente, Medico: medico}
}

func TestInsert_AssignsIDAndScheduledStatus(t *testing.T) {
	repo := NewConsultaGormRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	c := newConsulta("2099-01-01", "10:00", "Ana Silva", "Dr. Souza")
	c.Status = "cancelled"
	require.NoError(t, repo.Insert(ctx, c))

	assert.NotZero(t, c.ID)
	assert.Equal(t, string(domain.StatusScheduled), c.Status)
}

func TestListAll_InsertionOrderWithEveryStatus(t *testing.T) {
	repo := NewConsultaGormRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	empty, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	a := newConsulta("2099-01-02", "09:00", "Ana", "Dr. Souza")
	b := newConsulta("2099-01-01", "08:00", "Bia", "Dr. Lima")
	require.NoError(t, repo.Insert(ctx, a))
	require.NoError(t, repo.Insert(ctx, b))
	require.NoError(t, repo.Cancel(ctx, a.ID, time.Now()))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, string(domain.StatusCancelled), all[0].Status)
	assert.Equal(t, b.ID, all[1].ID)
	assert.Equal(t, string(domain.StatusScheduled), all[1].Status)
}

func TestFindConflict(t *testing.T) {
	repo := NewConsultaGormRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	c := newConsulta("2099-01-01", "10:00", "Ana", "Dr. Souza")
	require.NoError(t, repo.Insert(ctx, c))

	found, err := repo.FindConflict(ctx, "2099-01-01", "10:00", "Dr. Souza")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, c.ID, found.ID)

	none, err := repo.FindConflict(ctx, "2099-01-01", "10:00", "Dr. Lima")
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, repo.Cancel(ctx, c.ID, time.Now()))
	none, err = repo.FindConflict(ctx, "2099-01-01", "10:00", "Dr. Souza")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestInsert_DuplicateScheduledSlotIsConflict(t *testing.T) {
	repo := NewConsultaGormRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newConsulta("2099-01-01", "10:00", "Ana", "Dr. Souza")))

	// simula a corrida: o segundo insert pula a checagem de conflito
	err := repo.Insert(ctx, newConsulta("2099-01-01", "10:00", "Bia", "Dr. Souza"))
	assert.ErrorIs(t, err, domain.ErrConflict)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFindScheduledByID_AndCancel(t *testing.T) {
	repo := NewConsultaGormRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	c := newConsulta("2099-01-01", "10:00", "Ana", "Dr. Souza")
	require.NoError(t, repo.Insert(ctx, c))

	found, err := repo.FindScheduledByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ana", found.Paciente)

	at := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Cancel(ctx, c.ID, at))

	gone, err := repo.FindScheduledByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	missing, err := repo.FindScheduledByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, all[0].CancelledAt)
	assert.True(t, at.Equal(*all[0].CancelledAt))
}

func TestOperations_WrapStorageErrors(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewConsultaGormRepository(db)
	ctx := context.Background()

	require.NoError(t, dbpkg.Close(db))

	var se *domain.StorageError

	_, err := repo.ListAll(ctx)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.OpList, se.Op)

	_, err = repo.FindConflict(ctx, "2099-01-01", "10:00", "Dr. Souza")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.OpFindConflict, se.Op)

	err = repo.Insert(ctx, newConsulta("2099-01-01", "10:00", "Ana", "Dr. Souza"))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.OpInsert, se.Op)

	_, err = repo.FindScheduledByID(ctx, 1)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.OpFindScheduled, se.Op)

	err = repo.Cancel(ctx, 1, time.Now())
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.OpCancel, se.Op)
}
