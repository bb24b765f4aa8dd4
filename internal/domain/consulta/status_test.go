package consulta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/models"
)

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusScheduled))

	err := CanCancel(StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, CodeInvalidState))
}

func TestCancel_FlipsOnce(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	c := &models.Consulta{ID: 1, Status: string(InitialStatus())}

	require.NoError(t, Cancel(c, at))
	assert.Equal(t, string(StatusCancelled), c.Status)
	require.NotNil(t, c.CancelledAt)
	assert.Equal(t, at, *c.CancelledAt)

	err := Cancel(c, at.Add(time.Hour))
	assert.Error(t, err)
	assert.Equal(t, at, *c.CancelledAt)
}
