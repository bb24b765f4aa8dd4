package consulta

import (
	"time"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(c *models.Consulta, now time.Time) error {
	if err := CanCancel(Status(c.Status)); err != nil {
		return err
	}

	c.Status = string(StatusCancelled)
	c.CancelledAt = &now
	return nil
}
