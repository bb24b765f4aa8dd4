package consulta

import "github.com/BruksfildServices01/consultorio-scheduler/internal/httperr"

// ===============================
// Consulta Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

// CanCancel define se uma consulta pode ser cancelada
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(CodeInvalidState)
	}
	return nil
}

// InitialStatus é o único status aceito na criação
func InitialStatus() Status {
	return StatusScheduled
}
