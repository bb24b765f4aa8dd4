package consulta

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/httperr"
)

const (
	CodeInvalidFields = "invalid_fields"
	CodePastDate      = "past_date"
	CodeSlotConflict  = "slot_conflict"
	CodeNotFound      = "consulta_not_found"
	CodeInvalidState  = "invalid_state"
)

var (
	ErrPastDate = httperr.ErrBusiness(CodePastDate)
	ErrConflict = httperr.ErrBusiness(CodeSlotConflict)
	ErrNotFound = httperr.ErrBusiness(CodeNotFound)
)

type FieldError struct {
	Field   string
	Message string
	Value   string
}

// FieldValidationError junta todas as falhas de formato de uma requisição.
type FieldValidationError struct {
	Errors []FieldError
}

func (e *FieldValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field)
	}
	return CodeInvalidFields + ": " + strings.Join(fields, ", ")
}

// Operações do Store, usadas para escolher a mensagem do erro 500.
const (
	OpList          = "list"
	OpFindConflict  = "find_conflict"
	OpInsert        = "insert"
	OpFindScheduled = "find_scheduled"
	OpCancel        = "cancel"
)

type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
