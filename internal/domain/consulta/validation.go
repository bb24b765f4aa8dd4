package consulta

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/timezone"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/validators"
)

type CreateInput struct {
	Data     string `json:"data" validate:"data_iso"`
	Horario  string `json:"horario" validate:"hora_minuto"`
	Paciente string `json:"paciente" validate:"min=2"`
	Medico   string `json:"medico" validate:"min=2"`
}

var fieldMessages = map[string]string{
	"data":     "A data deve estar no formato AAAA-MM-DD.",
	"horario":  "O horário deve estar no formato HH:MM.",
	"paciente": "O nome do paciente deve ter pelo menos 2 caracteres.",
	"medico":   "O nome do médico deve ter pelo menos 2 caracteres.",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "data_iso", func(fl validator.FieldLevel) bool {
		return validators.IsISODate(fl.Field().String())
	})
	mustRegister(v, "hora_minuto", func(fl validator.FieldLevel) bool {
		return validators.IsHourMinute(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

// ValidateFields devolve uma falha por campo inválido, na ordem dos campos.
func ValidateFields(in CreateInput) []FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fe.Error()
		}
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: msg,
			Value:   fmt.Sprint(fe.Value()),
		})
	}
	return out
}

// IsInPast compara data + horário como horário local no fuso de now.
// Dia excedente e 24:00 avançam (2020-02-30 é 2020-03-01); um par que
// não forma instante algum (ex.: 2024-13-40) não é considerado passado.
func IsInPast(data, horario string, now time.Time) bool {
	at, err := timezone.ParseLocal(data, horario, now.Location())
	if err != nil {
		return false
	}
	return !at.After(now)
}
