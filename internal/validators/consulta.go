package validators

import "regexp"

var (
	isoDateShape    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	hourMinuteShape = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// IsISODate só confere o formato AAAA-MM-DD, sem validar o calendário.
func IsISODate(s string) bool {
	return isoDateShape.MatchString(s)
}

// IsHourMinute confere HH:MM sem validar a faixa das horas.
func IsHourMinute(s string) bool {
	return hourMinuteShape.MatchString(s)
}

