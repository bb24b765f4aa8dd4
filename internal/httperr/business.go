package httperr

import "errors"

// BusinessError é uma regra de negócio violada (passado, conflito de
// horário, consulta inexistente). O handler decide o status HTTP pelo Code.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness informa se err, ou algo que ele embrulha, é a regra code.
func IsBusiness(err error, code string) bool {
	got, ok := BusinessCode(err)
	return ok && got == code
}

// BusinessCode extrai o código da regra violada, se houver.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
