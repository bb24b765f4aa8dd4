package timezone

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateTimeLayout = "2006-01-02 15:04"

// Clock devolve o instante atual; os use cases recebem um para facilitar testes.
type Clock func() time.Time

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolve tz; vazio cai no horário local do processo. A config
// já rejeita nomes inválidos na carga.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

func NewClock(tz string) Clock {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// ErrNotAnInstant indica data/horário fora dos limites de cada componente.
var ErrNotAnInstant = errors.New("date/time is not an instant")

// ParseLocal compõe data (AAAA-MM-DD) + horário (HH:MM) como horário de parede
// em loc. Dia além do fim do mês e 24:00 avançam para o dia seguinte
// (2020-02-30 vira 2020-03-01); mês fora de 1..12, dia fora de 1..31,
// hora acima de 24, minuto acima de 59 ou 24:MM diferente de 24:00
// não formam um instante.
func ParseLocal(date, hm string, loc *time.Location) (time.Time, error) {
	dp := strings.Split(date, "-")
	tp := strings.Split(hm, ":")
	if len(dp) != 3 || len(tp) != 2 {
		return time.Time{}, fmt.Errorf("%w: %q %q", ErrNotAnInstant, date, hm)
	}

	nums := make([]int, 0, 5)
	for _, part := range append(dp, tp...) {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return time.Time{}, fmt.Errorf("%w: %q %q", ErrNotAnInstant, date, hm)
		}
		nums = append(nums, n)
	}
	y, mo, d, h, mi := nums[0], nums[1], nums[2], nums[3], nums[4]

	switch {
	case mo < 1 || mo > 12,
		d < 1 || d > 31,
		h > 24,
		mi > 59,
		h == 24 && mi != 0:
		return time.Time{}, fmt.Errorf("%w: %q %q", ErrNotAnInstant, date, hm)
	}

	return time.Date(y, time.Month(mo), d, h, mi, 0, 0, loc), nil
}
