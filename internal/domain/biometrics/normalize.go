package biometrics

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"zenith-dashboard/internal/ports/tables"
)

// isoMillis es el formato de Date cuando el upstream no lo trae.
const isoMillis = "2006-01-02T15:04:05.000Z"

var ErrNoUsableRow = errors.New("no usable biometrics row")

// ToNumber convierte una celda a número. Nunca falla: lo que no se puede
// leer (o no es finito) vale 0. Los negativos pasan tal cual.
func ToNumber(v tables.Value) float64 {
	switch v.Kind() {
	case tables.KindNumber:
		f, _ := v.Float()
		return f
	case tables.KindString:
		s, _ := v.Str()
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
		if s == "" {
			return 0
		}
		return parseNumeric(s)
	default:
		return 0
	}
}

// parseNumeric acepta lo mismo que Number() en JS: decimales con exponente
// opcional, o enteros 0x/0b/0o sin signo. Sin '_' ni floats hexadecimales.
func parseNumeric(s string) float64 {
	if strings.ContainsRune(s, '_') {
		return 0
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		}
		if base != 0 {
			digits := s[2:]
			if digits[0] == '+' || digits[0] == '-' {
				return 0
			}
			n, ok := new(big.Int).SetString(digits, base)
			if !ok {
				return 0
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			if math.IsInf(f, 0) {
				return 0
			}
			return f
		}
	}

	// ParseFloat toma "0x1p3" como float hexadecimal; Number() no.
	if strings.ContainsAny(s, "xXpP") {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func dateOf(v tables.Value, now time.Time) string {
	if v.Truthy() {
		switch v.Kind() {
		case tables.KindString:
			s, _ := v.Str()
			return s
		case tables.KindNumber:
			f, _ := v.Float()
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	return now.UTC().Format(isoMillis)
}

// SelectLatest recorre las filas de la más nueva a la más vieja y devuelve
// la primera con HRV (o hrv) truthy.
func SelectLatest(rows []tables.Row) (tables.Row, error) {
	for i := len(rows) - 1; i >= 0; i-- {
		vals := rows[i].Values
		if vals == nil {
			continue
		}
		if vals[ColumnHRV].Truthy() || vals[ColumnHRVLower].Truthy() {
			return rows[i], nil
		}
	}
	return tables.Row{}, ErrNoUsableRow
}

// Normalize mapea las columnas de una fila a Record.
func Normalize(values map[string]tables.Value, now time.Time) Record {
	return Record{
		Date:         dateOf(values[ColumnDate], now),
		HRV:          ToNumber(values[ColumnHRV]),
		SleepSeconds: ToNumber(values[ColumnSleepSeconds]),
		SleepHours:   ToNumber(values[ColumnSleepHours]),
	}
}
