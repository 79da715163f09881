package prettytable

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

type cellKind int

const (
	kindAbsent cellKind = iota
	kindText
	kindNumber
	kindBoolean
)

func (k cellKind) String() string {
	switch k {
	case kindText:
		return "text"
	case kindNumber:
		return "number"
	case kindBoolean:
		return "boolean"
	default:
		return "absent"
	}
}

// normalize returns a new rectangular grid of trimmed strings. In strict
// mode every row must match the first row's length; otherwise the widest
// row sets the column count and short rows are filled with empty cells.
func normalize(raw [][]any, strict bool) ([][]string, error) {
	if len(raw) == 0 {
		return [][]string{}, nil
	}
	numCols := len(raw[0])
	for i, row := range raw {
		if len(row) == numCols {
			continue
		}
		if strict {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRowLengthMismatch, i, len(row), len(raw[0]))
		}
		numCols = max(numCols, len(row))
	}

	rows := make([][]string, len(raw))
	for i, row := range raw {
		cells := make([]string, numCols)
		for j, v := range row {
			s, _, err := resolveCell(v)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %v", ErrTypeMismatch, i, j, err)
			}
			cells[j] = strings.TrimSpace(s)
		}
		rows[i] = cells
	}
	return rows, nil
}

// resolveCell converts a raw value into its canonical text.
func resolveCell(v any) (string, cellKind, error) {
	if v == nil {
		return "", kindAbsent, nil
	}
	if s, ok := v.(string); ok {
		return s, kindText, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", kindAbsent, nil
		}
		if str, ok := rv.Interface().(fmt.Stringer); ok {
			return str.String(), kindText, nil
		}
		rv = rv.Elem()
	}
	if rv.CanInterface() {
		if str, ok := rv.Interface().(fmt.Stringer); ok {
			return str.String(), kindText, nil
		}
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), kindText, nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), kindBoolean, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), kindNumber, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), kindNumber, nil
	case reflect.Float32:
		return formatNumber(rv.Float(), 32), kindNumber, nil
	case reflect.Float64:
		return formatNumber(rv.Float(), 64), kindNumber, nil
	default:
		return "", kindAbsent, fmt.Errorf("%T is not a scalar", v)
	}
}

// formatNumber renders f the way a JavaScript engine prints a number:
// plain decimals between 1e-6 and 1e21, exponent form outside that range.
func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
