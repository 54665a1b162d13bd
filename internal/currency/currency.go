// Package currency renders amounts as dollar strings with two decimal places.
package currency

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// zero is returned for values that are not numbers
const zero = "$0.00"

// FormatCurrency renders value as "$" followed by the number fixed to two
// decimal places. Values that are not numbers, including NaN, infinities and
// non-numeric strings, render as "$0.00". Numeric strings are parsed.
// There is no grouping or localization; negatives keep their native sign.
func FormatCurrency(value any) string {
	num, ok := toFloat(value)
	if !ok || math.IsNaN(num) || math.IsInf(num, 0) {
		return zero
	}
	return "$" + toFixed2(num)
}

// toFixed2 rounds v to whole cents, halves away from zero, using the exact
// binary value of v. Negative zero renders unsigned.
func toFixed2(v float64) string {
	neg := v < 0

	r := new(big.Rat).SetFloat64(math.Abs(v))
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))
	cents := new(big.Int).Quo(r.Num(), r.Denom())

	whole, frac := new(big.Int).QuoRem(cents, big.NewInt(100), new(big.Int))
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%02d", sign, whole.String(), frac.Int64())
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case string:
		return parseFloat(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		return parseFloat(rv.String())
	default:
		return 0, false
	}
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
