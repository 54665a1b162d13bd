// Package sorter applies caller-supplied or named sort strategies to lists.
package sorter

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"helperkit/internal/errors"
)

// SortList hands items to sortFn when a strategy is supplied and there is
// more than one element. Otherwise items itself is returned, not a copy.
func SortList[T any](items []T, sortFn func([]T) []T) []T {
	if sortFn != nil && len(items) > 1 {
		return sortFn(items)
	}
	return items
}

const (
	StrategyAscending  = "asc"
	StrategyDescending = "desc"
	StrategyNumeric    = "numeric"
	StrategyLength     = "length"
)

// Strategies lists the names accepted by Strategy
var Strategies = []string{StrategyAscending, StrategyDescending, StrategyNumeric, StrategyLength}

// Strategy returns a named string ordering. The returned function sorts a
// copy and leaves its argument untouched.
func Strategy(name string) (func([]string) []string, error) {
	switch strings.ToLower(name) {
	case StrategyAscending, "":
		return sortedCopy(strings.Compare), nil
	case StrategyDescending:
		return sortedCopy(func(a, b string) int { return strings.Compare(b, a) }), nil
	case StrategyNumeric:
		return sortedCopy(compareNumeric), nil
	case StrategyLength:
		return sortedCopy(func(a, b string) int { return len(a) - len(b) }), nil
	default:
		return nil, errors.NewValidationError("strategy",
			fmt.Sprintf("unknown strategy '%s' (expected one of %s)", name, strings.Join(Strategies, ", ")))
	}
}

func sortedCopy(cmp func(a, b string) int) func([]string) []string {
	return func(items []string) []string {
		out := slices.Clone(items)
		slices.SortStableFunc(out, cmp)
		return out
	}
}

// compareNumeric orders numbers by value ahead of non-numeric strings,
// which fall back to lexical order.
func compareNumeric(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
