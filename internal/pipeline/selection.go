package pipeline

import (
	"strings"

	"github.com/samber/lo"
)

// NormalizeUnique trims values, drops empties and keeps the first of each.
func NormalizeUnique(values []string) []string {
	trimmed := lo.FilterMap(values, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
	return lo.Uniq(trimmed)
}

// SelectedValues returns the effective filter for a selection. Values that
// are not among the available options are dropped. Selecting nothing or every
// available value means no filter and yields nil, as does an empty option list.
func SelectedValues(selected, all []string) []string {
	avail := NormalizeUnique(all)
	if len(avail) == 0 {
		return nil
	}
	sel := lo.Filter(NormalizeUnique(selected), func(s string, _ int) bool {
		return lo.Contains(avail, s)
	})
	if len(sel) == 0 || len(sel) == len(avail) {
		return nil
	}
	return sel
}

// SelectionParam is SelectedValues joined for a query parameter.
func SelectionParam(selected, all []string) string {
	return strings.Join(SelectedValues(selected, all), ",")
}
