// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a station index to its name. Names must start with a letter so
// that generated networks stay encodable as a stations file.
type IDFn func(idx int) string

// DefaultIDFn renders "S0", "S1", ...
func DefaultIDFn(idx int) string {
	return "S" + strconv.Itoa(idx)
}

// SymbolIDFn renders "A".."Z". Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnIDFn renders spreadsheet-style names: "A".."Z", "AA", "AB", ...
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn renders prefix followed by the index, e.g. "Red0", "Red1".
// Panics on an empty prefix.
func PrefixIDFn(prefix string) IDFn {
	if prefix == "" {
		panic("PrefixIDFn: empty prefix")
	}
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithPrefixIDs is shorthand for WithIDScheme(PrefixIDFn(prefix)).
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithSymbolIDs is shorthand for WithIDScheme(SymbolIDFn).
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs is shorthand for WithIDScheme(ExcelColumnIDFn).
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
