// SPDX-License-Identifier: MIT
// Package: lvtherm/builder
//
// id_fn.go - node id schemes.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvtherm/core"
)

// IDFn generates a node identifier from its zero-based index.
// Deterministic schemes return the same string for the same idx.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
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

// PrefixIDFn returns prefix + decimal index, e.g. "n0", "n1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// UUIDIDFn ignores idx and returns a fresh UUID, the scheme core.NewNode
// uses. Builds using it are not reproducible.
func UUIDIDFn(int) string {
	return core.NewID()
}
