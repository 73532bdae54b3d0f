// Package internal holds helpers shared by the hrm packages.
package internal

import (
	"strings"
)

// EMPTY is the placeholder printed for an empty slot or an empty list.
const EMPTY = "-"

// Words splits a source line into whitespace separated words,
// dropping any trailing ';' comment.
func Words(line string) []string {
	code, _, _ := strings.Cut(line, ";")
	return strings.Fields(code)
}

// List formats items as a parenthesized, space separated list.
// Empty items print as EMPTY, and an empty list prints as EMPTY.
func List(items []string) string {
	if len(items) == 0 {
		return EMPTY
	}

	parts := make([]string, len(items))
	for n, item := range items {
		if len(item) == 0 {
			item = EMPTY
		}
		parts[n] = item
	}

	return "(" + strings.Join(parts, " ") + ")"
}
