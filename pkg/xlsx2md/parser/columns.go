package parser

import (
	"fmt"
	"strings"
	"unicode"
)

// ColumnReference converts a zero-based column index to its letter
// reference (0 -> "A", 25 -> "Z", 26 -> "AA").
func ColumnReference(index int) string {
	if index < 0 {
		return ""
	}
	var buf []byte
	n := index + 1
	for n > 0 {
		mod := (n - 1) % 26
		buf = append(buf, byte('A'+mod))
		n = (n - mod) / 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ColumnIndex converts a letter reference back to its zero-based index.
// Letters are matched case-insensitively.
func ColumnIndex(letters string) (int, error) {
	if letters == "" {
		return -1, fmt.Errorf("empty column reference")
	}
	n := 0
	for _, r := range letters {
		r = unicode.ToUpper(r)
		if r < 'A' || r > 'Z' {
			return -1, fmt.Errorf("invalid column reference %q", letters)
		}
		n = n*26 + int(r-'A') + 1
	}
	return n - 1, nil
}

// ColumnPrefix returns the leading run of letters of a cell reference
// ("AB12" -> "AB").
func ColumnPrefix(ref string) string {
	end := strings.IndexFunc(ref, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if end < 0 {
		return ref
	}
	return ref[:end]
}
