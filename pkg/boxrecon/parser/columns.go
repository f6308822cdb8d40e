package parser

import (
	"fmt"
	"strings"
)

// ColumnNumber converts a spreadsheet column label to its 1-based number:
// A=1, Z=26, AA=27, AZ=52, BA=53. Labels are case-insensitive.
func ColumnNumber(label string) (int, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, fmt.Errorf("empty column label")
	}
	n := 0
	for _, r := range label {
		switch {
		case r >= 'A' && r <= 'Z':
			n = n*26 + int(r-'A') + 1
		case r >= 'a' && r <= 'z':
			n = n*26 + int(r-'a') + 1
		default:
			return 0, fmt.Errorf("invalid column label %q", label)
		}
		if n > maxColumns {
			return 0, fmt.Errorf("column label %q out of range", label)
		}
	}
	return n, nil
}

// ColumnIndex converts a column label to a 0-based position.
func ColumnIndex(label string) (int, error) {
	n, err := ColumnNumber(label)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// ColumnName is the inverse of ColumnNumber.
func ColumnName(n int) (string, error) {
	if n < 1 || n > maxColumns {
		return "", fmt.Errorf("column number %d out of range", n)
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:]), nil
}

// maxColumns is the widest sheet Excel supports (XFD).
const maxColumns = 16384
