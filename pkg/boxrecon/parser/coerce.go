package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/models"
)

// Quantity converts a raw cell value into a non-negative unit count.
// Empty, non-numeric, NaN, infinite and negative values count as 0;
// fractional values are truncated toward zero.
func Quantity(raw string) int {
	v, ok := parseNumber(raw)
	if !ok || v <= 0 {
		return 0
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// Number parses a raw cell value as a finite float.
func Number(raw string) (float64, bool) {
	return parseNumber(raw)
}

// SumColumns returns, for every data row of sheet, the sum of Quantity over cols.
// The result always has sheet.Len() entries; an empty cols yields all zeros.
func SumColumns(sheet *models.Sheet, cols []int) []int {
	sums := make([]int, sheet.Len())
	for row := range sums {
		total := 0
		for _, col := range cols {
			total += Quantity(sheet.Cell(row, col))
		}
		sums[row] = total
	}
	return sums
}

// parseNumber attempts to parse s as a finite number.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
