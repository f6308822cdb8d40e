package boxrecon

import (
	"errors"
	"testing"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/models"
	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReference(t *testing.T) {
	sheet := parser.NewSheet("Ref", 0, [][]string{
		{"Descripcion", "CODIGO ADMIN", "Cajas"},
		{"a", " X100 ", "10"},
		{"b", "X100", "20"},
		{"c", "X200", ""},
		{"d", "", "12"},
		{"e", "X300", "cajas"},
		{"f", "X400", "0"},
		{"g", "X500", "6.0"},
		{"h", "1001", "24"},
	})

	table, err := LoadReference(sheet, DefaultCodeHeader, DefaultUnitsHeader, nil)
	require.NoError(t, err)

	assert.Equal(t, []models.ReferenceEntry{
		{Code: "X100", UnitsPerBox: 10},
		{Code: "X500", UnitsPerBox: 6},
		{Code: "1001", UnitsPerBox: 24},
	}, table.Entries())

	upb, ok := table.Lookup("X100")
	require.True(t, ok)
	assert.Equal(t, 10.0, upb)

	_, ok = table.Lookup("X200")
	assert.False(t, ok)
}

func TestLoadReferenceDedupIdempotent(t *testing.T) {
	sheet := parser.NewSheet("Ref", 0, [][]string{
		{"CODIGO ADMIN", "Cajas"},
		{"X100", "10"},
		{"X100", "20"},
		{"X100", "30"},
	})

	first, err := LoadReference(sheet, DefaultCodeHeader, DefaultUnitsHeader, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Len())

	again := models.NewReferenceTable(append(first.Entries(), first.Entries()...))
	assert.Equal(t, first.Entries(), again.Entries())
}

func TestLoadReferenceMissingColumn(t *testing.T) {
	sheet := parser.NewSheet("Ref", 0, [][]string{
		{"CODIGO ADMIN", "Unidades"},
		{"X100", "10"},
	})

	_, err := LoadReference(sheet, DefaultCodeHeader, DefaultUnitsHeader, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrColumnNotFound))
	assert.True(t, IsLoadFailure(err))

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "Cajas", le.Column)
	assert.Equal(t, SourceReference, le.Source)
}

func TestLoadReferenceEmptySheet(t *testing.T) {
	sheet := parser.NewSheet("Ref", 16, nil)

	_, err := LoadReference(sheet, DefaultCodeHeader, DefaultUnitsHeader, nil)
	assert.True(t, errors.Is(err, ErrColumnNotFound))
}
