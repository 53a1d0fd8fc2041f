package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

func strPtr(s string) *string {
	return &s
}

func typedCell(ref, tag, value string) *models.Cell {
	return &models.Cell{Ref: ref, Type: models.ParseCellType(tag), Tag: tag, Value: strPtr(value)}
}

func TestResolveCell(t *testing.T) {
	sst := &models.SharedStringTable{Items: []models.SharedStringItem{
		{Text: strPtr("x"), InnerText: "x"},
		{Text: strPtr("y"), InnerText: "y"},
		{InnerText: "rich text"},
	}}

	tests := []struct {
		name     string
		cell     *models.Cell
		expected string
	}{
		{"nil cell", nil, ""},
		{"untyped", typedCell("A1", "", "42.5"), "42.5"},
		{"untyped without value", &models.Cell{Ref: "A1"}, ""},
		{"typed without value", &models.Cell{Ref: "A1", Type: models.CellTypeDate, Tag: "d"}, ""},
		{"boolean true", typedCell("A1", "b", "1"), "True"},
		{"boolean false", typedCell("A1", "b", "0"), "False"},
		{"boolean empty", typedCell("A1", "b", ""), "False"},
		{"date", typedCell("A1", "d", "45000"), "2023-03-15"},
		{"date with time", typedCell("A1", "d", "44927.75"), "2023-01-01"},
		{"shared string 0", typedCell("A1", "s", "0"), "x"},
		{"shared string 1", typedCell("A1", "s", "1"), "y"},
		{"shared string out of range", typedCell("A1", "s", "3"), ""},
		{"shared string negative", typedCell("A1", "s", "-1"), ""},
		{"shared string not a number", typedCell("A1", "s", "abc"), ""},
		{"shared string rich text", typedCell("A1", "s", "2"), "rich text"},
		{"number", typedCell("A1", "n", "3.14"), "3.14"},
		{"formula string", typedCell("A1", "str", "computed"), "computed"},
		{"inline string", typedCell("A1", "inlineStr", "inline"), "inline"},
		{"error", typedCell("A1", "e", "#DIV/0!"), "#DIV/0!"},
		{"unknown tag", typedCell("A1", "zz", "raw"), "raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ResolveCell(tt.cell, sst)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolveCellWithoutSharedStrings(t *testing.T) {
	result, err := ResolveCell(typedCell("A1", "s", "0"), nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestResolveCellDateSerials(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"0", "1899-12-30"},
		{"1", "1899-12-31"},
		{"60", "1900-02-28"},
		{"61", "1900-03-01"},
		{"-5", "1899-12-25"},
		{"-1.25", "1899-12-29"},
		{"-657434", "0100-01-01"},
		{" 45000 ", "2023-03-15"},
		{"45000\n", "2023-03-15"},
	}

	for _, tt := range tests {
		result, err := ResolveCell(typedCell("A1", "d", tt.value), nil)
		require.NoError(t, err, "value %q", tt.value)
		assert.Equal(t, tt.expected, result, "value %q", tt.value)
	}
}

func TestResolveCellInvalidDate(t *testing.T) {
	for _, value := range []string{"not a date", "", "   "} {
		_, err := ResolveCell(typedCell("C7", "d", value), nil)
		require.Error(t, err, "value %q", value)

		var cellErr *CellValueError
		require.ErrorAs(t, err, &cellErr)
		assert.Equal(t, "C7", cellErr.Ref)
		assert.Equal(t, models.CellTypeDate, cellErr.Type)
		assert.Equal(t, value, cellErr.Value)
	}
}

func TestResolveCellDateOutOfRange(t *testing.T) {
	for _, value := range []string{"NaN", "Inf", "-Inf", "1e300", "-1e300", "2958466", "-657435"} {
		result, err := ResolveCell(typedCell("D2", "d", value), nil)
		assert.Empty(t, result, "value %q", value)
		require.ErrorIs(t, err, ErrDateOutOfRange, "value %q", value)

		var cellErr *CellValueError
		require.ErrorAs(t, err, &cellErr)
		assert.Equal(t, "D2", cellErr.Ref)
	}
}

func TestCellResolverDate1904Negative(t *testing.T) {
	r := CellResolver{Date1904: true}
	result, err := r.Resolve(typedCell("A1", "d", "-1"))
	require.NoError(t, err)
	assert.Equal(t, "1903-12-31", result)
}

func TestCellResolverDate1904(t *testing.T) {
	r := CellResolver{Date1904: true}
	result, err := r.Resolve(typedCell("A1", "d", "43538"))
	require.NoError(t, err)
	assert.Equal(t, "2023-03-15", result)
}

func TestParseCellType(t *testing.T) {
	tests := map[string]models.CellType{
		"":          models.CellTypeUntyped,
		"b":         models.CellTypeBoolean,
		"d":         models.CellTypeDate,
		"s":         models.CellTypeSharedString,
		"n":         models.CellTypeNumber,
		"str":       models.CellTypeInlineString,
		"inlineStr": models.CellTypeInlineString,
		"e":         models.CellTypeOther,
	}
	for tag, expected := range tests {
		assert.Equal(t, expected, models.ParseCellType(tag), "tag %q", tag)
	}
}
