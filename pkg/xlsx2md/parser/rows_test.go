package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

func row(cells ...models.Cell) models.Row {
	return models.Row{Cells: cells}
}

func cell(ref, value string) models.Cell {
	return models.Cell{Ref: ref, Value: strPtr(value)}
}

func TestRasterizeEmpty(t *testing.T) {
	grid, err := Rasterize(nil, CellResolver{})
	require.NoError(t, err)
	assert.True(t, grid.IsEmpty())
	assert.Zero(t, grid.Width)
}

func TestRasterizePadsRows(t *testing.T) {
	rows := []models.Row{
		row(cell("A1", "Name"), cell("B1", "Age"), cell("C1", "City")),
		row(cell("A2", "Alice")),
		row(),
		row(cell("A4", "Bob"), cell("B4", "41")),
	}

	grid, err := Rasterize(rows, CellResolver{})
	require.NoError(t, err)
	assert.Equal(t, 3, grid.Width)
	require.Len(t, grid.Rows, 4)
	for _, r := range grid.Rows {
		assert.Len(t, r, grid.Width)
	}
	assert.Equal(t, []string{"Name", "Age", "City"}, grid.Rows[0])
	assert.Equal(t, []string{"Alice", "", ""}, grid.Rows[1])
	assert.Equal(t, []string{"", "", ""}, grid.Rows[2])
	assert.Equal(t, []string{"Bob", "41", ""}, grid.Rows[3])
}

func TestRasterizeMatchesByReference(t *testing.T) {
	rows := []models.Row{
		// storage order differs from column order
		row(cell("B1", "second"), cell("a1", "first")),
		// gap at column A
		row(cell("B2", "only b"), cell("C2", "c")),
	}

	grid, err := Rasterize(rows, CellResolver{})
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Width)
	assert.Equal(t, []string{"first", "second"}, grid.Rows[0])
	// C2 lies beyond the count-based width
	assert.Equal(t, []string{"", "only b"}, grid.Rows[1])
}

func TestRasterizeSparseReferencesUseCellCount(t *testing.T) {
	rows := []models.Row{row(cell("A1", "a"), cell("Z1", "z"))}

	grid, err := Rasterize(rows, CellResolver{})
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Width)
	assert.Equal(t, []string{"a", ""}, grid.Rows[0])
}

func TestRasterizeFirstMatchWins(t *testing.T) {
	rows := []models.Row{row(cell("A1", "first"), cell("A1", "duplicate"))}

	grid, err := Rasterize(rows, CellResolver{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", ""}, grid.Rows[0])
}

func TestRasterizeCellsWithoutReference(t *testing.T) {
	rows := []models.Row{row(models.Cell{Value: strPtr("orphan")}, cell("A1", "kept"))}

	grid, err := Rasterize(rows, CellResolver{})
	require.NoError(t, err)
	assert.Equal(t, []string{"kept", ""}, grid.Rows[0])
}

func TestRasterizeSharedStrings(t *testing.T) {
	sst := &models.SharedStringTable{Items: []models.SharedStringItem{{Text: strPtr("Hello")}}}
	rows := []models.Row{row(*typedCell("A1", "s", "0"), *typedCell("B1", "b", "1"))}

	grid, err := Rasterize(rows, CellResolver{SharedStrings: sst})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", "True"}, grid.Rows[0])
}

func TestRasterizePropagatesResolverErrors(t *testing.T) {
	rows := []models.Row{
		row(cell("A1", "ok")),
		row(*typedCell("A2", "d", "yesterday")),
	}

	grid, err := Rasterize(rows, CellResolver{})
	assert.Nil(t, grid)

	var cellErr *CellValueError
	require.True(t, errors.As(err, &cellErr))
	assert.Equal(t, "A2", cellErr.Ref)
}
