package parser

import (
	"strings"

	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

// Rasterize converts sparse rows into a rectangular grid of resolved text.
//
// The width is the largest number of cells stored in any row. Column i of a
// row holds the first cell whose reference prefix equals ColumnReference(i),
// or "" when no such cell exists. An empty rows slice yields an empty grid.
func Rasterize(rows []models.Row, r Resolver) (*models.Grid, error) {
	grid := &models.Grid{}
	if len(rows) == 0 {
		return grid, nil
	}

	for _, row := range rows {
		if len(row.Cells) > grid.Width {
			grid.Width = len(row.Cells)
		}
	}

	grid.Rows = make([][]string, 0, len(rows))
	for _, row := range rows {
		byColumn := indexCells(row.Cells)
		line := make([]string, grid.Width)
		for i := range line {
			idx, ok := byColumn[ColumnReference(i)]
			if !ok {
				continue
			}
			text, err := r.Resolve(&row.Cells[idx])
			if err != nil {
				return nil, err
			}
			line[i] = text
		}
		grid.Rows = append(grid.Rows, line)
	}

	return grid, nil
}

// indexCells maps upper-cased column prefixes to the first cell carrying them.
func indexCells(cells []models.Cell) map[string]int {
	result := make(map[string]int, len(cells))
	for i, c := range cells {
		if c.Ref == "" {
			continue
		}
		col := strings.ToUpper(ColumnPrefix(c.Ref))
		if _, seen := result[col]; !seen {
			result[col] = i
		}
	}
	return result
}
