// Package output renders converted workbooks as Markdown.
package output

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

// TimestampLayout formats the conversion and created timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// EmptySheetPlaceholder replaces the table of a sheet without rows.
const EmptySheetPlaceholder = "*Empty worksheet*"

var escaper = strings.NewReplacer("|", `\|`, "\n", " ")

// Escape makes text safe for a table cell: pipes are escaped, newlines
// become spaces and surrounding whitespace is trimmed.
func Escape(text string) string {
	return strings.TrimSpace(escaper.Replace(text))
}

// RenderHeader renders the document title block.
func RenderHeader(source string, converted time.Time) string {
	var b strings.Builder
	b.WriteString("# Excel Document Conversion\n")
	fmt.Fprintf(&b, "*Source: %s*\n", filepath.Base(source))
	fmt.Fprintf(&b, "*Converted: %s*\n", converted.Format(TimestampLayout))
	b.WriteString("\n")
	return b.String()
}

// RenderSheet renders a sheet section: heading, table or placeholder, blank line.
func RenderSheet(title string, grid *models.Grid) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	if grid.IsEmpty() {
		b.WriteString(EmptySheetPlaceholder)
		b.WriteString("\n")
	} else {
		b.WriteString(RenderTable(grid))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderTable renders the first grid row as the header, then a separator,
// then the remaining rows. It returns "" for an empty grid.
func RenderTable(grid *models.Grid) string {
	if grid.IsEmpty() {
		return ""
	}

	var b strings.Builder
	writeRow(&b, grid.Rows[0])

	b.WriteString("| ")
	for i := 0; i < grid.Width; i++ {
		b.WriteString("--- | ")
	}
	b.WriteString("\n")

	for _, row := range grid.Rows[1:] {
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []string) {
	b.WriteString("| ")
	for _, v := range row {
		b.WriteString(Escape(v))
		b.WriteString(" | ")
	}
	b.WriteString("\n")
}

// RenderMetadata renders the document properties section, or "" when
// the workbook carries none.
func RenderMetadata(props models.Properties) string {
	if props.IsEmpty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Document Metadata\n")
	if props.Title != "" {
		fmt.Fprintf(&b, "**Title**: %s\n", props.Title)
	}
	if props.Subject != "" {
		fmt.Fprintf(&b, "**Subject**: %s\n", props.Subject)
	}
	if props.Author != "" {
		fmt.Fprintf(&b, "**Author**: %s\n", props.Author)
	}
	if props.Created != nil {
		fmt.Fprintf(&b, "**Created**: %s\n", props.Created.Format(TimestampLayout))
	}
	b.WriteString("\n")
	return b.String()
}
