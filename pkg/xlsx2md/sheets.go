package xlsx2md

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/parser"
)

// WriteSheetFiles writes each sheet section of the workbook at inputPath
// to its own <dir>/<sheet>.md file. It returns the written paths in
// workbook order.
func WriteSheetFiles(inputPath, dir string, opts Options) ([]string, error) {
	wb, err := Load(inputPath, opts)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	logger := opts.logger().WithField("book", wb.BookName)
	resolver := parser.NewCellResolver(wb)

	// Render everything first so a failing sheet leaves no files behind.
	sections := make([]string, len(wb.Sheets))
	for i, sheet := range wb.Sheets {
		section, err := renderSheet(sheet, resolver, logger)
		if err != nil {
			return nil, err
		}
		sections[i] = section
	}

	paths := make([]string, 0, len(wb.Sheets))
	for i, sheet := range wb.Sheets {
		filename := filepath.Join(dir, sheetFileName(sheet.Name)+".md")
		if err := os.WriteFile(filename, []byte(sections[i]), 0644); err != nil {
			return nil, NewConversionError(sheet.Name, ComponentOutput, err)
		}
		paths = append(paths, filename)
	}
	return paths, nil
}

// sheetFileName replaces path separators that may appear in sheet names.
func sheetFileName(name string) string {
	return strings.NewReplacer("/", "_", `\`, "_").Replace(name)
}
