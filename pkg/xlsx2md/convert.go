package xlsx2md

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/output"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads and parses the workbook at path, including its properties.
func Load(path string, opts Options) (*models.Workbook, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	return load(data, filepath.Base(path), opts.logger())
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return data, err
}

func load(data []byte, bookName string, logger logrus.FieldLogger) (*models.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	defer f.Close()

	props, err := parser.ExtractProperties(f, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	wb, err := parser.ReadWorkbook(data, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	wb.BookName = bookName
	wb.Properties = props
	return wb, nil
}

// Convert converts the workbook at path into a Markdown document.
func Convert(path string, opts Options) (string, error) {
	data, err := readInput(path)
	if err != nil {
		return "", err
	}
	return ConvertBytes(data, filepath.Base(path), opts)
}

// ConvertBytes converts an in-memory .xlsx package. sourceName is shown
// in the document header.
func ConvertBytes(data []byte, sourceName string, opts Options) (string, error) {
	logger := opts.logger()
	wb, err := load(data, sourceName, logger)
	if err != nil {
		return "", err
	}
	return Render(wb, opts)
}

// Render renders an already parsed workbook.
func Render(wb *models.Workbook, opts Options) (string, error) {
	logger := opts.logger().WithField("book", wb.BookName)
	logger.WithFields(logrus.Fields{
		"sheets":         len(wb.Sheets),
		"shared_strings": wb.SharedStrings.Len(),
	}).Debug("rendering workbook")

	var b strings.Builder
	b.WriteString(output.RenderHeader(wb.BookName, opts.now()))

	resolver := parser.NewCellResolver(wb)
	for _, sheet := range wb.Sheets {
		section, err := renderSheet(sheet, resolver, logger)
		if err != nil {
			return "", err
		}
		b.WriteString(section)
	}

	if opts.ShouldIncludeMetadata() {
		b.WriteString(output.RenderMetadata(wb.Properties))
	}
	return b.String(), nil
}

func renderSheet(sheet models.Sheet, resolver parser.Resolver, logger logrus.FieldLogger) (string, error) {
	grid, err := parser.Rasterize(sheet.Rows, resolver)
	if err != nil {
		return "", NewConversionError(sheet.Name, ComponentCells, err)
	}
	logger.WithFields(logrus.Fields{
		"sheet": sheet.Name,
		"rows":  len(grid.Rows),
		"width": grid.Width,
	}).Debug("rasterized sheet")
	return output.RenderSheet(sheet.Name, grid), nil
}

// ConvertFile converts inputPath and writes the result to outputPath.
// The output file is written only after the whole document has rendered.
func ConvertFile(inputPath, outputPath string, opts Options) error {
	doc, err := Convert(inputPath, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
