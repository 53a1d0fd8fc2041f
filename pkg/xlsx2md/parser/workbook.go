// Package parser reads spreadsheet packages and turns their sheets into grids.
package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

// ErrPartNotFound indicates a required part is missing from the package.
var ErrPartNotFound = errors.New("package part not found")

const (
	workbookPath      = "xl/workbook.xml"
	workbookRelsPath  = "xl/_rels/workbook.xml.rels"
	sharedStringsPath = "xl/sharedStrings.xml"
)

type xlsxWorkbook struct {
	WorkbookPr *xlsxWorkbookPr `xml:"workbookPr"`
	Sheets     []xlsxSheetRef  `xml:"sheets>sheet"`
}

type xlsxWorkbookPr struct {
	Date1904 string `xml:"date1904,attr"`
}

type xlsxSheetRef struct {
	Name string `xml:"name,attr"`
	// RID is the r:id attribute; sheetId is a different local name.
	RID string `xml:"id,attr"`
}

type xlsxRelationships struct {
	Relationships []xlsxRelationship `xml:"Relationship"`
}

type xlsxRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type xlsxSST struct {
	Items []xlsxStringItem `xml:"si"`
}

type xlsxStringItem struct {
	T *string   `xml:"t"`
	R []xlsxRun `xml:"r"`
}

type xlsxRun struct {
	T string `xml:"t"`
}

type xlsxWorksheet struct {
	SheetData *xlsxSheetData `xml:"sheetData"`
}

type xlsxSheetData struct {
	Rows []xlsxRow `xml:"row"`
}

type xlsxRow struct {
	R     string     `xml:"r,attr"`
	Cells []xlsxCell `xml:"c"`
}

type xlsxCell struct {
	R  string          `xml:"r,attr"`
	T  string          `xml:"t,attr"`
	V  *string         `xml:"v"`
	IS *xlsxStringItem `xml:"is"`
}

// ReadWorkbook parses the sheets and shared strings of an .xlsx package.
// Sheets without a worksheet relationship are skipped; a relationship that
// points at a missing part is an error.
func ReadWorkbook(data []byte, logger logrus.FieldLogger) (*models.Workbook, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	workbookXML, err := readZipFile(r, workbookPath)
	if err != nil {
		return nil, err
	}
	var wbDoc xlsxWorkbook
	if err := xml.Unmarshal(workbookXML, &wbDoc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", workbookPath, err)
	}

	rels, err := readRelationships(r, workbookRelsPath)
	if err != nil {
		return nil, err
	}

	wb := &models.Workbook{
		Sheets:   make([]models.Sheet, 0, len(wbDoc.Sheets)),
		Date1904: parseDate1904(wbDoc.WorkbookPr),
	}

	wb.SharedStrings, err = readSharedStrings(r, sharedStringsPartPath(rels))
	if err != nil {
		return nil, err
	}

	for _, ref := range wbDoc.Sheets {
		log := logger.WithField("sheet", ref.Name)
		if ref.RID == "" {
			log.Warn("skipping sheet without relationship id")
			continue
		}
		rel, ok := rels[ref.RID]
		if !ok || !strings.HasSuffix(rel.Type, "/worksheet") {
			log.WithField("rid", ref.RID).Warn("skipping sheet without worksheet part")
			continue
		}

		partPath := resolvePartPath("xl", rel.Target)
		rows, err := readWorksheet(r, partPath)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", ref.Name, err)
		}
		wb.Sheets = append(wb.Sheets, models.Sheet{Name: ref.Name, Rows: rows})
	}

	return wb, nil
}

func parseDate1904(pr *xlsxWorkbookPr) bool {
	if pr == nil || pr.Date1904 == "" {
		return false
	}
	v, err := strconv.ParseBool(pr.Date1904)
	return err == nil && v
}

// readRelationships returns the relationships of a part keyed by id.
// A missing rels part yields an empty map.
func readRelationships(r *zip.Reader, name string) (map[string]xlsxRelationship, error) {
	result := make(map[string]xlsxRelationship)
	data, err := readZipFile(r, name)
	if errors.Is(err, ErrPartNotFound) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	var doc xlsxRelationships
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	for _, rel := range doc.Relationships {
		result[rel.ID] = rel
	}
	return result, nil
}

func sharedStringsPartPath(rels map[string]xlsxRelationship) string {
	for _, rel := range rels {
		if strings.HasSuffix(rel.Type, "/sharedStrings") {
			return resolvePartPath("xl", rel.Target)
		}
	}
	return sharedStringsPath
}

// readSharedStrings returns nil when the package has no shared string part.
func readSharedStrings(r *zip.Reader, name string) (*models.SharedStringTable, error) {
	data, err := readZipFile(r, name)
	if errors.Is(err, ErrPartNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc xlsxSST
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	table := &models.SharedStringTable{Items: make([]models.SharedStringItem, len(doc.Items))}
	for i, si := range doc.Items {
		table.Items[i] = toStringItem(si)
	}
	return table, nil
}

func toStringItem(si xlsxStringItem) models.SharedStringItem {
	if si.T != nil {
		return models.SharedStringItem{Text: si.T, InnerText: *si.T}
	}
	var inner strings.Builder
	for _, run := range si.R {
		inner.WriteString(run.T)
	}
	return models.SharedStringItem{InnerText: inner.String()}
}

func readWorksheet(r *zip.Reader, name string) ([]models.Row, error) {
	data, err := readZipFile(r, name)
	if err != nil {
		return nil, err
	}

	var doc xlsxWorksheet
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if doc.SheetData == nil {
		return nil, nil
	}

	rows := make([]models.Row, 0, len(doc.SheetData.Rows))
	for i, xr := range doc.SheetData.Rows {
		index := i + 1
		if n, err := strconv.Atoi(xr.R); err == nil && n > 0 {
			index = n
		}
		row := models.Row{Index: index, Cells: make([]models.Cell, 0, len(xr.Cells))}
		for _, xc := range xr.Cells {
			row.Cells = append(row.Cells, toCell(xc))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func toCell(xc xlsxCell) models.Cell {
	cell := models.Cell{
		Ref:   xc.R,
		Type:  models.ParseCellType(xc.T),
		Tag:   xc.T,
		Value: xc.V,
	}
	if cell.Value == nil && xc.IS != nil {
		text := toStringItem(*xc.IS).String()
		cell.Value = &text
	}
	return cell
}

// Helper functions

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPartNotFound, name)
}

// resolvePartPath resolves a relationship target against the directory of
// the part that owns the relationship.
func resolvePartPath(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}
