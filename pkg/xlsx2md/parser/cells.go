package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
	"github.com/xuri/excelize/v2"
)

// DateLayout is the output layout for date cells.
const DateLayout = "2006-01-02"

// Serial dates must lie strictly between these bounds (0100-01-01 to 9999-12-31).
const (
	minDateSerial = -657435.0
	maxDateSerial = 2958466.0
)

// ErrDateOutOfRange indicates a serial date that is not finite or outside
// the supported range.
var ErrDateOutOfRange = errors.New("date serial out of range")

var (
	dateEpoch1900 = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	dateEpoch1904 = time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)
)

// CellValueError reports a cell payload that cannot be decoded for its type.
type CellValueError struct {
	Ref   string
	Type  models.CellType
	Value string
	Err   error
}

func (e *CellValueError) Error() string {
	return fmt.Sprintf("cell %s: invalid %s value %q: %v", e.Ref, e.Type, e.Value, e.Err)
}

func (e *CellValueError) Unwrap() error {
	return e.Err
}

// Resolver turns a stored cell into its display text.
type Resolver interface {
	Resolve(cell *models.Cell) (string, error)
}

// CellResolver resolves cells against a workbook's shared strings and date system.
type CellResolver struct {
	// SharedStrings may be nil.
	SharedStrings *models.SharedStringTable
	// Date1904 selects the 1904 date system.
	Date1904 bool
}

// NewCellResolver returns a resolver bound to the workbook.
func NewCellResolver(wb *models.Workbook) CellResolver {
	return CellResolver{
		SharedStrings: wb.SharedStrings,
		Date1904:      wb.Date1904,
	}
}

// ResolveCell resolves a cell using the 1900 date system.
func ResolveCell(cell *models.Cell, sst *models.SharedStringTable) (string, error) {
	return CellResolver{SharedStrings: sst}.Resolve(cell)
}

// Resolve returns the display text of cell. A nil cell yields "".
// Only malformed date payloads produce an error; missing or out of range
// shared strings resolve to "".
func (r CellResolver) Resolve(cell *models.Cell) (string, error) {
	if cell == nil {
		return "", nil
	}
	if cell.Value == nil {
		return "", nil
	}
	value := *cell.Value

	switch cell.Type {
	case models.CellTypeUntyped:
		return value, nil
	case models.CellTypeBoolean:
		if value == "1" {
			return "True", nil
		}
		return "False", nil
	case models.CellTypeDate:
		return r.resolveDate(cell, value)
	case models.CellTypeSharedString:
		return r.resolveSharedString(value), nil
	case models.CellTypeNumber, models.CellTypeInlineString, models.CellTypeOther:
		return value, nil
	default:
		return value, nil
	}
}

func (r CellResolver) resolveDate(cell *models.Cell, value string) (string, error) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return "", &CellValueError{Ref: cell.Ref, Type: cell.Type, Value: value, Err: err}
	}
	// NaN fails both comparisons.
	if !(serial > minDateSerial && serial < maxDateSerial) {
		return "", &CellValueError{Ref: cell.Ref, Type: cell.Type, Value: value, Err: ErrDateOutOfRange}
	}

	if serial < 0 {
		// Whole days count back from the epoch; the fraction is a time of day.
		epoch := dateEpoch1900
		if r.Date1904 {
			epoch = dateEpoch1904
		}
		return epoch.AddDate(0, 0, int(serial)).Format(DateLayout), nil
	}

	t, err := excelize.ExcelDateToTime(serial, r.Date1904)
	if err != nil {
		return "", &CellValueError{Ref: cell.Ref, Type: cell.Type, Value: value, Err: err}
	}
	return t.Format(DateLayout), nil
}

func (r CellResolver) resolveSharedString(value string) string {
	offset, err := strconv.Atoi(value)
	if err != nil {
		return ""
	}
	item, ok := r.SharedStrings.Lookup(offset)
	if !ok {
		return ""
	}
	return item.String()
}
