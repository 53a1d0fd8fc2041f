// Package models defines data structures for spreadsheet to Markdown conversion.
package models

// CellType is the decoded form of a cell's "t" attribute.
type CellType int

const (
	// CellTypeUntyped is a cell without a type attribute.
	CellTypeUntyped CellType = iota
	// CellTypeBoolean stores "1" or "0".
	CellTypeBoolean
	// CellTypeDate stores a serial day count.
	CellTypeDate
	// CellTypeSharedString stores an offset into the shared string table.
	CellTypeSharedString
	// CellTypeNumber stores a numeric literal.
	CellTypeNumber
	// CellTypeInlineString stores its text in the cell itself (str and inlineStr).
	CellTypeInlineString
	// CellTypeOther covers error cells and unknown tags.
	CellTypeOther
)

// ParseCellType maps an OOXML cell type attribute to a CellType.
func ParseCellType(tag string) CellType {
	switch tag {
	case "":
		return CellTypeUntyped
	case "b":
		return CellTypeBoolean
	case "d":
		return CellTypeDate
	case "s":
		return CellTypeSharedString
	case "n":
		return CellTypeNumber
	case "str", "inlineStr":
		return CellTypeInlineString
	default:
		return CellTypeOther
	}
}

func (t CellType) String() string {
	switch t {
	case CellTypeUntyped:
		return "untyped"
	case CellTypeBoolean:
		return "boolean"
	case CellTypeDate:
		return "date"
	case CellTypeSharedString:
		return "shared-string"
	case CellTypeNumber:
		return "number"
	case CellTypeInlineString:
		return "inline-string"
	default:
		return "other"
	}
}

// Cell represents a single stored cell.
type Cell struct {
	// Ref is the cell reference (e.g. "B3"); empty when the source omits it.
	Ref string
	// Type is the decoded type tag.
	Type CellType
	// Tag is the raw type attribute as stored in the sheet. Type is derived
	// from it; Tag keeps the original spelling of Other cells for callers.
	Tag string
	// Value is the raw payload (nil if the cell has no value).
	Value *string
}

// Row represents a sparse row of stored cells.
type Row struct {
	// Index is the stored row number (1-based). Rasterizing ignores it:
	// rows are laid out in storage order and gaps are not filled.
	Index int
	// Cells holds the stored cells in storage order.
	Cells []Cell
}
