package models

import "time"

// SharedStringItem is one entry of the shared string table.
type SharedStringItem struct {
	// Text is the direct <t> child; nil for rich text items.
	Text *string
	// InnerText is the concatenated text of all rich text runs.
	InnerText string
}

// String returns Text, falling back to InnerText.
func (si SharedStringItem) String() string {
	if si.Text != nil {
		return *si.Text
	}
	return si.InnerText
}

// SharedStringTable is the workbook-wide deduplicated string list.
type SharedStringTable struct {
	Items []SharedStringItem
}

// Len returns the number of items; a nil table has none.
func (t *SharedStringTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Items)
}

// Lookup returns the item at offset, or false when the table is nil
// or the offset is out of range.
func (t *SharedStringTable) Lookup(offset int) (SharedStringItem, bool) {
	if t == nil || offset < 0 || offset >= len(t.Items) {
		return SharedStringItem{}, false
	}
	return t.Items[offset], true
}

// Properties holds the document-level core properties.
type Properties struct {
	Title   string
	Subject string
	Author  string
	Created *time.Time
}

// IsEmpty reports whether no property is present.
func (p Properties) IsEmpty() bool {
	return p.Title == "" && p.Subject == "" && p.Author == "" && p.Created == nil
}

// Workbook represents a parsed spreadsheet document.
type Workbook struct {
	// BookName is the source file name (no path).
	BookName string
	// Sheets lists the worksheets in workbook order.
	Sheets []Sheet
	// SharedStrings is nil when the package has no shared string part.
	SharedStrings *SharedStringTable
	// Date1904 selects the 1904 date system for serial dates.
	Date1904 bool
	// Properties are the core document properties.
	Properties Properties
}
