package models

// Sheet represents a single worksheet as read from the package.
type Sheet struct {
	// Name is the sheet name, used as the section title.
	Name string
	// Rows contains the stored rows in storage order.
	Rows []Row
}

// Grid is the rectangular view of a sheet.
// Every row holds exactly Width resolved strings.
type Grid struct {
	// Width is the number of logical columns.
	Width int
	// Rows holds the resolved cell text, header row first.
	Rows [][]string
}

// IsEmpty reports whether the grid came from a sheet without rows.
func (g *Grid) IsEmpty() bool {
	return g == nil || len(g.Rows) == 0
}
