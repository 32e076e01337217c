package ports

import (
	"io"

	"waypoint/domain/roster"
)

// RosterReader parses an uploaded spreadsheet stream into a roster table.
// Implementations pick the format from the filename.
type RosterReader interface {
	ReadRoster(filename string, r io.Reader) (*roster.Table, error)
}
