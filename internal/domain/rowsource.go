package domain

import "context"

// Row is one spreadsheet row keyed by column header. A missing cell reads as
// the empty string; no field is required beyond presence-or-empty.
type Row map[string]string

// Get returns the cell under the given header, or "" when absent.
func (r Row) Get(header string) string {
	return r[header]
}

// RowSource yields header-keyed rows from a tabular export (or a test
// double). Implementations treat an unreadable source as a fatal error.
type RowSource interface {
	Rows(ctx context.Context) ([]Row, error)
}
