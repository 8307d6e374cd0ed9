package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"devfestsite/internal/domain"
)

// Reader is a domain.RowSource over the first worksheet of an xlsx export.
// Row one is the header row; data rows whose every cell is blank after
// trimming are skipped. Cells under a blank header are dropped.
type Reader struct {
	path string
}

// NewReader returns a RowSource for the workbook at path. The file is opened
// lazily on each Rows call; a missing or unparseable file surfaces as an
// error there.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Rows reads the worksheet into header-keyed row maps.
func (r *Reader) Rows(ctx context.Context) ([]domain.Row, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet %s: %w", r.path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no worksheets", r.path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var out []domain.Row
	for _, cells := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := make(domain.Row, len(headers))
		empty := true
		for i, cell := range cells {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			row[headers[i]] = cell
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out, nil
}
