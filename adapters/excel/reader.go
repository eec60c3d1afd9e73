// Package excel reads the raw birth-records workbook into the domain table.
package excel

import (
	"context"
	"fmt"
	"os"

	"milagros/domain/table"
	"milagros/internal/errors"

	"github.com/xuri/excelize/v2"
)

// SheetName is the one named sheet the raw workbook carries.
const SheetName = "Nacimientos"

// SheetReader reads a single named sheet from an xlsx workbook.
type SheetReader struct {
	sheet string
}

// NewSheetReader creates a reader for the given sheet name.
func NewSheetReader(sheet string) *SheetReader {
	return &SheetReader{sheet: sheet}
}

// Read loads the sheet at path into a table: the first row supplies the raw
// header names (preserved verbatim), every following row becomes one data
// row of text cells. Cells a row does not reach load as missing. Returns
// SOURCE_NOT_FOUND when the file is absent; this stage is a strict consumer
// and never re-triggers landing.
func (r *SheetReader) Read(_ context.Context, path string) (*table.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.SourceNotFound(path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open workbook %s", path)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", r.sheet)
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.CodeIOError, "sheet "+r.sheet+" has no header row")
	}

	headers := rows[0]
	dataRows := rows[1:]

	// excelize trims trailing empty cells from each row, so an unlabeled
	// header over populated cells would otherwise vanish; the table is as
	// wide as the widest row.
	width := len(headers)
	for _, row := range dataRows {
		if len(row) > width {
			width = len(row)
		}
	}

	t := table.New()
	for j := 0; j < width; j++ {
		header := ""
		if j < len(headers) {
			header = headers[j]
		}
		if header == "" {
			// Unlabeled columns get the spreadsheet placeholder name, so
			// schema normalization can recognize and drop them.
			header = fmt.Sprintf("Unnamed: %d", j)
		}
		values := make([]table.Value, len(dataRows))
		for i, row := range dataRows {
			if j < len(row) {
				values[i] = table.NewTextValue(row[j])
			} else {
				values[i] = table.NewMissingValue()
			}
		}
		if err := t.Append(header, values); err != nil {
			return nil, errors.Wrapf(err, "sheet %q has a repeated header", r.sheet)
		}
	}
	return t, nil
}
