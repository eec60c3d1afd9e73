// Package parquet persists a transformed table as a columnar parquet file.
package parquet

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"milagros/domain/table"
	"milagros/internal/errors"

	"github.com/parquet-go/parquet-go"
)

// Writer writes tables as parquet files. Integer columns become optional
// INT64, text columns optional UTF8 byte arrays; missing cells become nulls.
// The row index is not part of the persisted schema.
type Writer struct{}

// NewWriter creates a parquet writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write persists t at path as a complete replacement. The file is staged as
// a temporary sibling and renamed into place, so a failed run never leaves a
// half-written file at path.
func (w *Writer) Write(_ context.Context, t *table.Table, path string) error {
	schema := buildSchema(t, path)

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file for %s", path)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name()) // no-op once renamed
	}()

	pw := parquet.NewGenericWriter[map[string]any](tmp, schema)
	if _, err := pw.Write(buildRows(t)); err != nil {
		return errors.Wrapf(err, "failed to write parquet rows to %s", path)
	}
	if err := pw.Close(); err != nil {
		return errors.Wrapf(err, "failed to finalize parquet file %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close parquet file %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "failed to move parquet file into place at %s", path)
	}
	return nil
}

func buildSchema(t *table.Table, path string) *parquet.Schema {
	group := parquet.Group{}
	t.Columns(func(c *table.Column) {
		if isIntegerColumn(c) {
			group[c.Name] = parquet.Optional(parquet.Int(64))
		} else {
			group[c.Name] = parquet.Optional(parquet.String())
		}
	})
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return parquet.NewSchema(name, group)
}

// isIntegerColumn inspects the first non-missing cell; after type hardening
// every column is homogeneous (integer-or-missing or text-or-missing).
func isIntegerColumn(c *table.Column) bool {
	for _, v := range c.Values {
		switch v.Kind {
		case table.KindInteger:
			return true
		case table.KindText:
			return false
		}
	}
	return false
}

func buildRows(t *table.Table) []map[string]any {
	rows := make([]map[string]any, t.NumRows())
	for i := range rows {
		rows[i] = make(map[string]any, t.NumCols())
	}
	t.Columns(func(c *table.Column) {
		for i, v := range c.Values {
			if n, ok := v.Int(); ok {
				rows[i][c.Name] = n
			} else if s, ok := v.Text(); ok {
				rows[i][c.Name] = s
			}
			// missing cells stay absent from the row map and persist as null
		}
	})
	return rows
}
