// Package ports defines the interfaces the transformation stage consumes,
// keeping spreadsheet and columnar I/O behind stable seams.
package ports

import (
	"context"

	"milagros/domain/table"
)

// TableReader loads one raw tabular file into the in-memory table, preserving
// row order and raw header names.
type TableReader interface {
	Read(ctx context.Context, path string) (*table.Table, error)
}

// TableWriter persists a fully-transformed table to a columnar file at path.
// Implementations must never leave a half-written file at path.
type TableWriter interface {
	Write(ctx context.Context, t *table.Table, path string) error
}
