package table

import (
	"math"
	"strconv"
	"strings"
)

// TrimText trims leading/trailing whitespace from every non-missing text
// cell in every column. Integer and missing cells are untouched.
func TrimText(t *Table) {
	t.Columns(func(c *Column) {
		for i, v := range c.Values {
			if s, ok := v.Text(); ok {
				c.Values[i] = NewTextValue(strings.TrimSpace(s))
			}
		}
	})
}

// BlankToMissing converts every empty-text cell, dataset-wide, into the
// missing marker. Run after TrimText so whitespace-only text also becomes
// missing.
func BlankToMissing(t *Table) {
	t.Columns(func(c *Column) {
		for i, v := range c.Values {
			if s, ok := v.Text(); ok && s == "" {
				c.Values[i] = NewMissingValue()
			}
		}
	})
}

// CoerceInt converts each named column to nullable integer: non-missing
// cells that parse as integers become integer values, everything else
// becomes missing. Coercion, not validation: malformed numeric text is
// tolerated here and only caught later by range checks. Absent columns are
// silently skipped.
func CoerceInt(t *Table, names ...string) {
	for _, name := range names {
		c, ok := t.Column(name)
		if !ok {
			continue
		}
		for i, v := range c.Values {
			c.Values[i] = coerceIntValue(v)
		}
	}
}

func coerceIntValue(v Value) Value {
	switch v.Kind {
	case KindInteger, KindMissing:
		return v
	}
	s, _ := v.Text()
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewIntValue(n)
	}
	// Spreadsheet numeric cells often surface as "35.0"; accept integral
	// floats, reject everything else.
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return NewIntValue(int64(f))
	}
	return NewMissingValue()
}

// EnsureText pins each named column to nullable text: integer cells are
// rendered back to their decimal text form, missing stays missing. Absent
// columns are silently skipped.
func EnsureText(t *Table, names ...string) {
	for _, name := range names {
		c, ok := t.Column(name)
		if !ok {
			continue
		}
		for i, v := range c.Values {
			if n, ok := v.Int(); ok {
				c.Values[i] = NewTextValue(strconv.FormatInt(n, 10))
			}
		}
	}
}
