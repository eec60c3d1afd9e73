// Package contract defines the static data contract a silver table must
// satisfy before it is considered trustworthy: the fixed set of required
// canonical columns and the value-range sanity rules.
package contract

import (
	"fmt"
	"strings"

	"milagros/domain/table"
)

// RangeRule bounds the non-missing values of one integer column, inclusive
// on both ends. Missing values are always exempt.
type RangeRule struct {
	Column string
	Min    int64
	Max    int64
}

// Contract is the full set of rules checked against a transformed table.
type Contract struct {
	Required []string
	Ranges   []RangeRule
}

// Births returns the contract for the birth-records silver table.
func Births() Contract {
	return Contract{
		Required: []string{
			"ano",
			"periodo_de_reporte",
			"sexo",
			"fecha_nacimiento",
			"edad_madre",
			"municipio_residencia",
			"edad_padre",
		},
		Ranges: []RangeRule{
			{Column: "edad_madre", Min: 10, Max: 60},
			{Column: "ano", Min: 2000, Max: 2035},
		},
	}
}

// ViolationError aggregates every contract rule the table broke. Each rule
// is checked independently: a missing required column does not suppress the
// range checks on columns that are present.
type ViolationError struct {
	Violations []string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("contract violated: %s", strings.Join(e.Violations, "; "))
}

// Validate checks required-column presence and every range rule, returning a
// *ViolationError naming all broken rules, or nil when the table satisfies
// the contract. No partial acceptance: one violation fails the whole run.
func (c Contract) Validate(t *table.Table) error {
	var violations []string

	var missing []string
	for _, name := range c.Required {
		if !t.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		violations = append(violations,
			fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
	}

	for _, r := range c.Ranges {
		if msg := checkRange(t, r); msg != "" {
			violations = append(violations, msg)
		}
	}

	if len(violations) > 0 {
		return &ViolationError{Violations: violations}
	}
	return nil
}

func checkRange(t *table.Table, r RangeRule) string {
	col, ok := t.Column(r.Column)
	if !ok {
		return "" // absence is the required-column rule's finding
	}
	for row, v := range col.Values {
		n, isInt := v.Int()
		if !isInt {
			continue // missing (or non-integer) values never break a range
		}
		if n < r.Min || n > r.Max {
			return fmt.Sprintf("%s outside expected range (%d-%d): value %d at row %d",
				r.Column, r.Min, r.Max, n, row)
		}
	}
	return ""
}
