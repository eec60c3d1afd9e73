package contract

import (
	"strings"
	"testing"

	"milagros/domain/table"
)

// validTable builds a one-row table satisfying the births contract.
func validTable(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New()
	cols := map[string][]table.Value{
		"ano":                  {table.NewIntValue(2024)},
		"periodo_de_reporte":   {table.NewIntValue(1)},
		"sexo":                 {table.NewTextValue("F")},
		"fecha_nacimiento":     {table.NewTextValue("2024-03-01")},
		"edad_madre":           {table.NewIntValue(35)},
		"municipio_residencia": {table.NewTextValue("Bogotá")},
		"edad_padre":           {table.NewIntValue(40)},
	}
	for _, name := range Births().Required {
		if err := tbl.Append(name, cols[name]); err != nil {
			t.Fatalf("Append(%q) failed: %v", name, err)
		}
	}
	return tbl
}

func setCell(t *testing.T, tbl *table.Table, name string, v table.Value) {
	t.Helper()
	col, ok := tbl.Column(name)
	if !ok {
		t.Fatalf("column %q not found", name)
	}
	col.Values[0] = v
}

func TestValidateSatisfiedContract(t *testing.T) {
	if err := Births().Validate(validTable(t)); err != nil {
		t.Fatalf("expected contract to hold, got: %v", err)
	}
}

func TestValidateMissingColumnsAreNamed(t *testing.T) {
	tbl := table.New()
	if err := tbl.Append("ano", []table.Value{table.NewIntValue(2024)}); err != nil {
		t.Fatal(err)
	}
	if err := tbl.Append("edad_madre", []table.Value{table.NewIntValue(35)}); err != nil {
		t.Fatal(err)
	}

	err := Births().Validate(tbl)
	if err == nil {
		t.Fatal("expected violation for missing required columns")
	}
	for _, name := range []string{
		"periodo_de_reporte", "sexo", "fecha_nacimiento", "municipio_residencia", "edad_padre",
	} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("violation should name missing column %q: %v", name, err)
		}
	}
	// Present columns must not be reported missing.
	if strings.Contains(err.Error(), "missing required columns: ano") {
		t.Errorf("present column reported missing: %v", err)
	}
}

// TestValidateRangeBoundaries checks the inclusive bounds exactly: 10 and 60
// pass for the mother's age, 9 and 61 fail; 2000 and 2035 pass for the
// report year, 1999 and 2036 fail.
func TestValidateRangeBoundaries(t *testing.T) {
	tests := []struct {
		column string
		value  int64
		valid  bool
	}{
		{"edad_madre", 10, true},
		{"edad_madre", 60, true},
		{"edad_madre", 9, false},
		{"edad_madre", 61, false},
		{"ano", 2000, true},
		{"ano", 2035, true},
		{"ano", 1999, false},
		{"ano", 2036, false},
	}

	for _, test := range tests {
		tbl := validTable(t)
		setCell(t, tbl, test.column, table.NewIntValue(test.value))

		err := Births().Validate(tbl)
		if test.valid && err != nil {
			t.Errorf("%s=%d: expected valid, got %v", test.column, test.value, err)
		}
		if !test.valid {
			if err == nil {
				t.Errorf("%s=%d: expected range violation", test.column, test.value)
			} else if !strings.Contains(err.Error(), test.column) {
				t.Errorf("%s=%d: violation should name the column: %v", test.column, test.value, err)
			}
		}
	}
}

// TestValidateMissingValuesExemptFromRanges: a missing age is not an
// out-of-range age.
func TestValidateMissingValuesExemptFromRanges(t *testing.T) {
	tbl := validTable(t)
	setCell(t, tbl, "edad_madre", table.NewMissingValue())
	setCell(t, tbl, "ano", table.NewMissingValue())

	if err := Births().Validate(tbl); err != nil {
		t.Fatalf("missing values must never trigger a range violation: %v", err)
	}
}

// TestValidateRulesAreIndependent: range checks still run when other
// required columns are absent, and all violations are gathered.
func TestValidateRulesAreIndependent(t *testing.T) {
	tbl := table.New()
	if err := tbl.Append("ano", []table.Value{table.NewIntValue(1999)}); err != nil {
		t.Fatal(err)
	}
	if err := tbl.Append("edad_madre", []table.Value{table.NewIntValue(61)}); err != nil {
		t.Fatal(err)
	}

	err := Births().Validate(tbl)
	if err == nil {
		t.Fatal("expected violations")
	}
	v, ok := err.(*ViolationError)
	if !ok {
		t.Fatalf("expected *ViolationError, got %T", err)
	}
	if len(v.Violations) != 3 {
		t.Fatalf("expected missing-columns + two range violations, got %d: %v",
			len(v.Violations), v.Violations)
	}
}
