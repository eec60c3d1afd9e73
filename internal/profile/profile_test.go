package profile

import (
	"strings"
	"testing"

	"milagros/domain/table"
)

func TestSummarize(t *testing.T) {
	tbl := table.New()
	if err := tbl.Append("edad_madre", []table.Value{
		table.NewIntValue(20),
		table.NewIntValue(40),
		table.NewMissingValue(),
	}); err != nil {
		t.Fatal(err)
	}
	if err := tbl.Append("sexo", []table.Value{
		table.NewTextValue("F"),
		table.NewTextValue("M"),
		table.NewTextValue("F"),
	}); err != nil {
		t.Fatal(err)
	}

	summaries := Summarize(tbl)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	age := summaries[0]
	if age.Name != "edad_madre" || age.Kind != table.KindInteger {
		t.Fatalf("unexpected first summary: %+v", age)
	}
	if age.NonMissing != 2 || age.Missing != 1 {
		t.Errorf("edad_madre counts: %+v", age)
	}
	if age.Min == nil || *age.Min != 20 {
		t.Errorf("edad_madre min: %+v", age.Min)
	}
	if age.Max == nil || *age.Max != 40 {
		t.Errorf("edad_madre max: %+v", age.Max)
	}
	if age.Mean == nil || *age.Mean != 30 {
		t.Errorf("edad_madre mean: %+v", age.Mean)
	}

	sexo := summaries[1]
	if sexo.Kind != table.KindText || sexo.Distinct != 2 {
		t.Errorf("sexo summary: %+v", sexo)
	}
	if !strings.Contains(sexo.String(), "distinct=2") {
		t.Errorf("sexo log line: %q", sexo.String())
	}
}
