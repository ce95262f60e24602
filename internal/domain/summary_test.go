package domain

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func validRecord(policy string) Record {
	return Record{
		ColumnPolicy:       policy,
		ColumnRuns:         "10",
		ColumnEnergyMean:   "10.2",
		ColumnEnergyStd:    "0.5",
		ColumnCarbonMean:   "4.1",
		ColumnCarbonStd:    "0.2",
		ColumnMakespanMean: "1200",
		ColumnMakespanStd:  "35.5",
	}
}

func TestParseSummaryRow(t *testing.T) {
	row, err := ParseSummaryRow(1, validRecord("FIRST_FIT"))
	if err != nil {
		t.Fatalf("ParseSummaryRow: %v", err)
	}

	want := SummaryRow{
		Policy:        "FIRST_FIT",
		Runs:          10,
		EnergyMeanKWh: 10.2,
		EnergyStdKWh:  0.5,
		CarbonMeanKg:  4.1,
		CarbonStdKg:   0.2,
		MakespanMeanS: 1200,
		MakespanStdS:  35.5,
	}
	if row != want {
		t.Errorf("ParseSummaryRow = %+v, want %+v", row, want)
	}
}

func TestParseSummaryRow_RunsOptional(t *testing.T) {
	rec := validRecord("CIAVMP")
	delete(rec, ColumnRuns)

	row, err := ParseSummaryRow(1, rec)
	if err != nil {
		t.Fatalf("ParseSummaryRow: %v", err)
	}
	if row.Runs != 0 {
		t.Errorf("Runs = %d, want 0", row.Runs)
	}
}

func TestParseSummaryRow_Malformed(t *testing.T) {
	rec := validRecord("ENERGY_AWARE")
	rec[ColumnEnergyMean] = "not_a_number"

	_, err := ParseSummaryRow(2, rec)

	var mfe *MalformedFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MalformedFieldError, got %v", err)
	}
	if mfe.Row != 2 || mfe.Column != ColumnEnergyMean || mfe.Value != "not_a_number" {
		t.Errorf("unexpected error fields: %+v", mfe)
	}
	for _, part := range []string{"row 2", "ENERGY_AWARE", ColumnEnergyMean, "not_a_number"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("error %q does not mention %q", err.Error(), part)
		}
	}
}

func TestParseSummaryRow_MissingColumn(t *testing.T) {
	rec := validRecord("FIRST_FIT")
	delete(rec, ColumnCarbonStd)

	_, err := ParseSummaryRow(1, rec)

	var mce *MissingColumnError
	if !errors.As(err, &mce) || mce.Column != ColumnCarbonStd {
		t.Fatalf("expected MissingColumnError for %s, got %v", ColumnCarbonStd, err)
	}
}

func TestRecordFloat_TrimsWhitespace(t *testing.T) {
	rec := Record{"x": " 3.25 "}
	v, err := rec.Float(1, "x")
	if err != nil {
		t.Fatalf("Float: %v", err)
	}
	if math.Abs(v-3.25) > 1e-12 {
		t.Errorf("Float = %v, want 3.25", v)
	}
}

func TestRecordFloat_RejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "infinity"} {
		t.Run(raw, func(t *testing.T) {
			rec := Record{ColumnPolicy: "CIAVMP", ColumnMakespanMean: raw}

			_, err := rec.Float(3, ColumnMakespanMean)

			var mfe *MalformedFieldError
			if !errors.As(err, &mfe) {
				t.Fatalf("expected MalformedFieldError, got %v", err)
			}
			if !errors.Is(err, ErrNotFinite) {
				t.Errorf("expected ErrNotFinite, got %v", err)
			}
			if mfe.Row != 3 || mfe.Column != ColumnMakespanMean || mfe.Value != raw {
				t.Errorf("unexpected error fields: %+v", mfe)
			}
			if !strings.Contains(err.Error(), "non-finite") {
				t.Errorf("error %q does not say the value is non-finite", err.Error())
			}
		})
	}
}

func TestCheckColumns(t *testing.T) {
	rec := validRecord("FIRST_FIT")
	if err := CheckColumns(rec, RequiredColumns...); err != nil {
		t.Fatalf("complete record rejected: %v", err)
	}

	delete(rec, ColumnMakespanStd)
	err := CheckColumns(rec, RequiredColumns...)

	var mce *MissingColumnError
	if !errors.As(err, &mce) || mce.Column != ColumnMakespanStd {
		t.Fatalf("expected MissingColumnError for %s, got %v", ColumnMakespanStd, err)
	}
}

func TestCheckUniquePolicies(t *testing.T) {
	records := []Record{validRecord("FIRST_FIT"), validRecord("CIAVMP"), validRecord("FIRST_FIT")}

	err := CheckUniquePolicies(records)

	var dpe *DuplicatePolicyError
	if !errors.As(err, &dpe) {
		t.Fatalf("expected DuplicatePolicyError, got %v", err)
	}
	if dpe.Policy != "FIRST_FIT" || dpe.Rows != [2]int{1, 3} {
		t.Errorf("unexpected duplicate: %+v", dpe)
	}

	if err := CheckUniquePolicies(records[:2]); err != nil {
		t.Errorf("unique policies reported as duplicate: %v", err)
	}
}

func TestMetricSpecSeries(t *testing.T) {
	records := []Record{validRecord("FIRST_FIT"), validRecord("ENERGY_AWARE")}
	records[1][ColumnCarbonMean] = "3.9"

	carbon := DefaultMetrics()[1]
	means, stds, err := carbon.Series(records)
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if len(means) != 2 || means[0] != 4.1 || means[1] != 3.9 {
		t.Errorf("means = %v", means)
	}
	if len(stds) != 2 || stds[0] != 0.2 || stds[1] != 0.2 {
		t.Errorf("stds = %v", stds)
	}
}

func TestMetricSpecOutputPath(t *testing.T) {
	got := DefaultMetrics()[0].OutputPath("results", "png")
	if want := filepath.Join("results", "energy_comparison.png"); got != want {
		t.Errorf("OutputPath = %q", got)
	}
}
