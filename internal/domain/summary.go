package domain

import (
	"math"
	"strconv"
	"strings"
)

// Column names written by the simulation's summary writer.
const (
	ColumnPolicy       = "policy"
	ColumnRuns         = "runs"
	ColumnEnergyMean   = "energy_mean_kwh"
	ColumnEnergyStd    = "energy_std_kwh"
	ColumnCarbonMean   = "carbon_mean_kg"
	ColumnCarbonStd    = "carbon_std_kg"
	ColumnMakespanMean = "makespan_mean_s"
	ColumnMakespanStd  = "makespan_std_s"
)

// RequiredColumns are the columns every summary must carry.
var RequiredColumns = []string{
	ColumnPolicy,
	ColumnEnergyMean, ColumnEnergyStd,
	ColumnCarbonMean, ColumnCarbonStd,
	ColumnMakespanMean, ColumnMakespanStd,
}

// Record is one raw summary row keyed by header column name.
type Record map[string]string

// Policy returns the raw policy identifier of the record.
func (r Record) Policy() string {
	return r[ColumnPolicy]
}

// Float parses column as a finite float64. NaN and infinities are rejected.
// row is the 1-based data row used in error messages.
func (r Record) Float(row int, column string) (float64, error) {
	raw, ok := r[column]
	if !ok {
		return 0, &MissingColumnError{Column: column}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &MalformedFieldError{Row: row, Policy: r.Policy(), Column: column, Value: raw, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &MalformedFieldError{Row: row, Policy: r.Policy(), Column: column, Value: raw, Err: ErrNotFinite}
	}
	return v, nil
}

// SummaryRow holds the aggregated statistics of one policy.
type SummaryRow struct {
	Policy        string
	Runs          int
	EnergyMeanKWh float64
	EnergyStdKWh  float64
	CarbonMeanKg  float64
	CarbonStdKg   float64
	MakespanMeanS float64
	MakespanStdS  float64
}

// ParseSummaryRow converts a raw record into a SummaryRow.
// The runs column is optional; when present it must be an integer.
func ParseSummaryRow(row int, rec Record) (SummaryRow, error) {
	if _, ok := rec[ColumnPolicy]; !ok {
		return SummaryRow{}, &MissingColumnError{Column: ColumnPolicy}
	}

	s := SummaryRow{Policy: rec.Policy()}

	fields := []struct {
		column string
		dst    *float64
	}{
		{ColumnEnergyMean, &s.EnergyMeanKWh},
		{ColumnEnergyStd, &s.EnergyStdKWh},
		{ColumnCarbonMean, &s.CarbonMeanKg},
		{ColumnCarbonStd, &s.CarbonStdKg},
		{ColumnMakespanMean, &s.MakespanMeanS},
		{ColumnMakespanStd, &s.MakespanStdS},
	}
	for _, f := range fields {
		v, err := rec.Float(row, f.column)
		if err != nil {
			return SummaryRow{}, err
		}
		*f.dst = v
	}

	if raw, ok := rec[ColumnRuns]; ok && strings.TrimSpace(raw) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return SummaryRow{}, &MalformedFieldError{Row: row, Policy: s.Policy, Column: ColumnRuns, Value: raw, Err: err}
		}
		s.Runs = n
	}

	return s, nil
}

// ParseSummary converts all records, stopping at the first malformed row.
func ParseSummary(records []Record) ([]SummaryRow, error) {
	rows := make([]SummaryRow, 0, len(records))
	for i, rec := range records {
		s, err := ParseSummaryRow(i+1, rec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, s)
	}
	return rows, nil
}

// CheckColumns returns a MissingColumnError for the first of columns absent from rec.
// Every record read from one file carries the same header keys, so checking the first is enough.
func CheckColumns(rec Record, columns ...string) error {
	for _, col := range columns {
		if _, ok := rec[col]; !ok {
			return &MissingColumnError{Column: col}
		}
	}
	return nil
}

// CheckUniquePolicies returns a DuplicatePolicyError for the first repeated policy identifier.
func CheckUniquePolicies(records []Record) error {
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		id := rec.Policy()
		if first, ok := seen[id]; ok {
			return &DuplicatePolicyError{Policy: id, Rows: [2]int{first, i + 1}}
		}
		seen[id] = i + 1
	}
	return nil
}
