package domain

import (
	"fmt"
	"path/filepath"
)

// MetricSpec describes one comparison chart: which columns to plot and how to present them.
type MetricSpec struct {
	Name       string
	MeanColumn string
	StdColumn  string
	YLabel     string
	Title      string
	FileName   string
	Color      string
}

// DefaultMetrics are the three charts produced from a policy summary.
func DefaultMetrics() []MetricSpec {
	return []MetricSpec{
		{
			Name:       "energy",
			MeanColumn: ColumnEnergyMean,
			StdColumn:  ColumnEnergyStd,
			YLabel:     "Energy (kWh)",
			Title:      "Energy Consumption Comparison",
			FileName:   "energy_comparison",
			Color:      "#4E79A7",
		},
		{
			Name:       "carbon",
			MeanColumn: ColumnCarbonMean,
			StdColumn:  ColumnCarbonStd,
			YLabel:     "Carbon (kg CO2)",
			Title:      "Carbon Emission Comparison",
			FileName:   "carbon_comparison",
			Color:      "#F28E2B",
		},
		{
			Name:       "makespan",
			MeanColumn: ColumnMakespanMean,
			StdColumn:  ColumnMakespanStd,
			YLabel:     "Makespan (s)",
			Title:      "Execution Time Comparison",
			FileName:   "makespan_comparison",
			Color:      "#59A14F",
		},
	}
}

// OutputPath joins the metric's file name with dir and the image format extension.
func (m MetricSpec) OutputPath(dir, format string) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%s", m.FileName, format))
}

// Series extracts the mean and std columns of m from records, in record order.
func (m MetricSpec) Series(records []Record) (means, stds []float64, err error) {
	means = make([]float64, 0, len(records))
	stds = make([]float64, 0, len(records))
	for i, rec := range records {
		mean, err := rec.Float(i+1, m.MeanColumn)
		if err != nil {
			return nil, nil, err
		}
		std, err := rec.Float(i+1, m.StdColumn)
		if err != nil {
			return nil, nil, err
		}
		means = append(means, mean)
		stds = append(stds, std)
	}
	return means, stds, nil
}
