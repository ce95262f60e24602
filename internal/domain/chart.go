package domain

import (
	"fmt"
	"math"
)

// ChartSpec bundles the inputs of one bar chart with error bars.
type ChartSpec struct {
	Labels     []string
	Means      []float64
	Stds       []float64
	YLabel     string
	Title      string
	OutputPath string
	Color      string
}

// Validate checks the renderer's preconditions: parallel series of equal, non-zero length
// with finite values, and a destination path.
func (c ChartSpec) Validate() error {
	if len(c.Labels) == 0 {
		return &ChartSpecError{Title: c.Title, Reason: "no categories"}
	}
	if len(c.Means) != len(c.Labels) || len(c.Stds) != len(c.Labels) {
		return &ChartSpecError{
			Title:  c.Title,
			Reason: fmt.Sprintf("length mismatch: %d labels, %d means, %d stds", len(c.Labels), len(c.Means), len(c.Stds)),
		}
	}
	for i := range c.Means {
		if math.IsNaN(c.Means[i]) || math.IsInf(c.Means[i], 0) {
			return &ChartSpecError{Title: c.Title, Reason: fmt.Sprintf("mean of %q is not finite", c.Labels[i])}
		}
		if math.IsNaN(c.Stds[i]) || math.IsInf(c.Stds[i], 0) {
			return &ChartSpecError{Title: c.Title, Reason: fmt.Sprintf("std of %q is not finite", c.Labels[i])}
		}
	}
	if c.OutputPath == "" {
		return &ChartSpecError{Title: c.Title, Reason: "empty output path"}
	}
	return nil
}

// Bar is one rendered category.
type Bar struct {
	Label    string  `json:"label"`
	Height   float64 `json:"height"`
	ErrorLow float64 `json:"error_low"`
	ErrorHi  float64 `json:"error_high"`
}

// ChartData is the numeric content of a rendered chart. Two renders of the same input
// produce equal ChartData even when the image bytes differ.
type ChartData struct {
	Metric     string `json:"metric,omitempty"`
	Title      string `json:"title"`
	YLabel     string `json:"y_label"`
	OutputPath string `json:"output_path"`
	Bars       []Bar  `json:"bars"`
}
