package util

import "testing"

func TestFormatMeanStd(t *testing.T) {
	tests := []struct {
		mean, std float64
		decimals  int
		want      string
	}{
		{10.2, 0.5, 2, "10.20 ± 0.50"},
		{7.8, 0.2, 4, "7.8000 ± 0.2000"},
		{1520.4, 42.1, 0, "1520 ± 42"},
	}
	for _, tt := range tests {
		if got := FormatMeanStd(tt.mean, tt.std, tt.decimals); got != tt.want {
			t.Errorf("FormatMeanStd(%v, %v, %d) = %q, want %q", tt.mean, tt.std, tt.decimals, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{23.5, "+23.50%"},
		{-4, "-4.00%"},
		{0, "0.00%"},
		{0.001, "0.00%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{42, "42.0s"},
		{1520.4, "25m 20s"},
		{7260, "2h 1m"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.in); got != tt.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
