package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/emiliopalmerini/policyplot/internal/domain"
)

// ManifestFile is written next to the charts.
const ManifestFile = "manifest.json"

// Manifest records what a run rendered.
type Manifest struct {
	RunID           string             `json:"run_id"`
	GeneratedAt     time.Time          `json:"generated_at"`
	SummaryPath     string             `json:"summary_path"`
	UnknownPolicies []string           `json:"unknown_policies,omitempty"`
	Charts          []domain.ChartData `json:"charts"`
}

// OutputPaths lists the chart files in render order.
func (m *Manifest) OutputPaths() []string {
	paths := make([]string, len(m.Charts))
	for i, c := range m.Charts {
		paths[i] = c.OutputPath
	}
	return paths
}

// WriteManifest writes m as indented JSON to path, replacing any existing file.
func WriteManifest(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	data = append(data, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a manifest previously written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, err)
	}
	return &m, nil
}
