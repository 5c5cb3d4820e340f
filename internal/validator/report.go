package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fjacquet/fattura-desk/internal/checks"
	"fjacquet/fattura-desk/internal/fileutils"

	"gopkg.in/yaml.v3"
)

// Report is the serialisable outcome of one validation run.
type Report struct {
	File        string          `yaml:"file"`
	GeneratedAt string          `yaml:"generated_at"`
	Passed      bool            `yaml:"passed"`
	Results     []checks.Result `yaml:"results"`
}

// NewReport assembles a report from a validation run.
func NewReport(filePath string, results []checks.Result) Report {
	passed := true
	for _, r := range results {
		if !r.Passed() {
			passed = false
			break
		}
	}
	return Report{
		File:        filePath,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Passed:      passed,
		Results:     results,
	}
}

// WriteYAML writes the report to a YAML file, creating the parent
// directory when needed.
func (r Report) WriteYAML(outPath string) error {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(outPath)); err != nil {
		return fmt.Errorf("error creating report directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("error marshalling report: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0600); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	log.WithField("file", outPath).Info("Validation report written")
	return nil
}
