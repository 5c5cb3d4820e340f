// Package validator runs the registered invoice checks over a parsed
// document and aggregates their findings.
package validator

import (
	"fmt"

	"fjacquet/fattura-desk/internal/checks"
	"fjacquet/fattura-desk/internal/invoice"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		checks.SetLogger(logger)
		invoice.SetLogger(logger)
	}
}

// Pipeline parses an invoice once and dispatches the selected checks
// across it in catalogue order.
type Pipeline struct {
	registry *checks.Registry
	store    checks.Reader
}

// New creates a pipeline over the given catalogue and store reader.
func New(registry *checks.Registry, store checks.Reader) *Pipeline {
	return &Pipeline{registry: registry, store: store}
}

// Validate loads the invoice at filePath and runs the named checks.
// A nil or empty selection runs every registered check. Unknown names
// are silently skipped; execution and result order follow the
// catalogue, not the caller. A run where every result is empty means
// the invoice passed; policy violations never surface as errors.
func (p *Pipeline) Validate(filePath string, checkNames []string) ([]checks.Result, error) {
	doc, err := invoice.Load(filePath)
	if err != nil {
		return nil, fmt.Errorf("error validating %s: %w", filePath, err)
	}

	selected := selectionSet(checkNames)

	var results []checks.Result
	for _, entry := range p.registry.Entries() {
		if selected != nil && !selected[entry.Name] {
			continue
		}

		findings := entry.Run(doc, p.store)
		results = append(results, checks.Result{Name: entry.Name, Findings: findings})

		log.WithFields(logrus.Fields{
			"check":    entry.Name,
			"findings": len(findings),
			"file":     filePath,
		}).Debug("Check executed")
	}

	return results, nil
}

// selectionSet turns the caller's check names into a lookup set; nil
// means "run everything".
func selectionSet(checkNames []string) map[string]bool {
	if len(checkNames) == 0 {
		return nil
	}
	selected := make(map[string]bool, len(checkNames))
	for _, name := range checkNames {
		selected[name] = true
	}
	return selected
}
