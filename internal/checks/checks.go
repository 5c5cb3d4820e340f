// Package checks contains the catalogue of semantic invoice checks.
// Each check is a pure function from a parsed invoice plus read-only
// store access to a list of findings; findings are data, never errors.
package checks

import (
	"fjacquet/fattura-desk/internal/invoice"
	"fjacquet/fattura-desk/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Finding is a single policy violation reported by a check.
type Finding struct {
	Message string            `json:"message" yaml:"message"`
	Details map[string]string `json:"details,omitempty" yaml:"details,omitempty"`
}

// Result groups the findings of one executed check.
type Result struct {
	Name     string    `json:"name" yaml:"name"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

// Passed reports whether the check produced no findings.
func (r Result) Passed() bool {
	return len(r.Findings) == 0
}

// Reader is the narrow read-only store access checks are allowed.
type Reader interface {
	PartyByVAT(piva string) (*models.Soggetto, error)
}

// Func is the fixed shape of a check: parsed document plus store reader
// in, findings out.
type Func func(doc *invoice.Document, store Reader) []Finding

// Entry pairs a check name with its function.
type Entry struct {
	Name string
	Run  Func
}

// Registry is the ordered catalogue of named checks. It is initialised
// once and read-only afterwards; validation runs iterate it in order.
type Registry struct {
	entries []Entry
}

// NewRegistry returns the default catalogue in its fixed order.
func NewRegistry() *Registry {
	return &Registry{entries: []Entry{
		{Name: NameQuantitaPrezzo, Run: CheckQuantitaPrezzo},
		{Name: NameTipoDocumento, Run: CheckTipoDocumento},
		{Name: NameSpeseBancarie, Run: CheckSpeseBancarie},
		{Name: NameDichiarazioneIntento, Run: CheckDichiarazioneIntento},
	}}
}

// Entries returns the catalogue in order.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// Names returns the check names in catalogue order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.Name)
	}
	return names
}

// Append adds a check at the end of the catalogue.
func (r *Registry) Append(name string, fn Func) {
	r.entries = append(r.entries, Entry{Name: name, Run: fn})
}

// Remove drops a check from the catalogue by name.
func (r *Registry) Remove(name string) {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}
