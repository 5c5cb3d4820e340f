// Package downloader sequences the external portal helpers: it
// persists the requested window in the configuration, then launches the
// scraper and its post-processing steps in fixed order, stopping at the
// first failure.
package downloader

import (
	"fmt"
	"os/exec"
	"time"

	"fjacquet/fattura-desk/internal/config"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Kind selects which invoices a monthly run downloads.
type Kind string

const (
	// Acquisti downloads purchase invoices.
	Acquisti Kind = "acquisti"
	// Vendite downloads sale invoices.
	Vendite Kind = "vendite"
)

// fastWindowDays is how far back the quick download reaches.
const fastWindowDays = 5

// Runner launches one external helper and waits for it.
type Runner interface {
	Run(name string, args ...string) error
}

// execRunner shells out and surfaces a non-zero exit together with the
// helper's combined output.
type execRunner struct{}

func (execRunner) Run(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("helper %s failed: %w (output: %s)", name, err, out)
	}
	return nil
}

// Helpers names the external commands the orchestrator launches.
type Helpers struct {
	Scraper   []string
	Renamer   []string
	PreWindow []string
}

// DefaultHelpers returns the helper commands installed alongside the
// application.
func DefaultHelpers() Helpers {
	return Helpers{
		Scraper:   []string{"fatture-scraper"},
		Renamer:   []string{"fatture-rename"},
		PreWindow: []string{"fatture-prewindow"},
	}
}

// Orchestrator runs the download pipelines against one configuration.
type Orchestrator struct {
	settings *config.Settings
	helpers  Helpers
	runner   Runner
}

// New creates an orchestrator. A nil runner launches real processes.
func New(settings *config.Settings, helpers Helpers, runner Runner) *Orchestrator {
	if runner == nil {
		runner = execRunner{}
	}
	return &Orchestrator{settings: settings, helpers: helpers, runner: runner}
}

// RunFast performs the quick download: reception-date window covering
// the last five days up to today, purchases only, followed by the
// renamer and the pre-window computer.
func (o *Orchestrator) RunFast() error {
	al := time.Now()
	dal := al.AddDate(0, 0, -fastWindowDays)

	if err := o.settings.SaveWindow(dal, al, 1, config.VenOAcqAcquisti); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"dal": dal.Format("02/01/2006"), "al": al.Format("02/01/2006")}).
		Info("Starting quick download")

	return o.runHelpers(o.helpers.Scraper, o.helpers.Renamer, o.helpers.PreWindow)
}

// RunMonthly downloads one calendar month of purchases or sales by
// emission date. The pre-window step only applies to the quick path.
func (o *Orchestrator) RunMonthly(month time.Month, year int, kind Kind) error {
	venoacq, err := venOAcqFlag(kind)
	if err != nil {
		return err
	}

	dal := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	al := dal.AddDate(0, 1, -1)

	if err := o.settings.SaveWindow(dal, al, 2, venoacq); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"mese": dal.Format("2006-01"), "kind": kind}).
		Info("Starting monthly download")

	return o.runHelpers(o.helpers.Scraper, o.helpers.Renamer)
}

// runHelpers launches the given commands in order and stops at the
// first failure. Empty commands are skipped.
func (o *Orchestrator) runHelpers(commands ...[]string) error {
	for _, cmd := range commands {
		if len(cmd) == 0 {
			continue
		}
		log.WithField("helper", cmd[0]).Debug("Launching helper")
		if err := o.runner.Run(cmd[0], cmd[1:]...); err != nil {
			return err
		}
	}
	return nil
}

func venOAcqFlag(kind Kind) (string, error) {
	switch kind {
	case Acquisti:
		return config.VenOAcqAcquisti, nil
	case Vendite:
		return config.VenOAcqVendite, nil
	default:
		return "", fmt.Errorf("unknown download kind %q", kind)
	}
}
