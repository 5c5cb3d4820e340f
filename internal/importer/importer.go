// Package importer writes downloaded invoice files into the store: it
// matches the counterparty by VAT number, creates a skeleton party when
// none exists, and registers the document with its payment schedules.
// Already-registered documents are skipped so re-ingesting a deposit
// directory is harmless.
package importer

import (
	"fmt"
	"path/filepath"
	"time"

	"fjacquet/fattura-desk/internal/currencyutils"
	"fjacquet/fattura-desk/internal/dateutils"
	"fjacquet/fattura-desk/internal/fileutils"
	"fjacquet/fattura-desk/internal/invoice"
	"fjacquet/fattura-desk/internal/models"
	"fjacquet/fattura-desk/internal/store"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		invoice.SetLogger(logger)
	}
}

// Result describes what happened to one ingested file.
type Result struct {
	File     string
	Imported bool
	Reason   string
	Summary  models.InvoiceSummary
}

// Importer ingests invoice files into one store.
type Importer struct {
	store *store.Store
}

// New creates an importer over an open store.
func New(s *store.Store) *Importer {
	return &Importer{store: s}
}

// ImportFile registers one invoice file. A document already present for
// the same party, type, number and date is skipped, not duplicated.
func (i *Importer) ImportFile(path string) (*Result, error) {
	doc, err := invoice.Load(path)
	if err != nil {
		return nil, err
	}

	piva, role := doc.CounterpartyVAT()
	if piva == "" {
		return &Result{File: path, Reason: "no counterparty VAT number"}, nil
	}

	party, err := i.store.PartyByVAT(piva)
	if err != nil {
		return nil, err
	}
	if party == nil {
		party = &models.Soggetto{
			RagioneSociale: doc.CounterpartyName(role),
			TipoSoggetto:   role,
			PartitaIVA:     piva,
		}
		if party.RagioneSociale == "" {
			party.RagioneSociale = piva
		}
		if err := i.store.InsertParty(party); err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"piva": piva, "tipo": role}).Info("Created party from invoice")
	}

	tipo := doc.TipoDocumento()
	numero := doc.NumeroDocumento()
	data := toStoredDate(doc.Data())

	exists, err := i.store.DocumentExists(party.ID, tipo, numero, data)
	if err != nil {
		return nil, err
	}
	if exists {
		return &Result{File: path, Reason: "already registered"}, nil
	}

	segno := models.SegnoAcquisto
	if party.IsCliente() {
		segno = models.SegnoVendita
	}

	d := &models.Documento{
		SoggettoID:        party.ID,
		TipoDocumento:     tipo,
		NumeroDocumento:   numero,
		DataDocumento:     data,
		DataRegistrazione: dateutils.ToItalian(time.Now()),
		Totale:            currencyutils.ParseAmountLenient(doc.ImportoTotale()),
		Segno:             segno,
	}

	var schedules []models.Scadenza
	for _, sc := range doc.Schedules() {
		schedules = append(schedules, models.Scadenza{
			DataScadenza:    toStoredDate(sc.DataScadenza),
			ImportoScadenza: currencyutils.ParseAmountLenient(sc.Importo),
		})
	}

	if err := i.store.InsertDocument(d, schedules); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"file": filepath.Base(path), "numero": numero, "soggetto": party.RagioneSociale,
	}).Info("Invoice registered")

	return &Result{
		File:     path,
		Imported: true,
		Summary: models.InvoiceSummary{
			Numero:   numero,
			Soggetto: party.RagioneSociale,
			Data:     data,
		},
	}, nil
}

// ImportDir ingests every FatturaPA XML file in one directory, in name
// order. Files that do not look like invoices are skipped; a store
// failure stops the run.
func (i *Importer) ImportDir(dir string) ([]Result, error) {
	paths, err := fileutils.ListFilesWithExtension(dir, ".xml")
	if err != nil {
		return nil, fmt.Errorf("error reading deposit directory %s: %w", dir, err)
	}

	var results []Result
	for _, path := range paths {
		ok, err := invoice.ValidateFormat(path)
		if err != nil {
			return results, err
		}
		if !ok {
			results = append(results, Result{File: path, Reason: "not a FatturaPA invoice"})
			continue
		}

		r, err := i.ImportFile(path)
		if err != nil {
			return results, err
		}
		results = append(results, *r)
	}
	return results, nil
}

// Summaries extracts the summaries of the imported files, the shape the
// history ring records.
func Summaries(results []Result) []models.InvoiceSummary {
	var summaries []models.InvoiceSummary
	for _, r := range results {
		if r.Imported {
			summaries = append(summaries, r.Summary)
		}
	}
	return summaries
}

// toStoredDate converts an invoice date (ISO in the file) to the
// day-first form the base tables hold. Unparseable values pass through.
func toStoredDate(dateStr string) string {
	t, err := dateutils.ParseFlexibleDate(dateStr)
	if err != nil {
		return dateStr
	}
	return dateutils.ToItalian(t)
}
