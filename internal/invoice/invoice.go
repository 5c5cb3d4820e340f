// Package invoice loads FatturaPA electronic invoice XML files into an
// in-memory tree addressable by path expressions.
package invoice

import (
	"fmt"

	"fjacquet/fattura-desk/internal/models"
	"fjacquet/fattura-desk/internal/xmlutils"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		xmlutils.SetLogger(logger)
	}
}

// Line is one DettaglioLinee element of an invoice. All fields are raw
// strings; numeric coercion happens in the checks.
type Line struct {
	Numero         string
	Descrizione    string
	UnitaMisura    string
	Quantita       string
	PrezzoUnitario string
}

// Schedule is one DettaglioPagamento element: a due date with an amount.
type Schedule struct {
	DataScadenza string
	Importo      string
}

// Document is a parsed invoice. It wraps the XML root node and exposes
// read-only, string-typed access over the paths the application uses.
type Document struct {
	filePath string
	root     *xmlpath.Node
	xpaths   xmlutils.FatturaPA
}

// Load parses the invoice file at the given path. It fails when the
// file is unreadable or not well-formed XML.
func Load(filePath string) (*Document, error) {
	root, err := xmlutils.LoadXMLFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error loading invoice %s: %w", filePath, err)
	}

	return &Document{
		filePath: filePath,
		root:     root,
		xpaths:   xmlutils.DefaultFatturaPAPaths(),
	}, nil
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string {
	return d.filePath
}

// TextAt returns the first value at the given path expression, or the
// default when the path matches nothing.
func (d *Document) TextAt(xpath, def string) string {
	return xmlutils.FirstOrDefault(d.root, xpath, def)
}

// TipoDocumento returns the document-type tag (TD01, TD24, ...).
func (d *Document) TipoDocumento() string {
	return d.TextAt(d.xpaths.Header.TipoDocumento, "")
}

// NumeroDocumento returns the invoice number.
func (d *Document) NumeroDocumento() string {
	return d.TextAt(d.xpaths.Header.NumeroDocumento, "")
}

// Data returns the invoice date as written in the file (ISO form).
func (d *Document) Data() string {
	return d.TextAt(d.xpaths.Header.Data, "")
}

// ImportoTotale returns the raw document total.
func (d *Document) ImportoTotale() string {
	return d.TextAt(d.xpaths.Header.ImportoTotale, "")
}

// CounterpartyVAT resolves the VAT number of the counterparty and the
// party role it implies. The buyer (CessionarioCommittente) is tried
// first and tags the party as a client; when absent, the seller
// (CedentePrestatore) tags it as a supplier.
func (d *Document) CounterpartyVAT() (piva, role string) {
	if piva = d.TextAt(d.xpaths.Parties.CessionarioIVA, ""); piva != "" {
		return piva, models.TipoSoggettoCliente
	}
	if piva = d.TextAt(d.xpaths.Parties.CedenteIVA, ""); piva != "" {
		return piva, models.TipoSoggettoFornitore
	}
	return "", ""
}

// CounterpartyName returns the counterparty's display name for the
// given role.
func (d *Document) CounterpartyName(role string) string {
	if role == models.TipoSoggettoCliente {
		return d.TextAt(d.xpaths.Parties.CessionarioAnagrafica, "")
	}
	return d.TextAt(d.xpaths.Parties.CedenteAnagrafica, "")
}

// Lines returns the article detail lines in document order.
func (d *Document) Lines() []Line {
	detailPath := xmlpath.MustCompile(d.xpaths.Lines.Detail)

	var lines []Line
	iter := detailPath.Iter(d.root)
	for iter.Next() {
		node := iter.Node()
		lines = append(lines, Line{
			Numero:         xmlutils.FirstOrDefault(node, d.xpaths.Lines.NumeroLinea, ""),
			Descrizione:    xmlutils.FirstOrDefault(node, d.xpaths.Lines.Descrizione, ""),
			UnitaMisura:    xmlutils.FirstOrDefault(node, d.xpaths.Lines.UnitaMisura, ""),
			Quantita:       xmlutils.FirstOrDefault(node, d.xpaths.Lines.Quantita, ""),
			PrezzoUnitario: xmlutils.FirstOrDefault(node, d.xpaths.Lines.PrezzoUnit, ""),
		})
	}
	return lines
}

// Schedules returns the payment due lines in document order.
func (d *Document) Schedules() []Schedule {
	detailPath := xmlpath.MustCompile(d.xpaths.Payment.DettaglioPagamento)

	var schedules []Schedule
	iter := detailPath.Iter(d.root)
	for iter.Next() {
		node := iter.Node()
		schedules = append(schedules, Schedule{
			DataScadenza: xmlutils.FirstOrDefault(node, d.xpaths.Payment.DataScadenza, ""),
			Importo:      xmlutils.FirstOrDefault(node, d.xpaths.Payment.ImportoPagamento, ""),
		})
	}
	return schedules
}

// ValidateFormat checks whether a file looks like a FatturaPA invoice:
// well-formed XML with at least the general document data element.
func ValidateFormat(filePath string) (bool, error) {
	root, err := xmlutils.LoadXMLFile(filePath)
	if err != nil {
		return false, nil
	}

	path := xmlpath.MustCompile("//DatiGeneraliDocumento")
	if iter := path.Iter(root); !iter.Next() {
		log.WithField("file", filePath).Info("File is not a FatturaPA invoice (no general document data)")
		return false, nil
	}
	return true, nil
}
