// Package models provides the data structures used throughout the application.
package models

import "strings"

// Soggetto represents a commercial counterparty (client or supplier).
// The VAT number, when present, is unique and is the only key used for
// matching against parsed invoices.
type Soggetto struct {
	ID             int64  `csv:"ID"`
	CodiceSoggetto string `csv:"Codice"`
	RagioneSociale string `csv:"RagioneSociale"`
	TipoSoggetto   string `csv:"TipoSoggetto"`
	PartitaIVA     string `csv:"PartitaIVA"`
	CodiceFiscale  string `csv:"CodiceFiscale"`
	// TipoFattura is the document-type tag expected on this party's
	// invoices (e.g. TD01, TD24). Nil when never configured.
	TipoFattura *string `csv:"TipoFattura"`
	Indirizzo   string  `csv:"Indirizzo"`
	CAP         string  `csv:"CAP"`
	Comune      string  `csv:"Comune"`
	Provincia   string  `csv:"Provincia"`
	Email       string  `csv:"Email"`
	Telefono    string  `csv:"Telefono"`
}

// IsCliente reports whether the party is stored as a client.
func (s *Soggetto) IsCliente() bool {
	return strings.EqualFold(s.TipoSoggetto, TipoSoggettoCliente)
}

// IsFornitore reports whether the party is stored as a supplier.
func (s *Soggetto) IsFornitore() bool {
	return strings.EqualFold(s.TipoSoggetto, TipoSoggettoFornitore)
}

// NormalizeTipoFattura upper-cases and trims a document-type tag and
// collapses any value starting with TD24 to plain TD24, so that
// "TD24 - Fattura differita" compares equal to "TD24".
func NormalizeTipoFattura(tag string) string {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if strings.HasPrefix(tag, TipoDocumentoTD24) {
		return TipoDocumentoTD24
	}
	return tag
}
