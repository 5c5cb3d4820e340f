// Package xmlutils provides XML-related utility functions used
// throughout the application.
package xmlutils

// FatturaPA contains all XPath expressions used for FatturaPA invoice
// parsing. The validator reads exactly these paths; everything is
// string-typed before numeric coercion.
type FatturaPA struct {
	// Lines contains XPath expressions for the article detail lines.
	Lines struct {
		Detail       string
		NumeroLinea  string
		Descrizione  string
		UnitaMisura  string
		Quantita     string
		PrezzoUnit   string
		PrezzoTotale string
	}

	// Header contains XPath expressions for the general document data.
	Header struct {
		TipoDocumento   string
		NumeroDocumento string
		Data            string
		Divisa          string
		ImportoTotale   string
	}

	// Parties contains XPath expressions for the buyer/seller identity.
	Parties struct {
		CessionarioIVA        string
		CessionarioAnagrafica string
		CedenteIVA            string
		CedenteAnagrafica     string
	}

	// Payment contains XPath expressions for the payment schedule data.
	Payment struct {
		DettaglioPagamento string
		DataScadenza       string
		ImportoPagamento   string
	}
}

// DefaultFatturaPAPaths returns a FatturaPA struct with the default
// XPath expressions.
func DefaultFatturaPAPaths() FatturaPA {
	f := FatturaPA{}

	f.Lines.Detail = "//DettaglioLinee"
	f.Lines.NumeroLinea = "NumeroLinea"
	f.Lines.Descrizione = "Descrizione"
	f.Lines.UnitaMisura = "UnitaMisura"
	f.Lines.Quantita = "Quantita"
	f.Lines.PrezzoUnit = "PrezzoUnitario"
	f.Lines.PrezzoTotale = "PrezzoTotale"

	f.Header.TipoDocumento = "//DatiGenerali/DatiGeneraliDocumento/TipoDocumento"
	f.Header.NumeroDocumento = "//DatiGenerali/DatiGeneraliDocumento/Numero"
	f.Header.Data = "//DatiGenerali/DatiGeneraliDocumento/Data"
	f.Header.Divisa = "//DatiGenerali/DatiGeneraliDocumento/Divisa"
	f.Header.ImportoTotale = "//DatiGenerali/DatiGeneraliDocumento/ImportoTotaleDocumento"

	f.Parties.CessionarioIVA = "//CessionarioCommittente/DatiAnagrafici/IdFiscaleIVA/IdCodice"
	f.Parties.CessionarioAnagrafica = "//CessionarioCommittente/DatiAnagrafici/Anagrafica/Denominazione"
	f.Parties.CedenteIVA = "//CedentePrestatore/DatiAnagrafici/IdFiscaleIVA/IdCodice"
	f.Parties.CedenteAnagrafica = "//CedentePrestatore/DatiAnagrafici/Anagrafica/Denominazione"

	f.Payment.DettaglioPagamento = "//DatiPagamento/DettaglioPagamento"
	f.Payment.DataScadenza = "DataScadenzaPagamento"
	f.Payment.ImportoPagamento = "ImportoPagamento"

	return f
}
