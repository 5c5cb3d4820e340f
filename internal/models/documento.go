package models

import "github.com/shopspring/decimal"

// Documento represents a single invoice as stored in the documenti table.
// DataDocumento is kept in the historical day-first form (DD/MM/YYYY);
// derivations convert it to ISO for grouping and sorting.
type Documento struct {
	ID                int64           `csv:"ID"`
	SoggettoID        int64           `csv:"SoggettoID"`
	TipoDocumento     string          `csv:"TipoDocumento"`
	NumeroDocumento   string          `csv:"NumeroDocumento"`
	DataDocumento     string          `csv:"DataDocumento"`
	DataRegistrazione string          `csv:"DataRegistrazione"`
	Totale            decimal.Decimal `csv:"Totale"`
	ImportoImponibile decimal.Decimal `csv:"ImportoImponibile"`
	// Segno is +1 for sales (receivables) and -1 for purchases
	// (payables); no third value exists.
	Segno int `csv:"Segno"`
}

// IsVendita reports whether the document is a sale.
func (d *Documento) IsVendita() bool {
	return d.Segno == SegnoVendita
}

// Scadenza is a due line of a document. A document owns zero or more
// schedules; deleting the document cascades to them.
type Scadenza struct {
	ID              int64           `csv:"ID"`
	IDDocumento     int64           `csv:"IDDocumento"`
	DataScadenza    string          `csv:"DataScadenza"`
	ImportoScadenza decimal.Decimal `csv:"ImportoScadenza"`
}

// Pagamento is a single cash movement. TipoMovimento is nullable in the
// store; nil means the direction must be inferred from the associated
// document's sign.
type Pagamento struct {
	ID                int64           `csv:"ID"`
	DataPagamento     string          `csv:"DataPagamento"`
	Importo           decimal.Decimal `csv:"Importo"`
	ModalitaPagamento string          `csv:"ModalitaPagamento"`
	TipoMovimento     *string         `csv:"TipoMovimento"`
}

// AssociazionePagamento links a payment to a document. The sum of
// ImportoAssociato across the associations of one payment never exceeds
// the payment's amount.
type AssociazionePagamento struct {
	IDAssociazione   int64           `csv:"IDAssociazione"`
	IDPagamento      int64           `csv:"IDPagamento"`
	IDDocumento      int64           `csv:"IDDocumento"`
	ImportoAssociato decimal.Decimal `csv:"ImportoAssociato"`
	TipoAssociazione string          `csv:"TipoAssociazione"`
}
