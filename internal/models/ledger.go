package models

import "github.com/shopspring/decimal"

// ReportMensileRow is one row of the materialised monthly report.
// Mese has the shape YYYY-MM.
type ReportMensileRow struct {
	Mese           string          `csv:"Mese"`
	TotaleAcquisti decimal.Decimal `csv:"TotaleAcquisti"`
	TotaleVendite  decimal.Decimal `csv:"TotaleVendite"`
}

// Movimento is one row of the unified movement view: either a document
// or a settling payment, placed on the dare or avere side. The unused
// side is zero.
type Movimento struct {
	SoggettoID     int64           `csv:"SoggettoID"`
	RagioneSociale string          `csv:"RagioneSociale"`
	DataMovimento  string          `csv:"DataMovimento"`
	Descrizione    string          `csv:"Descrizione"`
	Dare           decimal.Decimal `csv:"Dare"`
	Avere          decimal.Decimal `csv:"Avere"`
}

// ScadutoRow is one row of the overdue-by-party views: a party with at
// least one schedule past its due date whose net-of-payments remainder
// exceeds the reporting threshold.
type ScadutoRow struct {
	ID                    int64           `csv:"ID"`
	Codice                string          `csv:"Codice"`
	RagioneSociale        string          `csv:"RagioneSociale"`
	NumeroScadenzeScadute int             `csv:"NumeroScadenzeScadute"`
	TotaleScadenze        decimal.Decimal `csv:"TotaleScadenze"`
	TotalePagato          decimal.Decimal `csv:"TotalePagato"`
	SaldoScaduto          decimal.Decimal `csv:"SaldoScaduto"`
}

// InvoiceSummary identifies one downloaded invoice inside a history
// entry.
type InvoiceSummary struct {
	Numero   string `json:"numero"`
	Soggetto string `json:"soggetto"`
	Data     string `json:"data"`
}
