package models

import "github.com/shopspring/decimal"

// DichiarazioneIntento is a declaration of intent: a VAT-free purchasing
// ceiling granted to a party over a date window. Dates are ISO strings.
// The residual plafond starts equal to the initial one and never exceeds it.
type DichiarazioneIntento struct {
	ID                  int64           `csv:"ID"`
	IDSoggetto          int64           `csv:"IDSoggetto"`
	NumeroDichiarazione string          `csv:"NumeroDichiarazione"`
	DataInizio          string          `csv:"DataInizio"`
	DataFine            string          `csv:"DataFine"`
	PlafondIniziale     decimal.Decimal `csv:"PlafondIniziale"`
	PlafondResiduo      decimal.Decimal `csv:"PlafondResiduo"`
}

// Valida reports whether the declaration's window and amounts are
// internally consistent.
func (d *DichiarazioneIntento) Valida() bool {
	if d.DataInizio > d.DataFine {
		return false
	}
	return d.PlafondResiduo.LessThanOrEqual(d.PlafondIniziale)
}
