package models

// Party roles as stored in soggetti.tipo_soggetto.
const (
	TipoSoggettoCliente   = "CLIENTE"
	TipoSoggettoFornitore = "FORNITORE"
)

// Document sign: +1 is a sale (receivable), -1 a purchase (payable).
// This is the only direction marker in the store.
const (
	SegnoVendita  = 1
	SegnoAcquisto = -1
)

// Payment direction as stored in pagamenti.tipo_movimento.
// The column is nullable; when null the derivation falls back to the
// document's sign.
const (
	TipoMovimentoPagamento = "PAGAMENTO"
	TipoMovimentoIncasso   = "INCASSO"
)

// Sentinel values recognised by the ledger derivation.
const (
	// ModalitaStornoNotaCredito marks a payment row that reverses a
	// credit note rather than moving cash.
	ModalitaStornoNotaCredito = "STORNO_NOTA_CREDITO"

	// TipoAssociazionePagamento is the association kind counted as a
	// settling payment by the movement and overdue derivations.
	TipoAssociazionePagamento = "PAGAMENTO"
)

// Document type tags from the FatturaPA schema.
const (
	TipoDocumentoTD01 = "TD01"
	TipoDocumentoTD24 = "TD24"
)
