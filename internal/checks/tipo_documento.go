package checks

import (
	"fmt"
	"strings"

	"fjacquet/fattura-desk/internal/invoice"
	"fjacquet/fattura-desk/internal/models"
)

// NameTipoDocumento is the catalogue name of the document-type check.
const NameTipoDocumento = "Tipo Documento"

// CheckTipoDocumento compares the invoice's document type and
// counterparty role against the stored party record. The counterparty is
// resolved by VAT number: the buyer element first (expected role
// CLIENTE), falling back to the seller (FORNITORE). A missing document
// type, missing VAT number or unknown party aborts the check with one
// finding.
func CheckTipoDocumento(doc *invoice.Document, store Reader) []Finding {
	tipoDocumento := strings.TrimSpace(doc.TipoDocumento())
	if tipoDocumento == "" {
		return []Finding{{Message: "TipoDocumento assente nel file"}}
	}

	piva, role := doc.CounterpartyVAT()
	if piva == "" {
		return []Finding{{Message: "Partita IVA della controparte assente nel file"}}
	}

	party, err := store.PartyByVAT(piva)
	if err != nil {
		log.WithError(err).WithField("partita_iva", piva).Error("Failed to look up party")
		return []Finding{{
			Message: fmt.Sprintf("Errore di lettura del soggetto con partita IVA %s", piva),
			Details: map[string]string{"partita_iva": piva},
		}}
	}
	if party == nil {
		return []Finding{{
			Message: fmt.Sprintf("Nessun soggetto registrato con partita IVA %s", piva),
			Details: map[string]string{"partita_iva": piva},
		}}
	}

	var findings []Finding

	if !strings.EqualFold(party.TipoSoggetto, role) {
		findings = append(findings, Finding{
			Message: fmt.Sprintf(
				"Il soggetto %s è registrato come %s ma il file lo indica come %s",
				party.RagioneSociale, party.TipoSoggetto, role),
			Details: map[string]string{
				"soggetto":      party.RagioneSociale,
				"partita_iva":   piva,
				"ruolo_atteso":  role,
				"tipo_soggetto": party.TipoSoggetto,
			},
		})
	}

	if party.TipoFattura == nil {
		findings = append(findings, Finding{
			Message: fmt.Sprintf(
				"Tipo fattura non configurato per il soggetto %s (file: %s)",
				party.RagioneSociale, tipoDocumento),
			Details: map[string]string{
				"soggetto":            party.RagioneSociale,
				"partita_iva":         piva,
				"tipo_documento_file": tipoDocumento,
			},
		})
		return findings
	}

	fromFile := models.NormalizeTipoFattura(tipoDocumento)
	stored := models.NormalizeTipoFattura(*party.TipoFattura)
	if fromFile != stored {
		findings = append(findings, Finding{
			Message: fmt.Sprintf(
				"Tipo documento %s nel file ma %s atteso per il soggetto %s",
				fromFile, stored, party.RagioneSociale),
			Details: map[string]string{
				"soggetto":              party.RagioneSociale,
				"partita_iva":           piva,
				"tipo_documento_file":   fromFile,
				"tipo_fattura_soggetto": stored,
			},
		})
	}

	return findings
}
