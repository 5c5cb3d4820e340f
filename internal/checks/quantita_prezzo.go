package checks

import (
	"fmt"
	"strings"

	"fjacquet/fattura-desk/internal/currencyutils"
	"fjacquet/fattura-desk/internal/invoice"
)

// NameQuantitaPrezzo is the catalogue name of the quantity/price check.
const NameQuantitaPrezzo = "Quantità e Prezzo"

// CheckQuantitaPrezzo verifies that every article line carries a
// positive quantity and unit price. Lines without a unit of measure are
// descriptive and skipped. Non-numeric values collapse to zero and are
// then caught by the non-positive test.
func CheckQuantitaPrezzo(doc *invoice.Document, _ Reader) []Finding {
	var findings []Finding

	for _, line := range doc.Lines() {
		if strings.TrimSpace(line.UnitaMisura) == "" {
			continue
		}

		quantita := currencyutils.ParseAmountLenient(line.Quantita)
		prezzo := currencyutils.ParseAmountLenient(line.PrezzoUnitario)

		if quantita.IsPositive() && prezzo.IsPositive() {
			continue
		}

		findings = append(findings, Finding{
			Message: fmt.Sprintf(
				"Linea %s: quantità (%s) o prezzo unitario (%s) non positivi",
				line.Numero, line.Quantita, line.PrezzoUnitario),
			Details: map[string]string{
				"linea":        line.Numero,
				"quantita":     quantita.String(),
				"prezzo":       prezzo.String(),
				"unita_misura": line.UnitaMisura,
			},
		})
	}

	return findings
}
