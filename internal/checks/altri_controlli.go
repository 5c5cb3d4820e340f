package checks

import "fjacquet/fattura-desk/internal/invoice"

// NameSpeseBancarie is the catalogue name of the bank-charges check.
const NameSpeseBancarie = "Spese Bancarie"

// NameDichiarazioneIntento is the catalogue name of the declaration of
// intent check.
const NameDichiarazioneIntento = "Dichiarazione d'Intento"

// CheckSpeseBancarie is registered in the catalogue but its policy has
// not been defined yet; it currently always passes.
func CheckSpeseBancarie(_ *invoice.Document, _ Reader) []Finding {
	return nil
}

// CheckDichiarazioneIntento is registered in the catalogue but its
// policy has not been defined yet; it currently always passes.
func CheckDichiarazioneIntento(_ *invoice.Document, _ Reader) []Finding {
	return nil
}
