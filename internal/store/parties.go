package store

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"fjacquet/fattura-desk/internal/models"
)

const partyColumns = `id, codice_soggetto, ragione_sociale, tipo_soggetto,
	partita_iva, codice_fiscale, tipo_fattura,
	indirizzo, cap, comune, provincia, email, telefono`

// updatableClientColumns are the soggetti columns UpdateClient accepts.
var updatableClientColumns = map[string]bool{
	"codice_soggetto": true,
	"ragione_sociale": true,
	"tipo_soggetto":   true,
	"partita_iva":     true,
	"codice_fiscale":  true,
	"tipo_fattura":    true,
	"indirizzo":       true,
	"cap":             true,
	"comune":          true,
	"provincia":       true,
	"email":           true,
	"telefono":        true,
}

func scanParty(row interface{ Scan(...any) error }) (*models.Soggetto, error) {
	var p models.Soggetto
	var codice, partitaIVA, codiceFiscale, tipoFattura sql.NullString
	var indirizzo, cap, comune, provincia, email, telefono sql.NullString

	err := row.Scan(&p.ID, &codice, &p.RagioneSociale, &p.TipoSoggetto,
		&partitaIVA, &codiceFiscale, &tipoFattura,
		&indirizzo, &cap, &comune, &provincia, &email, &telefono)
	if err != nil {
		return nil, err
	}

	p.CodiceSoggetto = codice.String
	p.PartitaIVA = partitaIVA.String
	p.CodiceFiscale = codiceFiscale.String
	if tipoFattura.Valid {
		p.TipoFattura = &tipoFattura.String
	}
	p.Indirizzo = indirizzo.String
	p.CAP = cap.String
	p.Comune = comune.String
	p.Provincia = provincia.String
	p.Email = email.String
	p.Telefono = telefono.String
	return &p, nil
}

// PartyByVAT returns the party with the given VAT number, or nil when
// no such party exists. The VAT number is the only key used for
// matching against parsed invoices.
func (s *Store) PartyByVAT(piva string) (*models.Soggetto, error) {
	row := s.db.QueryRow(
		`SELECT `+partyColumns+` FROM soggetti WHERE partita_iva = ?`, piva)

	party, err := scanParty(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading party by VAT %s: %w", piva, err)
	}
	return party, nil
}

// ClientByID returns the party with the given surrogate key, or nil
// when it does not exist.
func (s *Store) ClientByID(id int64) (*models.Soggetto, error) {
	row := s.db.QueryRow(
		`SELECT `+partyColumns+` FROM soggetti WHERE id = ?`, id)

	party, err := scanParty(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading party %d: %w", id, err)
	}
	return party, nil
}

// FetchClients lists parties ordered by display name. With onlyCliente
// set, parties stored with a different role are filtered out.
func (s *Store) FetchClients(onlyCliente bool) ([]models.Soggetto, error) {
	query := `SELECT ` + partyColumns + ` FROM soggetti`
	var args []any
	if onlyCliente {
		query += ` WHERE tipo_soggetto = ?`
		args = append(args, models.TipoSoggettoCliente)
	}
	query += ` ORDER BY ragione_sociale`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing parties: %w", err)
	}
	defer rows.Close()

	var parties []models.Soggetto
	for rows.Next() {
		party, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning party: %w", err)
		}
		parties = append(parties, *party)
	}
	return parties, rows.Err()
}

// UpdateClient updates the given columns of one party. Unknown column
// names are rejected so callers cannot write outside the soggetti
// surface.
func (s *Store) UpdateClient(id int64, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	columns := make([]string, 0, len(fields))
	for column := range fields {
		if !updatableClientColumns[column] {
			return fmt.Errorf("column %s is not updatable", column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns)+1)
	for _, column := range columns {
		assignments = append(assignments, column+" = ?")
		args = append(args, fields[column])
	}
	args = append(args, id)

	query := `UPDATE soggetti SET ` + strings.Join(assignments, ", ") + ` WHERE id = ?`
	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("error updating party %d: %w", id, err)
	}

	log.WithFields(map[string]any{"id": id, "columns": columns}).Debug("Party updated")
	return nil
}

// InsertParty creates a new party and fills in its surrogate key.
func (s *Store) InsertParty(p *models.Soggetto) error {
	result, err := s.db.Exec(
		`INSERT INTO soggetti (codice_soggetto, ragione_sociale, tipo_soggetto,
			partita_iva, codice_fiscale, tipo_fattura,
			indirizzo, cap, comune, provincia, email, telefono)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullable(p.CodiceSoggetto), p.RagioneSociale, p.TipoSoggetto,
		nullable(p.PartitaIVA), nullable(p.CodiceFiscale), p.TipoFattura,
		nullable(p.Indirizzo), nullable(p.CAP), nullable(p.Comune),
		nullable(p.Provincia), nullable(p.Email), nullable(p.Telefono))
	if err != nil {
		return fmt.Errorf("error inserting party %s: %w", p.RagioneSociale, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading party id: %w", err)
	}
	p.ID = id
	return nil
}

// nullable maps the empty string to NULL so optional columns stay
// unset instead of holding empty text.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
