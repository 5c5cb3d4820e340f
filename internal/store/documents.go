package store

import (
	"database/sql"
	"fmt"

	"fjacquet/fattura-desk/internal/models"
)

// FetchDocuments lists documents newest-first by registration order.
// partyID restricts to one party when positive; limit caps the result
// when positive.
func (s *Store) FetchDocuments(partyID int64, limit int) ([]models.Documento, error) {
	query := `SELECT id, soggetto_id, tipo_documento, numero_documento,
		data_documento, data_registrazione, totale, importo_imponibile, segno
		FROM documenti`
	var args []any
	if partyID > 0 {
		query += ` WHERE soggetto_id = ?`
		args = append(args, partyID)
	}
	query += ` ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}
	defer rows.Close()

	var documents []models.Documento
	for rows.Next() {
		var d models.Documento
		var tipo, numero, data, registrazione sql.NullString
		var totale, imponibile sql.NullString

		err := rows.Scan(&d.ID, &d.SoggettoID, &tipo, &numero,
			&data, &registrazione, &totale, &imponibile, &d.Segno)
		if err != nil {
			return nil, fmt.Errorf("error scanning document: %w", err)
		}

		d.TipoDocumento = tipo.String
		d.NumeroDocumento = numero.String
		d.DataDocumento = data.String
		d.DataRegistrazione = registrazione.String
		d.Totale = scanDecimal(totale)
		d.ImportoImponibile = scanDecimal(imponibile)
		documents = append(documents, d)
	}
	return documents, rows.Err()
}

// DocumentExists reports whether a document with the same party, type,
// number and date is already stored. The importer uses it to skip
// re-ingested files.
func (s *Store) DocumentExists(partyID int64, tipo, numero, data string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM documenti
		WHERE soggetto_id = ? AND tipo_documento = ? AND numero_documento = ? AND data_documento = ?`,
		partyID, tipo, numero, data).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("error checking document existence: %w", err)
	}
	return count > 0, nil
}

// InsertDocument creates a document together with its schedules in one
// transaction and fills in the surrogate keys.
func (s *Store) InsertDocument(d *models.Documento, schedules []models.Scadenza) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	result, err := tx.Exec(
		`INSERT INTO documenti (soggetto_id, tipo_documento, numero_documento,
			data_documento, data_registrazione, totale, importo_imponibile, segno)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.SoggettoID, d.TipoDocumento, d.NumeroDocumento,
		d.DataDocumento, d.DataRegistrazione,
		d.Totale.String(), d.ImportoImponibile.String(), d.Segno)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("error inserting document %s: %w", d.NumeroDocumento, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("error reading document id: %w", err)
	}
	d.ID = id

	for i := range schedules {
		schedules[i].IDDocumento = id
		result, err := tx.Exec(
			`INSERT INTO scadenze (id_documento, data_scadenza, importo_scadenza)
			VALUES (?, ?, ?)`,
			id, schedules[i].DataScadenza, schedules[i].ImportoScadenza.String())
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("error inserting schedule: %w", err)
		}
		if schedules[i].ID, err = result.LastInsertId(); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("error reading schedule id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing document: %w", err)
	}
	return nil
}

// InsertSchedule adds one due line to an existing document.
func (s *Store) InsertSchedule(sc *models.Scadenza) error {
	result, err := s.db.Exec(
		`INSERT INTO scadenze (id_documento, data_scadenza, importo_scadenza)
		VALUES (?, ?, ?)`,
		sc.IDDocumento, sc.DataScadenza, sc.ImportoScadenza.String())
	if err != nil {
		return fmt.Errorf("error inserting schedule: %w", err)
	}
	sc.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading schedule id: %w", err)
	}
	return nil
}

// InsertPayment creates a cash movement and fills in its surrogate key.
func (s *Store) InsertPayment(p *models.Pagamento) error {
	result, err := s.db.Exec(
		`INSERT INTO pagamenti (data_pagamento, importo, modalita_pagamento, tipo_movimento)
		VALUES (?, ?, ?, ?)`,
		p.DataPagamento, p.Importo.String(), p.ModalitaPagamento, p.TipoMovimento)
	if err != nil {
		return fmt.Errorf("error inserting payment: %w", err)
	}
	p.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading payment id: %w", err)
	}
	return nil
}

// InsertAssociation links a payment to a document.
func (s *Store) InsertAssociation(a *models.AssociazionePagamento) error {
	result, err := s.db.Exec(
		`INSERT INTO associazioni_pagamenti (id_pagamento, id_documento, importo_associato, tipo_associazione)
		VALUES (?, ?, ?, ?)`,
		a.IDPagamento, a.IDDocumento, a.ImportoAssociato.String(), a.TipoAssociazione)
	if err != nil {
		return fmt.Errorf("error inserting payment association: %w", err)
	}
	a.IDAssociazione, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading association id: %w", err)
	}
	return nil
}

// InsertDichiarazione creates a declaration of intent. The residual
// plafond starts equal to the initial one.
func (s *Store) InsertDichiarazione(d *models.DichiarazioneIntento) error {
	if !d.Valida() {
		return fmt.Errorf("invalid declaration window or plafond for %s", d.NumeroDichiarazione)
	}

	result, err := s.db.Exec(
		`INSERT INTO dichiarazioni_intento (id_soggetto, numero_dichiarazione,
			data_inizio, data_fine, plafond_iniziale, plafond_residuo)
		VALUES (?, ?, ?, ?, ?, ?)`,
		d.IDSoggetto, d.NumeroDichiarazione, d.DataInizio, d.DataFine,
		d.PlafondIniziale.String(), d.PlafondResiduo.String())
	if err != nil {
		return fmt.Errorf("error inserting declaration %s: %w", d.NumeroDichiarazione, err)
	}
	d.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading declaration id: %w", err)
	}
	return nil
}
