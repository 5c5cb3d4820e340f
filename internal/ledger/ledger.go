// Package ledger computes the derived relations over the base tables:
// the materialised monthly report, the unified movement view and the
// overdue-by-party views.
package ledger

import (
	"database/sql"
	"fmt"

	"fjacquet/fattura-desk/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Kind selects one of the two overdue-by-party views.
type Kind string

const (
	// Clienti filters receivable documents (segno = +1).
	Clienti Kind = "clienti"
	// Fornitori filters payable documents (segno = -1).
	Fornitori Kind = "fornitori"
)

// Service evaluates the ledger derivations over an open store
// connection.
type Service struct {
	db *sql.DB
}

// New creates a derivation service and ensures the derived views
// exist.
func New(db *sql.DB) (*Service, error) {
	s := &Service{db: db}
	if err := s.ensureViews(); err != nil {
		return nil, err
	}
	return s, nil
}

// ensureViews creates the stored derived relations when missing.
func (s *Service) ensureViews() error {
	for _, stmt := range viewStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("error creating derived views: %w", err)
		}
	}
	return nil
}

// RebuildMonthlyReport recomputes the report_mensile table wholesale:
// truncate, then one row per YYYY-MM month with purchase and sale
// totals. Only documents whose date has the exact day-first shape
// participate. The rebuild is transactional and idempotent.
func (s *Service) RebuildMonthlyReport() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting report rebuild: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM report_mensile`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("error truncating monthly report: %w", err)
	}

	if _, err := tx.Exec(rebuildMonthlyReportSQL); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("error recomputing monthly report: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing monthly report: %w", err)
	}

	log.Debug("Monthly report rebuilt")
	return nil
}

// MonthlyReport returns the materialised rows, newest month first.
// limit caps the result when positive.
func (s *Service) MonthlyReport(limit int) ([]models.ReportMensileRow, error) {
	query := `SELECT mese, totale_acquisti, totale_vendite
		FROM report_mensile ORDER BY mese DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error reading monthly report: %w", err)
	}
	defer rows.Close()

	var report []models.ReportMensileRow
	for rows.Next() {
		var r models.ReportMensileRow
		var acquisti, vendite sql.NullString
		if err := rows.Scan(&r.Mese, &acquisti, &vendite); err != nil {
			return nil, fmt.Errorf("error scanning report row: %w", err)
		}
		r.TotaleAcquisti = decimalOrZero(acquisti)
		r.TotaleVendite = decimalOrZero(vendite)
		report = append(report, r)
	}
	return report, rows.Err()
}

// LastMonthsAscending returns the n most recent months in ascending
// order, the shape the report surface renders.
func (s *Service) LastMonthsAscending(n int) ([]models.ReportMensileRow, error) {
	newest, err := s.MonthlyReport(n)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(newest)-1; i < j; i, j = i+1, j-1 {
		newest[i], newest[j] = newest[j], newest[i]
	}
	return newest, nil
}

// Movements reads the unified movement view, oldest first. partyID
// restricts to one party when positive.
func (s *Service) Movements(partyID int64) ([]models.Movimento, error) {
	query := `SELECT soggetto_id, ragione_sociale, data_movimento, descrizione, dare, avere
		FROM vista_movimenti`
	var args []any
	if partyID > 0 {
		query += ` WHERE soggetto_id = ?`
		args = append(args, partyID)
	}
	query += ` ORDER BY data_movimento, soggetto_id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error reading movements: %w", err)
	}
	defer rows.Close()

	var movements []models.Movimento
	for rows.Next() {
		var m models.Movimento
		var dare, avere sql.NullString
		err := rows.Scan(&m.SoggettoID, &m.RagioneSociale,
			&m.DataMovimento, &m.Descrizione, &dare, &avere)
		if err != nil {
			return nil, fmt.Errorf("error scanning movement: %w", err)
		}
		m.Dare = decimalOrZero(dare)
		m.Avere = decimalOrZero(avere)
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// PartyBalance returns dare minus avere over the movement view for one
// party. A fully-settled party nets to zero.
func (s *Service) PartyBalance(partyID int64) (decimal.Decimal, error) {
	movements, err := s.Movements(partyID)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, m := range movements {
		balance = balance.Add(m.Dare).Sub(m.Avere)
	}
	return balance, nil
}

// Overdue reads one of the overdue-by-party views, ordered by display
// name.
func (s *Service) Overdue(kind Kind) ([]models.ScadutoRow, error) {
	view := "scaduto_clienti"
	if kind == Fornitori {
		view = "scaduto_fornitori"
	}

	rows, err := s.db.Query(`SELECT id, codice, ragione_sociale,
		numero_scadenze_scadute, totale_scadenze, totale_pagato, saldo_scaduto
		FROM ` + view + ` ORDER BY ragione_sociale`)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", view, err)
	}
	defer rows.Close()

	var overdue []models.ScadutoRow
	for rows.Next() {
		var r models.ScadutoRow
		var codice sql.NullString
		var totale, pagato, saldo sql.NullString
		err := rows.Scan(&r.ID, &codice, &r.RagioneSociale,
			&r.NumeroScadenzeScadute, &totale, &pagato, &saldo)
		if err != nil {
			return nil, fmt.Errorf("error scanning overdue row: %w", err)
		}
		r.Codice = codice.String
		r.TotaleScadenze = decimalOrZero(totale)
		r.TotalePagato = decimalOrZero(pagato)
		r.SaldoScaduto = decimalOrZero(saldo)
		overdue = append(overdue, r)
	}
	return overdue, rows.Err()
}

// decimalOrZero converts a scanned nullable string into a decimal,
// treating NULL and garbage as zero.
func decimalOrZero(v sql.NullString) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v.String)
	if err != nil {
		return decimal.Zero
	}
	return d
}
