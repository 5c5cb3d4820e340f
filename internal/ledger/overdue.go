package ledger

import "fmt"

// overdueViewSQL builds one of the two sibling overdue views. They
// differ only in the document sign they filter: +1 for clients, -1 for
// suppliers. A schedule is overdue when its due date, normalised to
// ISO, falls strictly before today; a party appears only when the
// overdue total net of associated payments exceeds 0.01. Payments
// count only when they settle a document that has an overdue schedule,
// so paying a not-yet-due document never shrinks the balance. The
// remainder is compared and emitted on rounded cents to keep REAL
// arithmetic noise out of the threshold.
func overdueViewSQL(name string, segno int) string {
	dueDate := fmt.Sprintf(isoDateExpr, "sc.data_scadenza")
	paidDueDate := fmt.Sprintf(isoDateExpr, "sc2.data_scadenza")

	return fmt.Sprintf(`CREATE VIEW IF NOT EXISTS %s AS
	SELECT s.id AS id,
		COALESCE(s.codice_soggetto, '') AS codice,
		s.ragione_sociale AS ragione_sociale,
		ov.numero_scadenze_scadute AS numero_scadenze_scadute,
		ov.totale_scadenze AS totale_scadenze,
		COALESCE(pg.totale_pagato, 0) AS totale_pagato,
		ROUND(ov.totale_scadenze - COALESCE(pg.totale_pagato, 0), 2) AS saldo_scaduto
	FROM soggetti s
	JOIN (
		SELECT d.soggetto_id AS soggetto_id,
			COUNT(*) AS numero_scadenze_scadute,
			SUM(sc.importo_scadenza) AS totale_scadenze
		FROM scadenze sc
		JOIN documenti d ON d.id = sc.id_documento
		WHERE d.segno = %d AND %s < date('now')
		GROUP BY d.soggetto_id
	) ov ON ov.soggetto_id = s.id
	LEFT JOIN (
		SELECT d.soggetto_id AS soggetto_id,
			SUM(a.importo_associato) AS totale_pagato
		FROM associazioni_pagamenti a
		JOIN documenti d ON d.id = a.id_documento
		WHERE d.segno = %d AND a.tipo_associazione = 'PAGAMENTO'
			AND d.id IN (
				SELECT sc2.id_documento FROM scadenze sc2
				WHERE %s < date('now')
			)
		GROUP BY d.soggetto_id
	) pg ON pg.soggetto_id = s.id
	WHERE ROUND(ov.totale_scadenze - COALESCE(pg.totale_pagato, 0), 2) > 0.01`,
		name, segno, dueDate, segno, paidDueDate)
}
