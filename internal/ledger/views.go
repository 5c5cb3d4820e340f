package ledger

// isoDate converts a day-first date expression to ISO inside SQLite;
// already-ISO and unparseable values pass through untouched. The store
// historically mixes both shapes.
const isoDateExpr = `CASE
	WHEN length(%[1]s) >= 10 AND substr(%[1]s, 3, 1) = '/' AND substr(%[1]s, 6, 1) = '/'
	THEN substr(%[1]s, 7, 4) || '-' || substr(%[1]s, 4, 2) || '-' || substr(%[1]s, 1, 2)
	ELSE %[1]s
END`

// rebuildMonthlyReportSQL aggregates documents into report_mensile.
// Only dates with the exact DD/MM/YYYY shape participate; the month key
// is YYYY-MM.
const rebuildMonthlyReportSQL = `
	INSERT INTO report_mensile (mese, totale_acquisti, totale_vendite)
	SELECT substr(data_documento, 7, 4) || '-' || substr(data_documento, 4, 2) AS mese,
		COALESCE(SUM(CASE WHEN segno = -1 THEN totale ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN segno = 1 THEN totale ELSE 0 END), 0)
	FROM documenti
	WHERE length(data_documento) >= 10
		AND substr(data_documento, 3, 1) = '/'
		AND substr(data_documento, 6, 1) = '/'
	GROUP BY mese`

// viewStatements creates the stored derived relations. vista_movimenti
// is the union of the document branch and the settling-payment branch;
// the scaduto views net overdue schedules against associated payments
// and keep parties whose remainder exceeds the 0.01 threshold. Views
// are dropped and recreated so stores carried over from older versions
// pick up the current definitions.
var viewStatements = []string{
	`DROP VIEW IF EXISTS vista_movimenti`,
	`DROP VIEW IF EXISTS scaduto_clienti`,
	`DROP VIEW IF EXISTS scaduto_fornitori`,

	`CREATE VIEW IF NOT EXISTS vista_movimenti AS
	SELECT s.id AS soggetto_id,
		s.ragione_sociale AS ragione_sociale,
		CASE
			WHEN length(d.data_documento) >= 10 AND substr(d.data_documento, 3, 1) = '/' AND substr(d.data_documento, 6, 1) = '/'
			THEN substr(d.data_documento, 7, 4) || '-' || substr(d.data_documento, 4, 2) || '-' || substr(d.data_documento, 1, 2)
			ELSE d.data_documento
		END AS data_movimento,
		'Documento ' || COALESCE(d.tipo_documento, '') || ' n.' || COALESCE(d.numero_documento, '') AS descrizione,
		CASE WHEN d.segno = 1 THEN d.totale ELSE 0 END AS dare,
		CASE WHEN d.segno = -1 THEN d.totale ELSE 0 END AS avere
	FROM documenti d
	JOIN soggetti s ON s.id = d.soggetto_id
	UNION ALL
	SELECT s.id AS soggetto_id,
		s.ragione_sociale AS ragione_sociale,
		CASE
			WHEN length(p.data_pagamento) >= 10 AND substr(p.data_pagamento, 3, 1) = '/' AND substr(p.data_pagamento, 6, 1) = '/'
			THEN substr(p.data_pagamento, 7, 4) || '-' || substr(p.data_pagamento, 4, 2) || '-' || substr(p.data_pagamento, 1, 2)
			ELSE p.data_pagamento
		END AS data_movimento,
		CASE
			WHEN p.modalita_pagamento = 'STORNO_NOTA_CREDITO'
			THEN 'Storno Nota Credito - Doc. ' || COALESCE(d.tipo_documento, '') || ' ' || COALESCE(d.numero_documento, '')
			ELSE 'Pagamento ' || COALESCE(p.modalita_pagamento, '') || ' - Doc. ' || COALESCE(d.tipo_documento, '') || ' ' || COALESCE(d.numero_documento, '')
		END AS descrizione,
		CASE
			WHEN p.tipo_movimento = 'PAGAMENTO' THEN a.importo_associato
			WHEN p.tipo_movimento IS NULL AND d.segno = -1 THEN a.importo_associato
			ELSE 0
		END AS dare,
		CASE
			WHEN p.tipo_movimento = 'INCASSO' THEN a.importo_associato
			WHEN p.tipo_movimento IS NULL AND d.segno = 1 THEN a.importo_associato
			ELSE 0
		END AS avere
	FROM associazioni_pagamenti a
	JOIN pagamenti p ON p.id = a.id_pagamento
	JOIN documenti d ON d.id = a.id_documento
	JOIN soggetti s ON s.id = d.soggetto_id
	WHERE a.tipo_associazione = 'PAGAMENTO'`,

	overdueViewSQL("scaduto_clienti", 1),
	overdueViewSQL("scaduto_fornitori", -1),
}
