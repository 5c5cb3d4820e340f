package store

// schemaStatements holds the idempotent DDL for the base tables. A
// document owns its schedules (cascade delete); payment associations
// are link records owned by neither side.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS soggetti (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		codice_soggetto TEXT,
		ragione_sociale TEXT NOT NULL,
		tipo_soggetto TEXT NOT NULL DEFAULT 'CLIENTE',
		partita_iva TEXT UNIQUE,
		codice_fiscale TEXT,
		tipo_fattura TEXT,
		indirizzo TEXT,
		cap TEXT,
		comune TEXT,
		provincia TEXT,
		email TEXT,
		telefono TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS documenti (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		soggetto_id INTEGER NOT NULL REFERENCES soggetti(id),
		tipo_documento TEXT,
		numero_documento TEXT,
		data_documento TEXT,
		data_registrazione TEXT,
		totale NUMERIC NOT NULL DEFAULT 0,
		importo_imponibile NUMERIC NOT NULL DEFAULT 0,
		segno INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS scadenze (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		id_documento INTEGER NOT NULL REFERENCES documenti(id) ON DELETE CASCADE,
		data_scadenza TEXT,
		importo_scadenza NUMERIC NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS pagamenti (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		data_pagamento TEXT,
		importo NUMERIC NOT NULL DEFAULT 0,
		modalita_pagamento TEXT,
		tipo_movimento TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS associazioni_pagamenti (
		id_associazione INTEGER PRIMARY KEY AUTOINCREMENT,
		id_pagamento INTEGER NOT NULL REFERENCES pagamenti(id),
		id_documento INTEGER NOT NULL REFERENCES documenti(id),
		importo_associato NUMERIC NOT NULL DEFAULT 0,
		tipo_associazione TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS dichiarazioni_intento (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		id_soggetto INTEGER NOT NULL REFERENCES soggetti(id),
		numero_dichiarazione TEXT,
		data_inizio TEXT,
		data_fine TEXT,
		plafond_iniziale NUMERIC NOT NULL DEFAULT 0,
		plafond_residuo NUMERIC NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS report_mensile (
		mese TEXT PRIMARY KEY,
		totale_acquisti NUMERIC NOT NULL DEFAULT 0,
		totale_vendite NUMERIC NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS utenti (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT,
		ultimo_accesso TEXT
	)`,
}
