package store

import (
	"path/filepath"
	"testing"

	"fjacquet/fattura-desk/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "fatture.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen(t *testing.T) {
	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deeper", "fatture.db")
		s, err := Open(path)
		require.NoError(t, err)
		defer s.Close()
		assert.FileExists(t, path)
	})

	t.Run("reopening an existing store is a no-op", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fatture.db")
		s, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, s.InsertParty(&models.Soggetto{
			RagioneSociale: "Cliente SRL",
			TipoSoggetto:   models.TipoSoggettoCliente,
			PartitaIVA:     "IT01",
		}))
		require.NoError(t, s.Close())

		s, err = Open(path)
		require.NoError(t, err)
		defer s.Close()

		party, err := s.PartyByVAT("IT01")
		require.NoError(t, err)
		require.NotNil(t, party)
		assert.Equal(t, "Cliente SRL", party.RagioneSociale)
	})
}

func TestParties(t *testing.T) {
	t.Run("lookup by VAT returns nil for unknown numbers", func(t *testing.T) {
		s := openTestStore(t)
		party, err := s.PartyByVAT("IT99999999999")
		require.NoError(t, err)
		assert.Nil(t, party)
	})

	t.Run("insert fills the surrogate key and round-trips", func(t *testing.T) {
		s := openTestStore(t)
		tipo := "TD01"
		p := &models.Soggetto{
			CodiceSoggetto: "C001",
			RagioneSociale: "Cliente SRL",
			TipoSoggetto:   models.TipoSoggettoCliente,
			PartitaIVA:     "IT01234567890",
			TipoFattura:    &tipo,
			Comune:         "Milano",
		}
		require.NoError(t, s.InsertParty(p))
		assert.Greater(t, p.ID, int64(0))

		got, err := s.ClientByID(p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "C001", got.CodiceSoggetto)
		assert.Equal(t, "Milano", got.Comune)
		require.NotNil(t, got.TipoFattura)
		assert.Equal(t, "TD01", *got.TipoFattura)
	})

	t.Run("duplicate VAT numbers are rejected", func(t *testing.T) {
		s := openTestStore(t)
		require.NoError(t, s.InsertParty(&models.Soggetto{
			RagioneSociale: "Primo", TipoSoggetto: models.TipoSoggettoCliente, PartitaIVA: "IT01",
		}))
		err := s.InsertParty(&models.Soggetto{
			RagioneSociale: "Secondo", TipoSoggetto: models.TipoSoggettoCliente, PartitaIVA: "IT01",
		})
		assert.Error(t, err)
	})

	t.Run("listing filters by role and orders by name", func(t *testing.T) {
		s := openTestStore(t)
		for _, p := range []models.Soggetto{
			{RagioneSociale: "Zeta SRL", TipoSoggetto: models.TipoSoggettoCliente, PartitaIVA: "IT01"},
			{RagioneSociale: "Alfa SRL", TipoSoggetto: models.TipoSoggettoCliente, PartitaIVA: "IT02"},
			{RagioneSociale: "Fornitore SPA", TipoSoggetto: models.TipoSoggettoFornitore, PartitaIVA: "IT03"},
		} {
			party := p
			require.NoError(t, s.InsertParty(&party))
		}

		all, err := s.FetchClients(false)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Alfa SRL", all[0].RagioneSociale)

		clients, err := s.FetchClients(true)
		require.NoError(t, err)
		require.Len(t, clients, 2)
		for _, c := range clients {
			assert.True(t, c.IsCliente())
		}
	})

	t.Run("update writes whitelisted columns only", func(t *testing.T) {
		s := openTestStore(t)
		p := &models.Soggetto{
			RagioneSociale: "Cliente SRL", TipoSoggetto: models.TipoSoggettoCliente, PartitaIVA: "IT01",
		}
		require.NoError(t, s.InsertParty(p))

		require.NoError(t, s.UpdateClient(p.ID, map[string]string{
			"email":        "amministrazione@cliente.it",
			"tipo_fattura": "TD24",
		}))

		got, err := s.ClientByID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, "amministrazione@cliente.it", got.Email)
		require.NotNil(t, got.TipoFattura)
		assert.Equal(t, "TD24", *got.TipoFattura)

		err = s.UpdateClient(p.ID, map[string]string{"id": "7"})
		assert.Error(t, err)
	})
}

func TestDocuments(t *testing.T) {
	newParty := func(t *testing.T, s *Store) int64 {
		p := &models.Soggetto{
			RagioneSociale: "Cliente SRL", TipoSoggetto: models.TipoSoggettoCliente, PartitaIVA: "IT01",
		}
		require.NoError(t, s.InsertParty(p))
		return p.ID
	}

	t.Run("document and schedules commit together", func(t *testing.T) {
		s := openTestStore(t)
		partyID := newParty(t, s)

		d := &models.Documento{
			SoggettoID:      partyID,
			TipoDocumento:   "TD01",
			NumeroDocumento: "42",
			DataDocumento:   "15/03/2024",
			Totale:          decimal.NewFromFloat(1220.50),
			Segno:           models.SegnoVendita,
		}
		schedules := []models.Scadenza{
			{DataScadenza: "15/04/2024", ImportoScadenza: decimal.NewFromFloat(610.25)},
			{DataScadenza: "15/05/2024", ImportoScadenza: decimal.NewFromFloat(610.25)},
		}
		require.NoError(t, s.InsertDocument(d, schedules))
		assert.Greater(t, d.ID, int64(0))
		for _, sc := range schedules {
			assert.Equal(t, d.ID, sc.IDDocumento)
			assert.Greater(t, sc.ID, int64(0))
		}

		docs, err := s.FetchDocuments(partyID, 0)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.True(t, decimal.NewFromFloat(1220.50).Equal(docs[0].Totale))
	})

	t.Run("existence check matches party, type, number and date", func(t *testing.T) {
		s := openTestStore(t)
		partyID := newParty(t, s)
		require.NoError(t, s.InsertDocument(&models.Documento{
			SoggettoID: partyID, TipoDocumento: "TD01", NumeroDocumento: "42",
			DataDocumento: "15/03/2024", Totale: decimal.NewFromInt(100), Segno: models.SegnoVendita,
		}, nil))

		exists, err := s.DocumentExists(partyID, "TD01", "42", "15/03/2024")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = s.DocumentExists(partyID, "TD01", "43", "15/03/2024")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("listing is newest first and honours the limit", func(t *testing.T) {
		s := openTestStore(t)
		partyID := newParty(t, s)
		for _, numero := range []string{"1", "2", "3"} {
			require.NoError(t, s.InsertDocument(&models.Documento{
				SoggettoID: partyID, TipoDocumento: "TD01", NumeroDocumento: numero,
				DataDocumento: "15/03/2024", Totale: decimal.NewFromInt(10), Segno: models.SegnoVendita,
			}, nil))
		}

		docs, err := s.FetchDocuments(partyID, 2)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "3", docs[0].NumeroDocumento)
		assert.Equal(t, "2", docs[1].NumeroDocumento)
	})
}

func TestPaymentsAndDeclarations(t *testing.T) {
	t.Run("payment and association fill surrogate keys", func(t *testing.T) {
		s := openTestStore(t)
		p := &models.Soggetto{
			RagioneSociale: "Cliente SRL", TipoSoggetto: models.TipoSoggettoCliente, PartitaIVA: "IT01",
		}
		require.NoError(t, s.InsertParty(p))
		d := &models.Documento{
			SoggettoID: p.ID, TipoDocumento: "TD01", NumeroDocumento: "1",
			DataDocumento: "15/03/2024", Totale: decimal.NewFromInt(100), Segno: models.SegnoVendita,
		}
		require.NoError(t, s.InsertDocument(d, nil))

		pay := &models.Pagamento{
			DataPagamento:     "20/03/2024",
			Importo:           decimal.NewFromInt(100),
			ModalitaPagamento: "BONIFICO",
		}
		require.NoError(t, s.InsertPayment(pay))
		assert.Greater(t, pay.ID, int64(0))

		assoc := &models.AssociazionePagamento{
			IDPagamento:      pay.ID,
			IDDocumento:      d.ID,
			ImportoAssociato: decimal.NewFromInt(100),
			TipoAssociazione: models.TipoAssociazionePagamento,
		}
		require.NoError(t, s.InsertAssociation(assoc))
		assert.Greater(t, assoc.IDAssociazione, int64(0))
	})

	t.Run("invalid declarations are rejected before touching the store", func(t *testing.T) {
		s := openTestStore(t)
		err := s.InsertDichiarazione(&models.DichiarazioneIntento{
			NumeroDichiarazione: "D1",
			DataInizio:          "2024-12-31",
			DataFine:            "2024-01-01",
			PlafondIniziale:     decimal.NewFromInt(1000),
			PlafondResiduo:      decimal.NewFromInt(1000),
		})
		assert.Error(t, err)
	})

	t.Run("valid declarations round-trip the plafond", func(t *testing.T) {
		s := openTestStore(t)
		p := &models.Soggetto{
			RagioneSociale: "Cliente SRL", TipoSoggetto: models.TipoSoggettoCliente, PartitaIVA: "IT01",
		}
		require.NoError(t, s.InsertParty(p))

		d := &models.DichiarazioneIntento{
			IDSoggetto:          p.ID,
			NumeroDichiarazione: "D1",
			DataInizio:          "2024-01-01",
			DataFine:            "2024-12-31",
			PlafondIniziale:     decimal.NewFromInt(50000),
			PlafondResiduo:      decimal.NewFromInt(50000),
		}
		require.NoError(t, s.InsertDichiarazione(d))
		assert.Greater(t, d.ID, int64(0))
	})
}
