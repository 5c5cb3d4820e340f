package invoice

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/fattura-desk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInvoice = `<?xml version="1.0" encoding="UTF-8"?>
<FatturaElettronica>
	<FatturaElettronicaHeader>
		<CedentePrestatore>
			<DatiAnagrafici>
				<IdFiscaleIVA>
					<IdPaese>IT</IdPaese>
					<IdCodice>IT01234567890</IdCodice>
				</IdFiscaleIVA>
				<Anagrafica>
					<Denominazione>Fornitore SRL</Denominazione>
				</Anagrafica>
			</DatiAnagrafici>
		</CedentePrestatore>
	</FatturaElettronicaHeader>
	<FatturaElettronicaBody>
		<DatiGenerali>
			<DatiGeneraliDocumento>
				<TipoDocumento>TD24</TipoDocumento>
				<Divisa>EUR</Divisa>
				<Data>2024-03-15</Data>
				<Numero>42/A</Numero>
				<ImportoTotaleDocumento>122.00</ImportoTotaleDocumento>
			</DatiGeneraliDocumento>
		</DatiGenerali>
		<DatiBeniServizi>
			<DettaglioLinee>
				<NumeroLinea>1</NumeroLinea>
				<Descrizione>Viti in acciaio</Descrizione>
				<Quantita>2,5</Quantita>
				<UnitaMisura>PZ</UnitaMisura>
				<PrezzoUnitario>10,00</PrezzoUnitario>
			</DettaglioLinee>
			<DettaglioLinee>
				<NumeroLinea>2</NumeroLinea>
				<Descrizione>Contributo trasporto</Descrizione>
				<Quantita>0</Quantita>
			</DettaglioLinee>
		</DatiBeniServizi>
		<DatiPagamento>
			<DettaglioPagamento>
				<DataScadenzaPagamento>2024-04-30</DataScadenzaPagamento>
				<ImportoPagamento>122.00</ImportoPagamento>
			</DettaglioPagamento>
		</DatiPagamento>
	</FatturaElettronicaBody>
</FatturaElettronica>`

func writeInvoice(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fattura.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loads well-formed invoice", func(t *testing.T) {
		doc, err := Load(writeInvoice(t, sampleInvoice))
		require.NoError(t, err)
		assert.Equal(t, "TD24", doc.TipoDocumento())
		assert.Equal(t, "42/A", doc.NumeroDocumento())
		assert.Equal(t, "2024-03-15", doc.Data())
		assert.Equal(t, "122.00", doc.ImportoTotale())
	})

	t.Run("fails on missing file", func(t *testing.T) {
		_, err := Load("/non/existent/fattura.xml")
		assert.Error(t, err)
	})

	t.Run("fails on ill-formed XML", func(t *testing.T) {
		_, err := Load(writeInvoice(t, "<FatturaElettronica><unclosed>"))
		assert.Error(t, err)
	})
}

func TestLines(t *testing.T) {
	doc, err := Load(writeInvoice(t, sampleInvoice))
	require.NoError(t, err)

	lines := doc.Lines()
	require.Len(t, lines, 2)

	assert.Equal(t, "1", lines[0].Numero)
	assert.Equal(t, "PZ", lines[0].UnitaMisura)
	assert.Equal(t, "2,5", lines[0].Quantita)
	assert.Equal(t, "10,00", lines[0].PrezzoUnitario)

	// Descriptive line carries no unit of measure.
	assert.Equal(t, "2", lines[1].Numero)
	assert.Empty(t, lines[1].UnitaMisura)
}

func TestCounterpartyVAT(t *testing.T) {
	t.Run("seller fallback implies supplier role", func(t *testing.T) {
		doc, err := Load(writeInvoice(t, sampleInvoice))
		require.NoError(t, err)

		piva, role := doc.CounterpartyVAT()
		assert.Equal(t, "IT01234567890", piva)
		assert.Equal(t, models.TipoSoggettoFornitore, role)
		assert.Equal(t, "Fornitore SRL", doc.CounterpartyName(role))
	})

	t.Run("buyer takes precedence and implies client role", func(t *testing.T) {
		withBuyer := `<?xml version="1.0"?>
<FatturaElettronica>
	<CessionarioCommittente>
		<DatiAnagrafici>
			<IdFiscaleIVA><IdCodice>IT09876543210</IdCodice></IdFiscaleIVA>
		</DatiAnagrafici>
	</CessionarioCommittente>
	<DatiGenerali>
		<DatiGeneraliDocumento><TipoDocumento>TD01</TipoDocumento></DatiGeneraliDocumento>
	</DatiGenerali>
</FatturaElettronica>`
		doc, err := Load(writeInvoice(t, withBuyer))
		require.NoError(t, err)

		piva, role := doc.CounterpartyVAT()
		assert.Equal(t, "IT09876543210", piva)
		assert.Equal(t, models.TipoSoggettoCliente, role)
	})
}

func TestSchedules(t *testing.T) {
	doc, err := Load(writeInvoice(t, sampleInvoice))
	require.NoError(t, err)

	schedules := doc.Schedules()
	require.Len(t, schedules, 1)
	assert.Equal(t, "2024-04-30", schedules[0].DataScadenza)
	assert.Equal(t, "122.00", schedules[0].Importo)
}

func TestValidateFormat(t *testing.T) {
	t.Run("accepts FatturaPA invoice", func(t *testing.T) {
		ok, err := ValidateFormat(writeInvoice(t, sampleInvoice))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects unrelated XML", func(t *testing.T) {
		ok, err := ValidateFormat(writeInvoice(t, `<?xml version="1.0"?><root><x>1</x></root>`))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rejects ill-formed XML without error", func(t *testing.T) {
		ok, err := ValidateFormat(writeInvoice(t, "<broken"))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
