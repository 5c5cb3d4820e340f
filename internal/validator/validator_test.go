package validator

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/fattura-desk/internal/checks"
	"fjacquet/fattura-desk/internal/invoice"
	"fjacquet/fattura-desk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fakeReader struct {
	parties map[string]*models.Soggetto
}

func (f *fakeReader) PartyByVAT(piva string) (*models.Soggetto, error) {
	return f.parties[piva], nil
}

const twoLineInvoice = `<?xml version="1.0" encoding="UTF-8"?>
<FatturaElettronica>
	<DatiGenerali>
		<DatiGeneraliDocumento><TipoDocumento>TD01</TipoDocumento></DatiGeneraliDocumento>
	</DatiGenerali>
	<DatiBeniServizi>
		<DettaglioLinee>
			<NumeroLinea>1</NumeroLinea>
			<Quantita>2,5</Quantita>
			<UnitaMisura>PZ</UnitaMisura>
			<PrezzoUnitario>10,00</PrezzoUnitario>
		</DettaglioLinee>
		<DettaglioLinee>
			<NumeroLinea>2</NumeroLinea>
			<Quantita>0</Quantita>
		</DettaglioLinee>
	</DatiBeniServizi>
</FatturaElettronica>`

func writeInvoice(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fattura.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestValidate(t *testing.T) {
	pipeline := New(checks.NewRegistry(), &fakeReader{})

	t.Run("runs only the selected check", func(t *testing.T) {
		results, err := pipeline.Validate(writeInvoice(t, twoLineInvoice),
			[]string{checks.NameQuantitaPrezzo})
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, checks.NameQuantitaPrezzo, results[0].Name)
		assert.Empty(t, results[0].Findings)
	})

	t.Run("nil selection runs the whole catalogue in order", func(t *testing.T) {
		results, err := pipeline.Validate(writeInvoice(t, twoLineInvoice), nil)
		require.NoError(t, err)

		require.Len(t, results, 4)
		names := make([]string, len(results))
		for i, r := range results {
			names[i] = r.Name
		}
		assert.Equal(t, checks.NewRegistry().Names(), names)
	})

	t.Run("unknown names are silently skipped", func(t *testing.T) {
		results, err := pipeline.Validate(writeInvoice(t, twoLineInvoice),
			[]string{"Controllo Inesistente", checks.NameQuantitaPrezzo})
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, checks.NameQuantitaPrezzo, results[0].Name)
	})

	t.Run("caller order does not override catalogue order", func(t *testing.T) {
		results, err := pipeline.Validate(writeInvoice(t, twoLineInvoice),
			[]string{checks.NameTipoDocumento, checks.NameQuantitaPrezzo})
		require.NoError(t, err)

		require.Len(t, results, 2)
		assert.Equal(t, checks.NameQuantitaPrezzo, results[0].Name)
		assert.Equal(t, checks.NameTipoDocumento, results[1].Name)
	})

	t.Run("unreadable file aborts the whole call", func(t *testing.T) {
		_, err := pipeline.Validate("/non/existent/fattura.xml", nil)
		assert.Error(t, err)
	})

	t.Run("ill-formed XML aborts the whole call", func(t *testing.T) {
		_, err := pipeline.Validate(writeInvoice(t, "<broken"), nil)
		assert.Error(t, err)
	})

	t.Run("findings do not surface as errors", func(t *testing.T) {
		badLine := `<?xml version="1.0"?>
<FatturaElettronica>
	<DatiBeniServizi>
		<DettaglioLinee>
			<NumeroLinea>1</NumeroLinea>
			<Quantita>1</Quantita>
			<UnitaMisura>PZ</UnitaMisura>
			<PrezzoUnitario>0,00</PrezzoUnitario>
		</DettaglioLinee>
	</DatiBeniServizi>
</FatturaElettronica>`
		results, err := pipeline.Validate(writeInvoice(t, badLine),
			[]string{checks.NameQuantitaPrezzo})
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Len(t, results[0].Findings, 1)
	})
}

func TestReportWriteYAML(t *testing.T) {
	results := []checks.Result{
		{Name: checks.NameQuantitaPrezzo, Findings: []checks.Finding{{Message: "Linea 1"}}},
		{Name: checks.NameTipoDocumento},
	}
	report := NewReport("fattura.xml", results)
	assert.False(t, report.Passed)

	outPath := filepath.Join(t.TempDir(), "reports", "out.yaml")
	require.NoError(t, report.WriteYAML(outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "fattura.xml", decoded.File)
	require.Len(t, decoded.Results, 2)
	assert.Equal(t, "Linea 1", decoded.Results[0].Findings[0].Message)
}

func TestRegistryIsReusedAcrossRuns(t *testing.T) {
	registry := checks.NewRegistry()
	pipeline := New(registry, &fakeReader{})
	path := writeInvoice(t, twoLineInvoice)

	first, err := pipeline.Validate(path, nil)
	require.NoError(t, err)
	second, err := pipeline.Validate(path, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateUsesStoreReader(t *testing.T) {
	tipoFattura := "TD01"
	store := &fakeReader{parties: map[string]*models.Soggetto{
		"IT01": {
			RagioneSociale: "Fornitore SRL",
			PartitaIVA:     "IT01",
			TipoSoggetto:   models.TipoSoggettoFornitore,
			TipoFattura:    &tipoFattura,
		},
	}}
	pipeline := New(checks.NewRegistry(), store)

	withSeller := `<?xml version="1.0"?>
<FatturaElettronica>
	<CedentePrestatore>
		<DatiAnagrafici><IdFiscaleIVA><IdCodice>IT01</IdCodice></IdFiscaleIVA></DatiAnagrafici>
	</CedentePrestatore>
	<DatiGenerali>
		<DatiGeneraliDocumento><TipoDocumento>TD01</TipoDocumento></DatiGeneraliDocumento>
	</DatiGenerali>
</FatturaElettronica>`

	results, err := pipeline.Validate(writeInvoice(t, withSeller),
		[]string{checks.NameTipoDocumento})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Findings)

	// Sanity: the fixture parses as an invoice at all.
	_, err = invoice.Load(writeInvoice(t, withSeller))
	require.NoError(t, err)
}
