package docgen_test

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bingoohuang/docgen"
	"github.com/bingoohuang/docgen/pkg/wordml"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const wantProgress = `Criando planilha.xlsx...
✓ planilha.xlsx criada
Criando documento.docx...
✓ documento.docx criado
✓ documento.doc criado
Criando relatorio.pdf...
✓ relatorio.pdf criado

✅ Todos os documentos foram criados com sucesso!
`

func runGenerator(t *testing.T) (*docgen.Generator, string) {
	t.Helper()

	var out bytes.Buffer

	g := &docgen.Generator{
		Dir:     filepath.Join(t.TempDir(), "out"),
		Created: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Out:     &out,
	}

	require.NoError(t, g.Run())

	return g, out.String()
}

func TestGeneratorRun(t *testing.T) {
	g, progress := runGenerator(t)
	assert.Equal(t, wantProgress, progress)

	for _, name := range []string{
		docgen.SpreadsheetFile,
		docgen.DocumentFile,
		docgen.LegacyDocumentFile,
		docgen.ReportFile,
	} {
		fi, err := os.Stat(g.Path(name))
		require.NoError(t, err, name)
		assert.NotZero(t, fi.Size(), name)
	}
}

func TestGeneratorRunOutputsReopen(t *testing.T) {
	g, _ := runGenerator(t)

	f, err := excelize.OpenFile(g.Path(docgen.SpreadsheetFile))
	require.NoError(t, err)

	defer f.Close()

	assert.Equal(t, []string{"Dados", "Vendas", docgen.SummarySheet}, f.GetSheetList())

	people, err := f.GetCellValue(docgen.SummarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "4", people)

	name, err := f.GetCellValue("Dados", "A2")
	require.NoError(t, err)
	assert.Equal(t, "João Silva", name)

	for name, title := range map[string]string{
		docgen.DocumentFile:       "Documento de Teste",
		docgen.LegacyDocumentFile: "Documento Legado",
	} {
		raw, err := os.ReadFile(g.Path(name))
		require.NoError(t, err)

		zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
		require.NoError(t, err, name)
		assert.Equal(t, "[Content_Types].xml", zr.File[0].Name, name)

		doc, err := wordml.Open(g.Path(name))
		require.NoError(t, err, name)
		require.NotEmpty(t, doc.Paragraphs(), name)
		assert.Equal(t, title, doc.Paragraphs()[0].Text, name)
		assert.Equal(t, "Title", doc.Paragraphs()[0].Style, name)
	}

	report := g.Path(docgen.ReportFile)
	require.NoError(t, api.ValidateFile(report, nil))

	pages, err := api.PageCountFile(report)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestGeneratorRunFailsOnUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	var out bytes.Buffer

	g := &docgen.Generator{Dir: file, Out: &out}
	assert.Error(t, g.Run())
	assert.Empty(t, out.String())
}

func TestParseCreated(t *testing.T) {
	got, err := docgen.ParseCreated("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), got)

	got, err = docgen.ParseCreated("2024-01-15 10:30:00")
	require.NoError(t, err)
	assert.Equal(t, 30, got.Minute())

	before := time.Now()
	got, err = docgen.ParseCreated("")
	require.NoError(t, err)
	assert.False(t, got.Before(before))

	_, err = docgen.ParseCreated("quinze de janeiro")
	assert.Error(t, err)
}
