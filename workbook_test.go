package docgen_test

import (
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/bingoohuang/docgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func saveSampleWorkbook(t *testing.T) string {
	t.Helper()

	x, err := docgen.SampleWorkbook(docgen.Meta{Title: "Planilha", Author: docgen.Author, Created: time.Now()})
	require.NoError(t, err)

	defer x.Close()

	file := filepath.Join(t.TempDir(), docgen.SpreadsheetFile)
	require.NoError(t, x.SaveToFile(file))

	return file
}

func assertBold(t *testing.T, f *excelize.File, sheet, cell string, size float64) {
	t.Helper()

	styleID, err := f.GetCellStyle(sheet, cell)
	require.NoError(t, err)

	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font, "%s!%s has no font", sheet, cell)
	assert.True(t, style.Font.Bold, "%s!%s is not bold", sheet, cell)

	if size > 0 {
		assert.Equal(t, size, style.Font.Size)
	}
}

func TestSampleWorkbook(t *testing.T) {
	f, err := excelize.OpenFile(saveSampleWorkbook(t))
	require.NoError(t, err)

	defer f.Close()

	assert.Equal(t, []string{"Dados", "Vendas", docgen.SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows("Dados")
	require.NoError(t, err)
	require.Len(t, rows, len(docgen.People)+1)
	assert.Equal(t, []string{"Nome", "Idade", "Cidade"}, rows[0])
	assert.Equal(t, []string{"João Silva", "28", "São Paulo"}, rows[1])
	assert.Equal(t, []string{"Ana Costa", "30", "Curitiba"}, rows[4])

	for _, cell := range []string{"A1", "B1", "C1"} {
		assertBold(t, f, "Dados", cell, 0)
		assertBold(t, f, "Vendas", cell, 0)
	}

	rows, err = f.GetRows("Vendas")
	require.NoError(t, err)
	require.Len(t, rows, len(docgen.Sales)+1)
	assert.Equal(t, []string{"Produto", "Quantidade", "Valor"}, rows[0])
	assert.Equal(t, []string{"Produto B", "50", "2500"}, rows[2])

	cellType, err := f.GetCellType("Vendas", "C2")
	require.NoError(t, err)
	assert.Contains(t, []excelize.CellType{excelize.CellTypeNumber, excelize.CellTypeUnset}, cellType)

	title, err := f.GetCellValue(docgen.SummarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Resumo Geral", title)
	assertBold(t, f, docgen.SummarySheet, "A1", 14)

	for cell, want := range map[string]string{
		"A3": "Total de pessoas:",
		"B3": strconv.Itoa(len(docgen.People)),
		"A4": "Total de produtos:",
		"B4": strconv.Itoa(len(docgen.Sales)),
	} {
		got, err := f.GetCellValue(docgen.SummarySheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}
}

func TestSampleWorkbookReadsBack(t *testing.T) {
	x := docgen.New(docgen.WithFile(saveSampleWorkbook(t)))
	defer x.Close()

	var people []docgen.Person
	require.NoError(t, x.Read(&people))
	assert.Equal(t, docgen.People, people)

	var sales []docgen.Sale
	require.NoError(t, x.Read(&sales))
	assert.Equal(t, docgen.Sales, sales)

	props, err := x.File().GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Planilha", props.Title)
	assert.Equal(t, docgen.Author, props.Creator)
}
