package docgen_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bingoohuang/docgen"
	"github.com/bingoohuang/docgen/pkg/wordml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reopen(t *testing.T, d *docgen.Docx, name string) *wordml.Document {
	t.Helper()

	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, d.SaveToFile(file))

	doc, err := wordml.Open(file)
	require.NoError(t, err)

	return doc
}

func bodyParagraphs(doc *wordml.Document) []wordml.Paragraph {
	var out []wordml.Paragraph

	for _, p := range doc.Paragraphs() {
		out = append(out, *p)
	}

	return out
}

func TestHeadingStyle(t *testing.T) {
	assert.Equal(t, "Title", docgen.HeadingStyle(0))
	assert.Equal(t, "Heading1", docgen.HeadingStyle(1))
	assert.Equal(t, "Heading2", docgen.HeadingStyle(2))
}

func TestSampleDocument(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	doc := reopen(t, docgen.SampleDocument(docgen.Meta{
		Title: "Documento de Teste", Author: docgen.Author, Created: created,
	}), docgen.DocumentFile)

	assert.Equal(t, []wordml.Paragraph{
		{Style: "Title", Text: "Documento de Teste"},
		{Text: "Este é um documento Word de teste criado com docgen."},
		{Style: "Heading2", Text: "Lista de Itens:"},
		{Style: wordml.ListParagraph, Text: "Primeiro item", Bullet: true},
		{Style: wordml.ListParagraph, Text: "Segundo item", Bullet: true},
		{Style: wordml.ListParagraph, Text: "Terceiro item", Bullet: true},
		{Style: "Heading2", Text: "Tabela de Exemplo:"},
	}, bodyParagraphs(doc))

	tables := doc.Tables()
	require.Len(t, tables, 1)
	assert.Equal(t, docgen.PeopleTable(), tables[0].Rows)
	assert.True(t, tables[0].HeaderBold)
	assert.Equal(t, "D3DFEE", tables[0].HeaderShading)

	_, last := doc.Blocks[len(doc.Blocks)-1].(*wordml.Table)
	assert.True(t, last, "the table closes the document")

	assert.Equal(t, "Documento de Teste", doc.Props.Title)
	assert.Equal(t, docgen.Author, doc.Props.Creator)
	assert.True(t, created.Equal(doc.Props.Created))
}

func TestLegacyDocument(t *testing.T) {
	doc := reopen(t, docgen.LegacyDocument(docgen.Meta{Title: "Documento Legado"}), docgen.LegacyDocumentFile)

	assert.Equal(t, []wordml.Paragraph{
		{Style: "Title", Text: "Documento Legado"},
		{Text: "Este é um documento de formato legado (será salvo como .docx mas com extensão .doc)"},
	}, bodyParagraphs(doc))
	assert.Empty(t, doc.Tables())
	assert.Equal(t, "Documento Legado", doc.Props.Title)
}

func TestDocxSaveToMissingDir(t *testing.T) {
	assert.Error(t, docgen.LegacyDocument(docgen.Meta{}).SaveToFile(filepath.Join(t.TempDir(), "missing", "x.doc")))
}
