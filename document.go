package docgen

import (
	"fmt"
	"io"

	"github.com/bingoohuang/docgen/pkg/wordml"
)

// titleShading fills the title row of word tables.
const titleShading = "D3DFEE"

// Docx wraps a word document under construction.
type Docx struct {
	doc *wordml.Document
}

// NewDocx creates an empty word document carrying the metadata.
func NewDocx(m Meta) *Docx {
	return &Docx{doc: wordml.New(wordml.Props{Title: m.Title, Creator: m.Author, Created: m.Created})}
}

// Document returns the underlying document.
func (d *Docx) Document() *wordml.Document { return d.doc }

// AddHeading adds a heading paragraph. Level 0 is the document title.
func (d *Docx) AddHeading(text string, level int) *wordml.Paragraph {
	return d.doc.AddParagraph(HeadingStyle(level), text)
}

// HeadingStyle returns the style id of a heading level.
func HeadingStyle(level int) string {
	if level <= 0 {
		return wordml.Title
	}

	return fmt.Sprintf("Heading%d", level)
}

// AddParagraph adds a plain paragraph.
func (d *Docx) AddParagraph(text string) *wordml.Paragraph {
	return d.doc.AddParagraph("", text)
}

// AddBullet adds a first level bulleted paragraph.
func (d *Docx) AddBullet(text string) *wordml.Paragraph {
	return d.doc.AddBullet(text)
}

// AddTable adds a grid table, the first row is the bold and shaded title row.
func (d *Docx) AddTable(rows [][]string) *wordml.Table {
	t := d.doc.AddTable(rows)
	t.HeaderBold = true
	t.HeaderShading = titleShading

	return t
}

// Save writes the document in the docx format, through unioffice when it is
// licensed.
func (d *Docx) Save(w io.Writer) error {
	if Licensed() {
		doc := unidocDocument(d.doc)
		defer doc.Close()

		return doc.Save(w)
	}

	_, err := d.doc.WriteTo(w)

	return err
}

// SaveToFile writes the document to a file. The extension does not change the content.
func (d *Docx) SaveToFile(file string) error {
	return saveFile(file, d.Save)
}

// SampleDocument builds the sample word document: a title, an introduction,
// a bulleted list and the people table.
func SampleDocument(m Meta) *Docx {
	d := NewDocx(m)

	d.AddHeading("Documento de Teste", 0)
	d.AddParagraph("Este é um documento Word de teste criado com docgen.")

	d.AddHeading("Lista de Itens:", 2)

	for _, item := range ListItems {
		d.AddBullet(item)
	}

	d.AddHeading("Tabela de Exemplo:", 2)
	d.AddTable(PeopleTable())

	return d
}

// LegacyDocument builds the document saved with the legacy .doc extension.
func LegacyDocument(m Meta) *Docx {
	d := NewDocx(m)

	d.AddHeading("Documento Legado", 0)
	d.AddParagraph("Este é um documento de formato legado (será salvo como .docx mas com extensão .doc)")

	return d
}
