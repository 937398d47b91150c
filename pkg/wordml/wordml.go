// Package wordml reads and writes plain WordprocessingML (.docx) documents:
// styled paragraphs, bulleted paragraphs and grid tables.
package wordml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

// Props are the core properties of a document.
type Props struct {
	Title   string
	Creator string
	Created time.Time
}

// Block is a body element, a *Paragraph or a *Table.
type Block interface{ block() }

// Paragraph is a single run of text.
type Paragraph struct {
	Style  string // style id, empty for Normal
	Text   string
	Bullet bool
	Bold   bool
}

// Table is a grid table of text cells. The first row is the header.
type Table struct {
	Rows          [][]string
	HeaderBold    bool
	HeaderShading string // RRGGBB fill of the header cells, empty for none
}

func (*Paragraph) block() {}
func (*Table) block()     {}

// Document is a word document held in memory.
type Document struct {
	Props  Props
	Blocks []Block
}

// New creates an empty document.
func New(p Props) *Document { return &Document{Props: p} }

// AddParagraph appends a paragraph in the style.
func (d *Document) AddParagraph(style, text string) *Paragraph {
	p := &Paragraph{Style: style, Text: text}
	d.Blocks = append(d.Blocks, p)

	return p
}

// AddBullet appends a first level bulleted paragraph.
func (d *Document) AddBullet(text string) *Paragraph {
	p := &Paragraph{Style: ListParagraph, Text: text, Bullet: true}
	d.Blocks = append(d.Blocks, p)

	return p
}

// AddTable appends a table of the rows.
func (d *Document) AddTable(rows [][]string) *Table {
	t := &Table{Rows: rows}
	d.Blocks = append(d.Blocks, t)

	return t
}

// Paragraphs returns the body paragraphs, table cells excluded.
func (d *Document) Paragraphs() []*Paragraph {
	var ps []*Paragraph

	for _, b := range d.Blocks {
		if p, ok := b.(*Paragraph); ok {
			ps = append(ps, p)
		}
	}

	return ps
}

// Tables returns the body tables.
func (d *Document) Tables() []*Table {
	var ts []*Table

	for _, b := range d.Blocks {
		if t, ok := b.(*Table); ok {
			ts = append(ts, t)
		}
	}

	return ts
}

// Columns returns the widest row length.
func (t *Table) Columns() int {
	n := 0

	for _, r := range t.Rows {
		if len(r) > n {
			n = len(r)
		}
	}

	return n
}

// WriteTo writes the zipped document package.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	body, err := d.marshalBody()
	if err != nil {
		return 0, err
	}

	core, err := marshalPart(newCoreProperties(d.Props))
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, p := range []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(xml.Header + contentTypes)},
		{"_rels/.rels", []byte(xml.Header + packageRels)},
		{"docProps/core.xml", core},
		{"docProps/app.xml", []byte(xml.Header + appProperties)},
		{"word/document.xml", body},
		{"word/styles.xml", []byte(xml.Header + styles)},
		{"word/numbering.xml", []byte(xml.Header + numbering)},
		{"word/_rels/document.xml.rels", []byte(xml.Header + documentRels)},
	} {
		f, err := zw.Create(p.name)
		if err != nil {
			return 0, err
		}

		if _, err := f.Write(p.data); err != nil {
			return 0, fmt.Errorf("write %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return 0, err
	}

	return buf.WriteTo(w)
}

func marshalPart(v interface{}) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), data...), nil
}

func (d *Document) marshalBody() ([]byte, error) {
	doc := xDocument{NS: nsW, NSR: nsR}

	for _, b := range d.Blocks {
		switch v := b.(type) {
		case *Paragraph:
			doc.Body.Blocks = append(doc.Body.Blocks, newXParagraph(v))
		case *Table:
			doc.Body.Blocks = append(doc.Body.Blocks, newXTable(v))
		}
	}

	doc.Body.SectPr = letterSection()

	return marshalPart(doc)
}
