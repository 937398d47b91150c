package docgen

import (
	"github.com/bingoohuang/docgen/pkg/wordml"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/wml"
)

// unidocDocument rebuilds the word document with unioffice. Only saving the
// result needs a license.
func unidocDocument(src *wordml.Document) *document.Document {
	doc := document.New()
	cp := doc.CoreProperties

	if src.Props.Title != "" {
		cp.SetTitle(src.Props.Title)
	}

	if src.Props.Creator != "" {
		cp.SetAuthor(src.Props.Creator)
		cp.SetLastModifiedBy(src.Props.Creator)
	}

	if !src.Props.Created.IsZero() {
		cp.SetCreated(src.Props.Created)
		cp.SetModified(src.Props.Created)
	}

	var bullets document.NumberingDefinition

	for _, b := range src.Blocks {
		switch v := b.(type) {
		case *wordml.Paragraph:
			para := doc.AddParagraph()

			if v.Style != "" {
				para.SetStyle(v.Style)
			}

			if v.Bullet {
				if bullets.X() == nil {
					bullets = bulletDefinition(doc)
				}

				para.SetNumberingDefinition(bullets)
				para.SetNumberingLevel(0)
			}

			run := para.AddRun()
			run.AddText(v.Text)
			run.Properties().SetBold(v.Bold)
		case *wordml.Table:
			addUnidocTable(doc, v)
		}
	}

	return doc
}

func bulletDefinition(doc *document.Document) document.NumberingDefinition {
	defs := doc.Numbering.Definitions()
	if len(defs) == 0 {
		doc.Numbering.InitializeDefault()
		defs = doc.Numbering.Definitions()
	}

	return defs[0]
}

func addUnidocTable(doc *document.Document, t *wordml.Table) {
	table := doc.AddTable()
	table.Properties().SetWidthPercent(100)
	table.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, 1*measurement.Point)

	for i, cells := range t.Rows {
		row := table.AddRow()

		for _, text := range cells {
			cell := row.AddCell()
			run := cell.AddParagraph().AddRun()
			run.AddText(text)

			if i > 0 {
				continue
			}

			if t.HeaderShading != "" {
				cell.Properties().SetShading(wml.ST_ShdClear, color.Auto, color.FromHex(t.HeaderShading))
			}

			run.Properties().SetBold(t.HeaderBold)
		}
	}
}
