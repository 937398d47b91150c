package wordml

import (
	"encoding/xml"
	"time"
)

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	bulletNumID = "1"

	// text width of a Letter page with 1 inch margins, in twips
	textWidth = 9360
)

// Style ids defined by the styles part.
const (
	Title         = "Title"
	ListParagraph = "ListParagraph"
	TableGrid     = "TableGrid"
)

type xDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NS      string   `xml:"xmlns:w,attr"`
	NSR     string   `xml:"xmlns:r,attr"`
	Body    xBody    `xml:"w:body"`
}

type xBody struct {
	Blocks []interface{}
	SectPr xSectPr `xml:"w:sectPr"`
}

type xVal struct {
	Val string `xml:"w:val,attr"`
}

type xEmpty struct{}

type xParagraph struct {
	XMLName xml.Name `xml:"w:p"`
	PPr     *xPPr    `xml:"w:pPr,omitempty"`
	Run     xRun     `xml:"w:r"`
}

type xPPr struct {
	Style *xVal   `xml:"w:pStyle,omitempty"`
	NumPr *xNumPr `xml:"w:numPr,omitempty"`
}

type xNumPr struct {
	Ilvl  xVal `xml:"w:ilvl"`
	NumID xVal `xml:"w:numId"`
}

type xRun struct {
	RPr  *xRPr `xml:"w:rPr,omitempty"`
	Text xText `xml:"w:t"`
}

type xRPr struct {
	Bold *xEmpty `xml:"w:b,omitempty"`
}

type xText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

func newXParagraph(p *Paragraph) xParagraph {
	x := xParagraph{Run: newXRun(p.Text, p.Bold)}

	if p.Style != "" || p.Bullet {
		x.PPr = &xPPr{}

		if p.Style != "" {
			x.PPr.Style = &xVal{Val: p.Style}
		}

		if p.Bullet {
			x.PPr.NumPr = &xNumPr{Ilvl: xVal{Val: "0"}, NumID: xVal{Val: bulletNumID}}
		}
	}

	return x
}

func newXRun(text string, bold bool) xRun {
	r := xRun{Text: xText{Space: "preserve", Value: text}}
	if bold {
		r.RPr = &xRPr{Bold: &xEmpty{}}
	}

	return r
}

type xTable struct {
	XMLName xml.Name   `xml:"w:tbl"`
	TblPr   xTblPr     `xml:"w:tblPr"`
	Grid    []xGridCol `xml:"w:tblGrid>w:gridCol"`
	Rows    []xRow     `xml:"w:tr"`
}

type xTblPr struct {
	Style   xVal     `xml:"w:tblStyle"`
	Width   xWidth   `xml:"w:tblW"`
	Borders xBorders `xml:"w:tblBorders"`
}

type xWidth struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type xBorders struct {
	Top     xBorder `xml:"w:top"`
	Left    xBorder `xml:"w:left"`
	Bottom  xBorder `xml:"w:bottom"`
	Right   xBorder `xml:"w:right"`
	InsideH xBorder `xml:"w:insideH"`
	InsideV xBorder `xml:"w:insideV"`
}

type xBorder struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr"` // eighths of a point
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type xGridCol struct {
	W int `xml:"w:w,attr"`
}

type xRow struct {
	Cells []xCell `xml:"w:tc"`
}

type xCell struct {
	TcPr xTcPr      `xml:"w:tcPr"`
	P    xParagraph `xml:"w:p"`
}

type xTcPr struct {
	Width   xWidth    `xml:"w:tcW"`
	Shading *xShading `xml:"w:shd,omitempty"`
}

type xShading struct {
	Val   string `xml:"w:val,attr"`
	Color string `xml:"w:color,attr"`
	Fill  string `xml:"w:fill,attr"`
}

func newXTable(t *Table) xTable {
	single := xBorder{Val: "single", Size: 8, Color: "auto"}
	x := xTable{TblPr: xTblPr{
		Style: xVal{Val: TableGrid},
		Width: xWidth{W: 5000, Type: "pct"},
		Borders: xBorders{
			Top: single, Left: single, Bottom: single, Right: single,
			InsideH: single, InsideV: single,
		},
	}}

	cols := t.Columns()
	if cols == 0 {
		return x
	}

	colWidth := textWidth / cols
	for i := 0; i < cols; i++ {
		x.Grid = append(x.Grid, xGridCol{W: colWidth})
	}

	for i, cells := range t.Rows {
		row := xRow{}
		header := i == 0

		for j := 0; j < cols; j++ {
			text := ""
			if j < len(cells) {
				text = cells[j]
			}

			cell := xCell{
				TcPr: xTcPr{Width: xWidth{W: colWidth, Type: "dxa"}},
				P:    xParagraph{Run: newXRun(text, header && t.HeaderBold)},
			}

			if header && t.HeaderShading != "" {
				cell.TcPr.Shading = &xShading{Val: "clear", Color: "auto", Fill: t.HeaderShading}
			}

			row.Cells = append(row.Cells, cell)
		}

		x.Rows = append(x.Rows, row)
	}

	return x
}

type xSectPr struct {
	PgSz  xPgSz  `xml:"w:pgSz"`
	PgMar xPgMar `xml:"w:pgMar"`
}

type xPgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type xPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

func letterSection() xSectPr {
	return xSectPr{
		PgSz:  xPgSz{W: 12240, H: 15840},
		PgMar: xPgMar{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 720, Footer: 720},
	}
}

type xCoreProperties struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	NSCP           string   `xml:"xmlns:cp,attr"`
	NSDC           string   `xml:"xmlns:dc,attr"`
	NSDCTerms      string   `xml:"xmlns:dcterms,attr"`
	NSXSI          string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
	Created        *xW3CDTF `xml:"dcterms:created,omitempty"`
	Modified       *xW3CDTF `xml:"dcterms:modified,omitempty"`
}

type xW3CDTF struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

func newCoreProperties(p Props) xCoreProperties {
	x := xCoreProperties{
		NSCP:           "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		NSDC:           "http://purl.org/dc/elements/1.1/",
		NSDCTerms:      "http://purl.org/dc/terms/",
		NSXSI:          "http://www.w3.org/2001/XMLSchema-instance",
		Title:          p.Title,
		Creator:        p.Creator,
		LastModifiedBy: p.Creator,
	}

	if !p.Created.IsZero() {
		stamp := p.Created.UTC().Format(time.RFC3339)
		x.Created = &xW3CDTF{Type: "dcterms:W3CDTF", Value: stamp}
		x.Modified = &xW3CDTF{Type: "dcterms:W3CDTF", Value: stamp}
	}

	return x
}
