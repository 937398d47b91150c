package wordml

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Open reads the document in the file.
func Open(file string) (*Document, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	return Read(f, fi.Size())
}

// Read reads a zipped document package. Elements other than paragraphs and
// tables are skipped, runs of a paragraph are joined.
func Read(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	var body rDocument
	if err := decodePart(zr, "word/document.xml", &body, true); err != nil {
		return nil, err
	}

	var core rCoreProperties
	if err := decodePart(zr, "docProps/core.xml", &core, false); err != nil {
		return nil, err
	}

	d := &Document{Props: core.props()}

	for _, b := range body.Body.Blocks {
		switch b.XMLName.Local {
		case "p":
			d.Blocks = append(d.Blocks, b.paragraph())
		case "tbl":
			d.Blocks = append(d.Blocks, b.table())
		}
	}

	return d, nil
}

func decodePart(zr *zip.Reader, name string, v interface{}, required bool) error {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		if err := xml.NewDecoder(rc).Decode(v); err != nil {
			return fmt.Errorf("decode %s: %w", name, err)
		}

		return nil
	}

	if required {
		return fmt.Errorf("no %s in package", name)
	}

	return nil
}

type rDocument struct {
	Body struct {
		Blocks []rBlock `xml:",any"`
	} `xml:"body"`
}

type rVal struct {
	Val string `xml:"val,attr"`
}

type rBlock struct {
	XMLName xml.Name
	PPr     struct {
		Style rVal  `xml:"pStyle"`
		NumPr *rVal `xml:"numPr"`
	} `xml:"pPr"`
	Runs []rRun `xml:"r"`
	Rows []rRow `xml:"tr"`
}

type rRun struct {
	Bold  *rVal    `xml:"rPr>b"`
	Texts []string `xml:"t"`
}

type rRow struct {
	Cells []struct {
		Shading *struct {
			Fill string `xml:"fill,attr"`
		} `xml:"tcPr>shd"`
		Paragraphs []rBlock `xml:"p"`
	} `xml:"tc"`
}

func (b rBlock) text() string {
	var sb strings.Builder

	for _, r := range b.Runs {
		for _, t := range r.Texts {
			sb.WriteString(t)
		}
	}

	return sb.String()
}

func (b rBlock) bold() bool {
	if len(b.Runs) == 0 {
		return false
	}

	for _, r := range b.Runs {
		if r.Bold == nil || r.Bold.Val == "0" || r.Bold.Val == "false" {
			return false
		}
	}

	return true
}

func (b rBlock) paragraph() *Paragraph {
	return &Paragraph{
		Style:  b.PPr.Style.Val,
		Text:   b.text(),
		Bullet: b.PPr.NumPr != nil,
		Bold:   b.bold(),
	}
}

func (b rBlock) table() *Table {
	t := &Table{}

	for i, row := range b.Rows {
		cells := make([]string, 0, len(row.Cells))
		bold := len(row.Cells) > 0

		for j, c := range row.Cells {
			texts := make([]string, 0, len(c.Paragraphs))

			for _, p := range c.Paragraphs {
				texts = append(texts, p.text())
				bold = bold && p.bold()
			}

			cells = append(cells, strings.Join(texts, "\n"))

			if i == 0 && j == 0 && c.Shading != nil {
				t.HeaderShading = c.Shading.Fill
			}
		}

		if i == 0 {
			t.HeaderBold = bold
		}

		t.Rows = append(t.Rows, cells)
	}

	return t
}

type rCoreProperties struct {
	Title   string `xml:"title"`
	Creator string `xml:"creator"`
	Created string `xml:"created"`
}

func (c rCoreProperties) props() Props {
	p := Props{Title: c.Title, Creator: c.Creator}

	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(c.Created)); err == nil {
		p.Created = t
	}

	return p
}
