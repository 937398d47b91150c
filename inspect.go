package docgen

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bingoohuang/docgen/pkg/wordml"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/xuri/excelize/v2"
)

// Inspect prints the content of a generated file picked by its extension:
// cells of a workbook, paragraphs and tables of a word document, the page count of a PDF.
func Inspect(w io.Writer, file string) error {
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".xlsx":
		return inspectWorkbook(w, file)
	case ".docx", ".doc":
		return inspectDocument(w, file)
	case ".pdf":
		return inspectReport(w, file)
	default:
		return fmt.Errorf("unsupported file type %q", ext)
	}
}

func inspectWorkbook(w io.Writer, file string) error {
	f, err := excelize.OpenFile(file)
	if err != nil {
		return err
	}

	defer f.Close()

	for i, sheet := range f.GetSheetList() {
		fmt.Fprintf(w, "Sheet %d: %s\n", i+1, sheet)

		rows, err := f.GetRows(sheet)
		if err != nil {
			return err
		}

		for r, row := range rows {
			for c, value := range row {
				if value = strings.TrimSpace(value); value == "" {
					continue
				}

				ref, _ := excelize.CoordinatesToCellName(c+1, r+1)
				fmt.Fprintf(w, "  %s\t%s\n", ref, value)
			}
		}
	}

	return nil
}

func inspectDocument(w io.Writer, file string) error {
	doc, err := wordml.Open(file)
	if err != nil {
		return err
	}

	tables := 0

	for _, b := range doc.Blocks {
		switch v := b.(type) {
		case *wordml.Paragraph:
			printParagraph(w, v)
		case *wordml.Table:
			tables++
			fmt.Fprintf(w, "Table %d:\n", tables)

			for _, row := range v.Rows {
				fmt.Fprintf(w, "  %s\n", strings.Join(row, " | "))
			}
		}
	}

	return nil
}

func printParagraph(w io.Writer, p *wordml.Paragraph) {
	if p.Text == "" {
		return
	}

	text := p.Text
	if p.Bullet {
		text = "• " + text
	}

	if p.Style != "" {
		fmt.Fprintf(w, "[%s] %s\n", p.Style, text)
	} else {
		fmt.Fprintln(w, text)
	}
}

func inspectReport(w io.Writer, file string) error {
	pages, err := api.PageCountFile(file)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Pages: %d\n", pages)

	return nil
}
