package docgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/araddon/dateparse"
	"github.com/sirupsen/logrus"
)

// Output file names.
const (
	SpreadsheetFile    = "planilha.xlsx"
	DocumentFile       = "documento.docx"
	LegacyDocumentFile = "documento.doc"
	ReportFile         = "relatorio.pdf"
)

// Author is written into the metadata of every generated file.
const Author = "docgen"

// Generator writes the sample documents one after another.
type Generator struct {
	// Dir is the output directory, created if missing. Empty means the working directory.
	Dir string
	// Created is the creation time recorded in the files. Zero means now.
	Created time.Time
	// Out receives the progress lines. Nil means stdout.
	Out io.Writer
}

// ParseCreated parses a creation time in any layout dateparse understands.
// An empty string means now.
func ParseCreated(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}

	t, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created time %q: %w", s, err)
	}

	return t, nil
}

// Run writes the spreadsheet, the word documents and the PDF report, stopping at the first error.
func (g *Generator) Run() error {
	if g.Dir != "" {
		if err := os.MkdirAll(g.Dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	if g.Created.IsZero() {
		g.Created = time.Now()
	}

	g.printf("Criando %s...\n", SpreadsheetFile)

	if err := g.writeWorkbook(); err != nil {
		return fmt.Errorf("write %s: %w", SpreadsheetFile, err)
	}

	g.printf("✓ %s criada\n", SpreadsheetFile)
	g.printf("Criando %s...\n", DocumentFile)

	if err := g.saveDocx(SampleDocument(g.meta("Documento de Teste")), DocumentFile); err != nil {
		return fmt.Errorf("write %s: %w", DocumentFile, err)
	}

	g.printf("✓ %s criado\n", DocumentFile)

	if err := g.saveDocx(LegacyDocument(g.meta("Documento Legado")), LegacyDocumentFile); err != nil {
		return fmt.Errorf("write %s: %w", LegacyDocumentFile, err)
	}

	g.printf("✓ %s criado\n", LegacyDocumentFile)
	g.printf("Criando %s...\n", ReportFile)

	if err := ReportTemplate(g.meta("Relatório de Teste")).BuildFile(g.Path(ReportFile), ReportStory()); err != nil {
		return fmt.Errorf("write %s: %w", ReportFile, err)
	}

	g.logWritten(ReportFile)
	g.printf("✓ %s criado\n", ReportFile)
	g.printf("\n✅ Todos os documentos foram criados com sucesso!\n")

	return nil
}

// Path returns the path of an output file.
func (g *Generator) Path(name string) string {
	return filepath.Join(g.Dir, name)
}

func (g *Generator) writeWorkbook() error {
	x, err := SampleWorkbook(g.meta("Planilha"))
	if err != nil {
		return err
	}

	defer x.Close()

	if err := x.SaveToFile(g.Path(SpreadsheetFile)); err != nil {
		return err
	}

	g.logWritten(SpreadsheetFile)

	return nil
}

func (g *Generator) saveDocx(d *Docx, name string) error {
	if err := d.SaveToFile(g.Path(name)); err != nil {
		return err
	}

	g.logWritten(name)

	return nil
}

func (g *Generator) meta(title string) Meta {
	return Meta{Title: title, Author: Author, Created: g.Created}
}

func (g *Generator) logWritten(name string) {
	p := g.Path(name)

	if fi, err := os.Stat(p); err == nil {
		logrus.Debugf("wrote %s, %d bytes", p, fi.Size())
	}
}

func (g *Generator) printf(format string, args ...interface{}) {
	out := g.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, format, args...)
}
