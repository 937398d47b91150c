package story

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
)

// Canvas is the drawing surface handed to flowables: the PDF being built
// and the frame they flow in.
type Canvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string

	Left  float64
	Width float64
}

// PDF returns the underlying PDF.
func (c *Canvas) PDF() *fpdf.Fpdf { return c.pdf }

// SetFont selects the font.
func (c *Canvas) SetFont(f Font) { c.pdf.SetFont(f.Family, f.Style, f.Size) }

// SetTextColor selects the text color.
func (c *Canvas) SetTextColor(col Color) { c.pdf.SetTextColor(col.R, col.G, col.B) }

// AtTop tells whether the cursor is at the top of the frame.
func (c *Canvas) AtTop() bool {
	_, top, _, _ := c.pdf.GetMargins()

	return c.pdf.GetY() <= top
}

// EnsureSpace starts a new page unless h points fit above the bottom margin.
// Content taller than a page starts at the top and breaks where it must.
func (c *Canvas) EnsureSpace(h float64) {
	if c.AtTop() {
		return
	}

	_, pageHeight := c.pdf.GetPageSize()
	_, _, _, bottom := c.pdf.GetMargins()

	if c.pdf.GetY()+h > pageHeight-bottom {
		c.pdf.AddPage()
	}
}

// DocTemplate renders stories onto pages of a fixed size and margins.
type DocTemplate struct {
	PageSize    string // "Letter", "A4", ...
	Orientation string // "P" or "L"

	LeftMargin   float64
	RightMargin  float64
	TopMargin    float64
	BottomMargin float64

	Title   string
	Author  string
	Subject string
	Creator string
	Created time.Time
}

// NewDocTemplate creates a portrait template with 1 inch margins.
func NewDocTemplate(pageSize string) *DocTemplate {
	return &DocTemplate{
		PageSize:     pageSize,
		Orientation:  "P",
		LeftMargin:   72,
		RightMargin:  72,
		TopMargin:    72,
		BottomMargin: 72,
	}
}

// Build renders the story and writes the PDF to w.
func (d *DocTemplate) Build(w io.Writer, s Story) error {
	pdf := fpdf.New(d.Orientation, "pt", d.PageSize, "")
	if err := pdf.Error(); err != nil {
		return err
	}

	pdf.SetMargins(d.LeftMargin, d.TopMargin, d.RightMargin)
	pdf.SetAutoPageBreak(true, d.BottomMargin)
	pdf.SetTitle(d.Title, true)
	pdf.SetAuthor(d.Author, true)
	pdf.SetSubject(d.Subject, true)
	pdf.SetCreator(d.Creator, true)

	if !d.Created.IsZero() {
		pdf.SetCreationDate(d.Created)
		pdf.SetModificationDate(d.Created)
	}

	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	c := &Canvas{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		Left:  d.LeftMargin,
		Width: pageWidth - d.LeftMargin - d.RightMargin,
	}

	for i, f := range s {
		f.Draw(c)

		if err := pdf.Error(); err != nil {
			return fmt.Errorf("flowable %d (%T): %w", i, f, err)
		}
	}

	return pdf.Output(w)
}

// BuildFile renders the story into the file. Nothing is written when the
// rendering fails, and a failed write removes what it left behind.
func (d *DocTemplate) BuildFile(file string, s Story) error {
	var buf bytes.Buffer
	if err := d.Build(&buf, s); err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	if _, err := buf.WriteTo(f); err != nil {
		f.Close()
		os.Remove(file)

		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(file)
		return err
	}

	return nil
}

// NewCanvas wraps a PDF that already has a page, with the frame at left of
// the width, translating text to the core font code page.
func NewCanvas(pdf *fpdf.Fpdf, left, width float64) *Canvas {
	return &Canvas{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		Left:  left,
		Width: width,
	}
}
