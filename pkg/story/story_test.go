package story_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bingoohuang/docgen/pkg/story"
	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageCount(t *testing.T, pdf []byte) int {
	t.Helper()

	n, err := api.PageCount(bytes.NewReader(pdf), nil)
	require.NoError(t, err)

	return n
}

func TestBuild(t *testing.T) {
	styles := story.SampleStyleSheet()
	s := story.Story{
		story.NewParagraph("Título", styles["Title"]),
		story.Spacer{Width: 1, Height: 12},
		story.NewParagraph("Olá, relatório.", styles["BodyText"]),
		story.NewTable([][]string{{"a", "b"}, {"1", "2"}}, story.DefaultTableStyle()),
	}

	tpl := story.NewDocTemplate("Letter")
	tpl.Title = "Título"
	tpl.Created = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, tpl.Build(&buf, s))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, 1, pageCount(t, buf.Bytes()))
}

func TestBuildBreaksPages(t *testing.T) {
	styles := story.SampleStyleSheet()
	text := strings.Repeat("Este parágrafo ocupa várias linhas do quadro. ", 20)

	var s story.Story
	for i := 0; i < 30; i++ {
		s = append(s, story.NewParagraph(text, styles["BodyText"]), story.Spacer{Height: 12})
	}

	rows := [][]string{{"n", "quadrado"}}
	for i := 0; i < 80; i++ {
		rows = append(rows, []string{strings.Repeat("x", i%7+1), "y"})
	}

	s = append(s, story.NewTable(rows, story.DefaultTableStyle()))

	var buf bytes.Buffer
	require.NoError(t, story.NewDocTemplate("A4").Build(&buf, s))
	assert.Greater(t, pageCount(t, buf.Bytes()), 2)
}

func TestBuildUnknownPageSize(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, story.NewDocTemplate("Papiro").Build(&buf, nil))
}

func TestBuildFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "story.pdf")
	styles := story.SampleStyleSheet()

	require.NoError(t, story.NewDocTemplate("Letter").BuildFile(file, story.Story{
		story.NewParagraph("Dados da Tabela", styles["Heading2"]),
	}))
	require.NoError(t, api.ValidateFile(file, nil))

	assert.Error(t, story.NewDocTemplate("Letter").BuildFile(filepath.Join(t.TempDir(), "missing", "x.pdf"), nil))
}

func TestBuildFileFailureLeavesNoFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "story.pdf")

	require.Error(t, story.NewDocTemplate("Papiro").BuildFile(file, story.Story{
		story.NewParagraph("Relatório", story.SampleStyleSheet()["Title"]),
	}))

	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err), "stat %s: %v", file, err)
}

func TestParagraphAccentedText(t *testing.T) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(72, 72, 72)
	pdf.AddPage()

	c := story.NewCanvas(pdf, 72, 468)
	body := story.SampleStyleSheet()["BodyText"]
	text := strings.Repeat("Relatório de Ação, São Paulo é ótimo. ", 12)

	y := pdf.GetY()
	story.NewParagraph(text, body).Draw(c)
	require.NoError(t, pdf.Error())

	lines := (pdf.GetY() - y) / body.Leading
	assert.Greater(t, lines, 1.0)
	assert.InDelta(t, float64(int(lines+0.5)), lines, 0.001, "whole lines of leading")
}

func TestParagraphOutsideCodePage(t *testing.T) {
	styles := story.SampleStyleSheet()
	s := story.Story{
		story.NewParagraph("Łódź, 中文 and €10", styles["Title"]),
		story.NewParagraph(strings.Repeat("“Ωμέγα” ünïcödé 日本語 ", 30), styles["BodyText"]),
		story.NewTable([][]string{{"Ł", "€"}, {"中", "ö"}}, story.DefaultTableStyle()),
	}

	var buf bytes.Buffer
	require.NotPanics(t, func() {
		require.NoError(t, story.NewDocTemplate("Letter").Build(&buf, s))
	})
	require.NoError(t, api.Validate(bytes.NewReader(buf.Bytes()), nil))
	assert.Equal(t, 1, pageCount(t, buf.Bytes()))
}

func TestSpacerDroppedAtTop(t *testing.T) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(72, 72, 72)
	pdf.AddPage()

	c := story.NewCanvas(pdf, 72, 468)
	require.True(t, c.AtTop())

	story.Spacer{Height: 12}.Draw(c)
	assert.True(t, c.AtTop())

	styles := story.SampleStyleSheet()
	story.NewParagraph("Relatório", styles["Title"]).Draw(c)
	assert.False(t, c.AtTop())

	y := pdf.GetY()
	story.Spacer{Height: 12}.Draw(c)
	assert.InDelta(t, y+12, pdf.GetY(), 0.001)
}

func TestColumnWidths(t *testing.T) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()

	c := story.NewCanvas(pdf, 72, 468)
	style := story.DefaultTableStyle()
	table := story.NewTable([][]string{
		{"Nome", "Idade"},
		{"Pedro Oliveira", "25"},
		{"Ana", "30", "Curitiba"},
	}, style)

	assert.Equal(t, 3, table.Columns())

	widths := table.ColumnWidths(c)
	require.Len(t, widths, 3)

	pdf.SetFont("Helvetica", "", 10)
	assert.InDelta(t, pdf.GetStringWidth("Pedro Oliveira")+12, widths[0], 0.001)
	assert.InDelta(t, pdf.GetStringWidth("Curitiba")+12, widths[2], 0.001)
}

func TestSampleStyleSheet(t *testing.T) {
	styles := story.SampleStyleSheet()

	for _, name := range []string{"Normal", "BodyText", "Title", "Heading1", "Heading2"} {
		s, ok := styles[name]
		require.True(t, ok, name)
		assert.Equal(t, name, s.Name)
	}

	assert.Equal(t, "C", styles["Title"].Alignment)
	assert.Equal(t, "B", styles["Heading2"].Font.Style)
	assert.Equal(t, 14.0, styles["Heading2"].Font.Size)
}
