package docgen

import (
	"github.com/bingoohuang/docgen/pkg/story"
)

// ReportTableStyle is the look of the people table in the PDF report:
// a grey title row with whitesmoke bold text over beige body rows,
// centered cells and a black grid.
func ReportTableStyle() story.TableStyle {
	s := story.DefaultTableStyle()
	s.HeaderFont = story.Font{Family: "Helvetica", Style: "B", Size: 12}
	s.HeaderBackground = story.Grey
	s.HeaderTextColor = story.WhiteSmoke
	s.HeaderBottomPadding = 12
	s.BodyBackground = story.Beige
	s.Alignment = "C"
	s.GridWidth = 1
	s.GridColor = story.Black

	return s
}

// ReportStory returns the content of the PDF report.
func ReportStory() story.Story {
	styles := story.SampleStyleSheet()

	return story.Story{
		story.NewParagraph("Relatório de Teste", styles["Title"]),
		story.Spacer{Width: 1, Height: 12},
		story.NewParagraph("Este é um relatório em PDF criado com fpdf. "+
			"Ele contém texto formatado, tabelas e outros elementos.", styles["BodyText"]),
		story.Spacer{Width: 1, Height: 12},
		story.NewParagraph("Dados da Tabela", styles["Heading2"]),
		story.Spacer{Width: 1, Height: 12},
		story.NewTable(PeopleTable(), ReportTableStyle()),
	}
}

// ReportTemplate returns the letter sized template the report is rendered with.
func ReportTemplate(m Meta) *story.DocTemplate {
	t := story.NewDocTemplate("Letter")
	t.Title = m.Title
	t.Author = m.Author
	t.Creator = m.Author
	t.Created = m.Created

	return t
}
