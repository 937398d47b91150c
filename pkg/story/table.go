package story

// TableStyle styles a table: a title row followed by body rows.
type TableStyle struct {
	HeaderFont          Font
	HeaderBackground    Color
	HeaderTextColor     Color
	HeaderBottomPadding float64

	BodyFont       Font
	BodyBackground Color
	BodyTextColor  Color

	Alignment     string // "L", "C" or "R" for every cell
	LeftPadding   float64
	RightPadding  float64
	TopPadding    float64
	BottomPadding float64

	GridWidth float64 // 0 draws no grid
	GridColor Color
}

// DefaultTableStyle returns a plain table style with 6pt side and 3pt
// vertical paddings.
func DefaultTableStyle() TableStyle {
	font := Font{Family: "Helvetica", Size: 10}

	return TableStyle{
		HeaderFont:          font,
		HeaderBackground:    White,
		HeaderTextColor:     Black,
		HeaderBottomPadding: 3,
		BodyFont:            font,
		BodyBackground:      White,
		BodyTextColor:       Black,
		Alignment:           "L",
		LeftPadding:         6,
		RightPadding:        6,
		TopPadding:          3,
		BottomPadding:       3,
		GridColor:           Black,
	}
}

// Table is a grid of text cells sized to their content and centered in the frame.
type Table struct {
	Rows  [][]string
	Style TableStyle
}

// NewTable creates a table with the style.
func NewTable(rows [][]string, style TableStyle) Table {
	return Table{Rows: rows, Style: style}
}

// Columns returns the number of columns of the widest row.
func (t Table) Columns() int {
	n := 0

	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}

	return n
}

func (t Table) rowFont(i int) Font {
	if i == 0 {
		return t.Style.HeaderFont
	}

	return t.Style.BodyFont
}

// ColumnWidths measures every column by its widest cell plus the side paddings.
func (t Table) ColumnWidths(c *Canvas) []float64 {
	widths := make([]float64, t.Columns())

	for i, row := range t.Rows {
		c.SetFont(t.rowFont(i))

		for j, text := range row {
			w := c.pdf.GetStringWidth(c.tr(text)) + t.Style.LeftPadding + t.Style.RightPadding
			if w > widths[j] {
				widths[j] = w
			}
		}
	}

	return widths
}

// Draw draws the table row by row, a row never splits across pages.
func (t Table) Draw(c *Canvas) {
	if len(t.Rows) == 0 {
		return
	}

	s := t.Style
	widths := t.ColumnWidths(c)

	total := 0.0
	for _, w := range widths {
		total += w
	}

	x0 := c.Left
	if total < c.Width {
		x0 += (c.Width - total) / 2
	}

	for i, row := range t.Rows {
		font, background, textColor, bottom := s.BodyFont, s.BodyBackground, s.BodyTextColor, s.BottomPadding
		if i == 0 {
			font, background, textColor, bottom = s.HeaderFont, s.HeaderBackground, s.HeaderTextColor, s.HeaderBottomPadding
		}

		textHeight := font.Size * 1.2
		h := s.TopPadding + textHeight + bottom

		c.EnsureSpace(h)
		y := c.pdf.GetY()
		x := x0

		for j, w := range widths {
			text := ""
			if j < len(row) {
				text = row[j]
			}

			c.pdf.SetFillColor(background.R, background.G, background.B)
			c.pdf.SetDrawColor(s.GridColor.R, s.GridColor.G, s.GridColor.B)

			if s.GridWidth > 0 {
				c.pdf.SetLineWidth(s.GridWidth)
				c.pdf.Rect(x, y, w, h, "FD")
			} else {
				c.pdf.Rect(x, y, w, h, "F")
			}

			c.SetFont(font)
			c.SetTextColor(textColor)
			c.pdf.SetXY(x+s.LeftPadding, y+s.TopPadding)
			c.pdf.CellFormat(w-s.LeftPadding-s.RightPadding, textHeight, c.tr(text), "", 0, s.Alignment, false, 0, "")

			x += w
		}

		c.pdf.SetXY(c.Left, y+h)
	}
}
