// Package story lays out a linear list of flowables (paragraphs, spacers and
// tables) onto PDF pages.
package story

// Flowable is an element appended to a story and drawn in order.
type Flowable interface {
	Draw(c *Canvas)
}

// Story is the ordered content of a document.
type Story []Flowable

// Paragraph is a block of text wrapped to the frame width.
type Paragraph struct {
	Text  string
	Style Style
}

// NewParagraph creates a paragraph with the style.
func NewParagraph(text string, style Style) Paragraph {
	return Paragraph{Text: text, Style: style}
}

// Draw draws the paragraph, starting a new page when it does not fit.
func (p Paragraph) Draw(c *Canvas) {
	s := p.Style

	if s.SpaceBefore > 0 && !c.AtTop() {
		c.pdf.Ln(s.SpaceBefore)
	}

	c.SetFont(s.Font)
	c.SetTextColor(s.TextColor)

	text := c.tr(p.Text)
	lines := c.pdf.SplitText(codePageRunes(text), c.Width)
	c.EnsureSpace(float64(len(lines)) * s.Leading)

	c.pdf.SetX(c.Left)
	c.pdf.MultiCell(c.Width, s.Leading, text, "", s.Alignment, false)

	if s.SpaceAfter > 0 {
		c.pdf.Ln(s.SpaceAfter)
	}
}

// codePageRunes widens each byte of translated text to one rune, so SplitText
// looks up the same core font widths MultiCell draws with.
func codePageRunes(translated string) string {
	runes := make([]rune, len(translated))
	for i := 0; i < len(translated); i++ {
		runes[i] = rune(translated[i])
	}

	return string(runes)
}

// Spacer is vertical blank space.
type Spacer struct {
	Width  float64
	Height float64
}

// Draw moves the cursor down, spacers at the top of a page are dropped.
func (s Spacer) Draw(c *Canvas) {
	if c.AtTop() {
		return
	}

	c.pdf.Ln(s.Height)
}
