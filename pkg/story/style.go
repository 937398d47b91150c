package story

// Color is an RGB color with 0-255 components.
type Color struct{ R, G, B int }

// nolint gochecknoglobals
var (
	Black      = Color{0, 0, 0}
	White      = Color{255, 255, 255}
	Grey       = Color{128, 128, 128}
	WhiteSmoke = Color{245, 245, 245}
	Beige      = Color{245, 245, 220}
)

// Font selects one of the PDF core fonts.
type Font struct {
	Family string
	Style  string // "", "B", "I" or "BI"
	Size   float64
}

// Style is a paragraph style. Sizes are in points.
type Style struct {
	Name        string
	Font        Font
	Leading     float64
	Alignment   string // "L", "C", "R" or "J"
	SpaceBefore float64
	SpaceAfter  float64
	TextColor   Color
}

// StyleSheet maps style names to styles.
type StyleSheet map[string]Style

// SampleStyleSheet returns the basic paragraph styles: Normal, BodyText, Title,
// Heading1 and Heading2.
func SampleStyleSheet() StyleSheet {
	normal := Style{
		Name:      "Normal",
		Font:      Font{Family: "Helvetica", Size: 10},
		Leading:   12,
		Alignment: "L",
		TextColor: Black,
	}

	body := normal
	body.Name = "BodyText"
	body.SpaceBefore = 6

	title := normal
	title.Name = "Title"
	title.Font = Font{Family: "Helvetica", Style: "B", Size: 18}
	title.Leading = 22
	title.Alignment = "C"
	title.SpaceAfter = 6

	h1 := normal
	h1.Name = "Heading1"
	h1.Font = Font{Family: "Helvetica", Style: "B", Size: 18}
	h1.Leading = 22
	h1.SpaceAfter = 6

	h2 := normal
	h2.Name = "Heading2"
	h2.Font = Font{Family: "Helvetica", Style: "B", Size: 14}
	h2.Leading = 18
	h2.SpaceBefore = 12
	h2.SpaceAfter = 6

	return StyleSheet{
		normal.Name: normal,
		body.Name:   body,
		title.Name:  title,
		h1.Name:     h1,
		h2.Name:     h2,
	}
}
