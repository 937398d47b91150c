package docgen

// SummarySheet is the name of the sheet holding the totals.
const SummarySheet = "Resumo"

// SampleWorkbook builds the sample workbook: the people and sales sheets
// followed by a summary sheet counting both. The caller closes it.
func SampleWorkbook(m Meta) (*Xlsx, error) {
	x := New(WithMeta(m))

	if err := writeSampleWorkbook(x); err != nil {
		x.Close()
		return nil, err
	}

	return x, nil
}

func writeSampleWorkbook(x *Xlsx) error {
	if err := x.Write(People); err != nil {
		return err
	}

	if err := x.Write(Sales); err != nil {
		return err
	}

	summary, err := x.Sheet(SummarySheet)
	if err != nil {
		return err
	}

	title, err := x.BoldStyle(14)
	if err != nil {
		return err
	}

	for _, c := range []struct {
		cell  string
		value interface{}
		style int
	}{
		{"A1", "Resumo Geral", title},
		{"A3", "Total de pessoas:", 0},
		{"B3", len(People), 0},
		{"A4", "Total de produtos:", 0},
		{"B4", len(Sales), 0},
	} {
		if err := x.SetCell(summary, c.cell, c.value, c.style); err != nil {
			return err
		}
	}

	return nil
}
