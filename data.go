package docgen

import "strconv"

// Person is a row of the Dados sheet.
type Person struct {
	T `sheet:"Dados"`

	Name string `title:"Nome"`
	Age  int    `title:"Idade"`
	City string `title:"Cidade"`
}

// Sale is a row of the Vendas sheet.
type Sale struct {
	T `sheet:"Vendas"`

	Product  string  `title:"Produto"`
	Quantity int     `title:"Quantidade"`
	Value    float64 `title:"Valor"`
}

// nolint gochecknoglobals
var (
	// People is the sample roster.
	People = []Person{
		{Name: "João Silva", Age: 28, City: "São Paulo"},
		{Name: "Maria Santos", Age: 32, City: "Rio de Janeiro"},
		{Name: "Pedro Oliveira", Age: 25, City: "Belo Horizonte"},
		{Name: "Ana Costa", Age: 30, City: "Curitiba"},
	}

	// Sales is the sample sales list.
	Sales = []Sale{
		{Product: "Produto A", Quantity: 100, Value: 1500.00},
		{Product: "Produto B", Quantity: 50, Value: 2500.00},
		{Product: "Produto C", Quantity: 75, Value: 1800.00},
	}

	// ListItems is the bulleted list of the word document.
	ListItems = []string{"Primeiro item", "Segundo item", "Terceiro item"}
)

// tablePeople is how many people the word and PDF tables list.
const tablePeople = 3

// PeopleTable returns the people table used by the word document and the PDF
// report: a title row followed by the first three people, all as text.
func PeopleTable() [][]string {
	rows := [][]string{Titles(Person{})}

	for _, p := range People[:tablePeople] {
		rows = append(rows, []string{p.Name, strconv.Itoa(p.Age), p.City})
	}

	return rows
}
