package docgen_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bingoohuang/docgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errReader int

func (errReader) Read(_ []byte) (n int, err error) {
	return 0, errors.New("test error") // nolint:goerr113
}

func TestOptionsFailToLoad(t *testing.T) {
	assert.Nil(t, docgen.WithReader(errReader(0)))
	assert.Nil(t, docgen.WithFile("go.mod"))
	assert.Nil(t, docgen.WithFile(filepath.Join(t.TempDir(), "missing.xlsx")))
	assert.Nil(t, docgen.WithBytes([]byte("not a zip")))

	// a nil option leaves a fresh workbook
	x := docgen.New(docgen.WithFile("go.mod"))
	defer x.Close()

	assert.Equal(t, []string{"Sheet1"}, x.SheetNames())

	// the default sheet is taken over by the first written sheet
	require.NoError(t, x.Write(docgen.Sales))
	assert.Equal(t, []string{"Vendas"}, x.SheetNames())
}

func TestWithBytesAndReader(t *testing.T) {
	x := docgen.New(docgen.WithMeta(docgen.Meta{
		Title:   "Planilha",
		Author:  docgen.Author,
		Created: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}))
	defer x.Close()

	require.NoError(t, x.Write(docgen.People))

	var buf bytes.Buffer
	require.NoError(t, x.Save(&buf))

	fromBytes := docgen.New(docgen.WithBytes(buf.Bytes()))
	defer fromBytes.Close()

	var people []docgen.Person
	require.NoError(t, fromBytes.Read(&people))
	assert.Equal(t, docgen.People, people)

	fromReader := docgen.New(docgen.WithReader(bytes.NewReader(buf.Bytes())))
	defer fromReader.Close()

	props, err := fromReader.File().GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Planilha", props.Title)
	assert.Equal(t, docgen.Author, props.Creator)
	assert.Equal(t, "2024-01-15T10:00:00Z", props.Created)
}

func TestWithFile(t *testing.T) {
	x := docgen.New()
	defer x.Close()

	require.NoError(t, x.Write(docgen.Sales))

	file := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, x.SaveToFile(file))

	fi, err := os.Stat(file)
	require.NoError(t, err)
	assert.NotZero(t, fi.Size())

	assert.NotNil(t, docgen.WithFile(file))
}
