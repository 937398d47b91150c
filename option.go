package docgen

import (
	"bytes"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

func createOption(optionFns []OptionFn) *Option {
	option := &Option{}

	for _, fn := range optionFns {
		if fn != nil {
			fn(option)
		}
	}

	return option
}

// Option defines the option for the xlsx processing.
type Option struct {
	File *excelize.File
	Meta Meta
}

// Meta is the document metadata written into the core properties of a new file.
type Meta struct {
	Title   string
	Author  string
	Created time.Time
}

// OptionFn defines the func to change the option.
type OptionFn func(*Option)

// WithFile defines the input excel file for reading.
func WithFile(f string) OptionFn {
	file, err := excelize.OpenFile(f)
	if err != nil {
		logrus.Warnf("failed to open file %s: %v", f, err)
		return nil
	}

	return func(o *Option) { o.File = file }
}

// WithBytes defines the input excel file bytes for reading.
func WithBytes(f []byte) OptionFn {
	file, err := excelize.OpenReader(bytes.NewReader(f))
	if err != nil {
		logrus.Warnf("failed to read %d bytes of excel: %v", len(f), err)
		return nil
	}

	return func(o *Option) { o.File = file }
}

// WithReader defines the input excel file reader for reading.
func WithReader(f io.Reader) OptionFn {
	readerBytes, err := io.ReadAll(f)
	if err != nil {
		logrus.Warnf("failed to ReadAll: %v", err)
		return nil
	}

	return WithBytes(readerBytes)
}

// WithMeta defines the metadata of a newly created workbook.
func WithMeta(m Meta) OptionFn {
	return func(o *Option) { o.Meta = m }
}
