package docgen

import (
	"bytes"
	"io"
	"os"
)

// saveFile renders into memory before touching the file, so a failed render
// leaves nothing on disk.
func saveFile(file string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}

	return writeFile(file, buf.Bytes())
}

// writeFile writes data to the file and removes it again when the write fails.
func writeFile(file string, data []byte) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
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
