package render

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

// ErrEmptySheetName indicates a Sheet without a file name.
var ErrEmptySheetName = errors.New("render: empty sheet name")

// Sheet is one named text output.
type Sheet struct {
	Name string
	Body string
}

// WriteSheets creates (or truncates) one file per sheet in fs. It stops at
// the first failing sheet.
func WriteSheets(fs billy.Filesystem, sheets ...Sheet) error {
	for _, s := range sheets {
		if s.Name == "" {
			return ErrEmptySheetName
		}
		if err := writeSheet(fs, s); err != nil {
			return fmt.Errorf("render: write %s: %w", s.Name, err)
		}
	}
	return nil
}

func writeSheet(fs billy.Filesystem, s Sheet) (err error) {
	f, err := fs.Create(s.Name)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	_, err = io.WriteString(f, s.Body)
	return err
}
