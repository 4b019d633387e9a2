// Package archive lists the entry names recorded in a zip archive's central
// directory. Zip64 archives are supported.
package archive

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
)

// ErrFormat is matched by errors for inputs that are not valid zip archives.
var ErrFormat = errors.New("not a valid zip archive")

// List returns the name of every entry in the archive, in directory order.
func List(r io.ReaderAt, size int64) ([]string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, formatError(err)
	}

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names, nil
}

func formatError(err error) error {
	if errors.Is(err, zip.ErrFormat) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return fmt.Errorf("read zip directory: %w", err)
}
