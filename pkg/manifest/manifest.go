// Package manifest reads the list of entry names a bundle is expected to contain.
package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode"
)

type Options struct {
	// IgnoreBlankLines drops lines that are empty after trimming. By default
	// they are kept as "" entries.
	IgnoreBlankLines bool
}

// Read returns one entry name per line of r with surrounding whitespace
// trimmed. "\n", "\r\n" and a lone "\r" all end a line, and a final line
// without a terminator is still read.
func Read(r io.Reader, opts Options) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	sc.Split(scanLines)

	names := []string{}
	for sc.Scan() {
		name := trim(sc.Text())
		if name != "" || !opts.IgnoreBlankLines {
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return names, nil
}

// scanLines is bufio.ScanLines with "\r" also accepted as a terminator.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		// "\r" at the end of the buffer may be the first half of "\r\n".
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// trim strips the same characters as Python's str.strip, which also counts
// the file, group, record and unit separators as whitespace.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
	})
}
