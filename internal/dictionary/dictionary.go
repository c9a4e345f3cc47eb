// Package dictionary provides the word lists passphrases are drawn from.
package dictionary

import (
	_ "embed"
	"strings"

	"github.com/spf13/afero"
	apperrors "github.com/zorak1103/wordpass/internal/errors"
)

// BundledSource is the Source of the word list compiled into the binary.
const BundledSource = "bundled"

//go:embed words.txt
var bundled string

// Dictionary is a newline-delimited word list and where it came from.
type Dictionary struct {
	Source string // BundledSource or the file path
	Text   string
}

// Default returns the bundled word list.
func Default() *Dictionary {
	return &Dictionary{Source: BundledSource, Text: bundled}
}

// Load returns the bundled list when path is empty, otherwise the contents of
// the file at path read through fsys.
func Load(fsys afero.Fs, path string) (*Dictionary, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, &apperrors.DictionaryError{Path: path, Err: err}
	}

	return &Dictionary{Source: path, Text: string(data)}, nil
}

// Words returns the lines of the dictionary in order.
func (d *Dictionary) Words() []string {
	return Lines(d.Text)
}

// Lines splits text on '\n', dropping one trailing '\r' from each line.
// A final newline does not produce an empty trailing line. Interior blank
// lines are kept.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
