package cmd

import (
	"fmt"
	"io"

	"github.com/zorak1103/wordpass/internal/cli"
	"github.com/zorak1103/wordpass/internal/dictionary"
)

// printSettings writes the effective settings to w. Only used with --verbose,
// so the passphrase stays the only thing on stdout.
func printSettings(w io.Writer, s *cli.Settings) {
	_, _ = fmt.Fprintln(w, "=== wordpass effective settings ===")
	_, _ = fmt.Fprintf(w, "   Dictionary:   %s\n", describeDictionary(s))
	_, _ = fmt.Fprintf(w, "   Count:        %d\n", s.Passphrase.Count)
	_, _ = fmt.Fprintf(w, "   Separator:    %q\n", s.Passphrase.Separator)
	_, _ = fmt.Fprintf(w, "   Config file:  %s\n", describeConfigFile(s.ConfigFilePath))
	_, _ = fmt.Fprintln(w)
}

func describeDictionary(s *cli.Settings) string {
	if s.DictionaryFrom == dictionary.BundledSource {
		return fmt.Sprintf("[BUNDLED] %d words", s.WordCount)
	}
	return fmt.Sprintf("[EXTERNAL] %s (%d words)", s.DictionaryFrom, s.WordCount)
}

func describeConfigFile(path string) string {
	if path == "" {
		return "(none)"
	}
	return path
}
