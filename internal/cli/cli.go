// Package cli turns command-line arguments into a passphrase configuration.
package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/zorak1103/wordpass/internal/config"
	"github.com/zorak1103/wordpass/internal/dictionary"
	"github.com/zorak1103/wordpass/internal/passphrase"
)

// Settings is a resolved configuration together with where its parts came from.
type Settings struct {
	Passphrase     passphrase.Config
	DictionaryFrom string // dictionary.BundledSource or a file path
	WordCount      int    // lines in the dictionary
	ConfigFilePath string // empty when no config file was read
}

// NewFlagSet returns a flag set with the passphrase flags registered.
// Parsing stops with an error instead of exiting.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	config.RegisterFlags(fs)
	return fs
}

// Parse parses args (without the program name) and resolves them into a
// passphrase configuration. Non-flag arguments are ignored.
func Parse(fsys afero.Fs, args []string) (passphrase.Config, error) {
	fs := NewFlagSet("wordpass")
	if err := fs.Parse(args); err != nil {
		return passphrase.Config{}, err
	}

	s, err := Resolve(fsys, "", fs)
	if err != nil {
		return passphrase.Config{}, err
	}
	return s.Passphrase, nil
}

// Resolve loads layered settings for the already parsed fs, then reads the
// selected dictionary through fsys.
func Resolve(fsys afero.Fs, configPath string, fs *pflag.FlagSet) (*Settings, error) {
	cfg, err := config.Load(configPath, fs)
	if err != nil {
		return nil, err
	}

	dict, err := dictionary.Load(fsys, cfg.Dictionary)
	if err != nil {
		return nil, err
	}

	return &Settings{
		Passphrase: passphrase.Config{
			Dictionary: dict.Text,
			Separator:  cfg.Separator,
			Count:      cfg.Count,
		},
		DictionaryFrom: dict.Source,
		WordCount:      len(dict.Words()),
		ConfigFilePath: cfg.ConfigFilePath,
	}, nil
}
