package apperrors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError_Error(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  *ConfigurationError
		want string
	}{
		{
			name: "with key and path",
			err:  &ConfigurationError{ConfigPath: "/etc/wordpass/config.yaml", Key: "count", Err: base},
			want: "configuration error in /etc/wordpass/config.yaml (key: count): boom",
		},
		{
			name: "without key",
			err:  &ConfigurationError{ConfigPath: "config.yaml", Err: base},
			want: "configuration error in config.yaml: boom",
		},
		{
			name: "without path",
			err:  &ConfigurationError{Key: "count", Err: base},
			want: "configuration error in (defaults/environment/flags) (key: count): boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, base)
		})
	}
}

func TestDictionaryError_UnwrapsIOFailure(t *testing.T) {
	err := &DictionaryError{Path: "/missing/words.txt", Err: fs.ErrNotExist}

	assert.Contains(t, err.Error(), "/missing/words.txt")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSampleError_Error(t *testing.T) {
	assert.Equal(t, "cannot select 5 distinct words from a dictionary of 2",
		(&SampleError{Requested: 5, Available: 2}).Error())
	assert.Contains(t, (&SampleError{Requested: -1, Available: 2}).Error(), "must not be negative")
}
