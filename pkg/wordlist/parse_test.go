package wordlist_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakegen/pkg/wordlist"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
		err   error
	}{
		{name: "unix newlines", input: "Melvin\nJamey\n", want: []string{"Melvin", "Jamey"}},
		{name: "no trailing newline", input: "Melvin\nJamey", want: []string{"Melvin", "Jamey"}},
		{name: "windows newlines", input: "Melvin\r\nJamey\r\n", want: []string{"Melvin", "Jamey"}},
		{name: "blank lines skipped", input: "\nMelvin\n\n\nJamey\n\n", want: []string{"Melvin", "Jamey"}},
		{name: "inner spaces kept", input: "New York\n Mr. \n", want: []string{"New York", " Mr. "}},
		{name: "unicode", input: "Élodie\nSøren\n", want: []string{"Élodie", "Søren"}},
		{name: "empty", input: "", err: wordlist.ErrEmptyList},
		{name: "only blank lines", input: "\n\r\n\n", err: wordlist.ErrEmptyList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := wordlist.ParseString(tt.input)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_ReaderError(t *testing.T) {
	t.Parallel()

	_, err := wordlist.Parse(failingReader{})
	require.ErrorIs(t, err, wordlist.ErrLoadFailed)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestParse_LongLines(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 100_000)
	got, err := wordlist.ParseString(long + "\nshort\n")
	require.NoError(t, err)
	assert.Equal(t, []string{long, "short"}, got)
}
