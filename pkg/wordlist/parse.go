package wordlist

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Parse reads newline-delimited values from r.
// It returns ErrEmptyList if r holds no values.
func Parse(r io.Reader) ([]string, error) {
	var values []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		values = append(values, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}
	if len(values) == 0 {
		return nil, ErrEmptyList
	}
	return values, nil
}

// ParseString is Parse for in-memory text.
func ParseString(s string) ([]string, error) {
	return Parse(strings.NewReader(s))
}
