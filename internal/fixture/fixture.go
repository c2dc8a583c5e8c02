// SPDX-License-Identifier: MIT
// Package fixture loads the shared language cases used by the package tests.
//
// Each case names a pattern, the alphabet to enumerate words over, example
// words in and out of the language, and the state count of its minimal
// complete DFA.
package fixture

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var languagesYAML []byte

// ErrInvalidCase is returned when a decoded case is missing a required field.
var ErrInvalidCase = errors.New("fixture: invalid case")

// Case is one language under test.
type Case struct {
	Name      string   `yaml:"name"`
	Pattern   string   `yaml:"pattern"`
	Alphabet  []string `yaml:"alphabet"`
	Accept    []string `yaml:"accept"`
	Reject    []string `yaml:"reject"`
	MinStates int      `yaml:"min_states"`
}

type suite struct {
	Cases []Case `yaml:"cases"`
}

// Languages returns the embedded cases.
func Languages() ([]Case, error) {
	return Parse(languagesYAML)
}

// Parse decodes a YAML document of cases. Unknown fields are rejected.
func Parse(data []byte) ([]Case, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s suite
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	for i, c := range s.Cases {
		switch {
		case c.Name == "":
			return nil, fmt.Errorf("%w: case %d has no name", ErrInvalidCase, i)
		case c.Pattern == "":
			return nil, fmt.Errorf("%w: %s has no pattern", ErrInvalidCase, c.Name)
		case len(c.Alphabet) == 0:
			return nil, fmt.Errorf("%w: %s has no alphabet", ErrInvalidCase, c.Name)
		}
	}

	return s.Cases, nil
}

// Words returns every word over alphabet of length 0..maxLen, shortest first.
func Words(alphabet []string, maxLen int) [][]string {
	out := [][]string{{}}
	layer := [][]string{{}}
	for n := 1; n <= maxLen; n++ {
		next := make([][]string, 0, len(layer)*len(alphabet))
		for _, w := range layer {
			for _, s := range alphabet {
				ext := make([]string, len(w)+1)
				copy(ext, w)
				ext[len(w)] = s
				next = append(next, ext)
			}
		}
		out = append(out, next...)
		layer = next
	}

	return out
}
