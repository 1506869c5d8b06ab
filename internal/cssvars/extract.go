// Package cssvars extracts color custom properties from stylesheet files.
package cssvars

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/opencode-ai/contrast/internal/logging"
)

// ErrNoVariablesFound means no candidate file existed or none declared a color variable.
var ErrNoVariablesFound = errors.New("no CSS variable files found or no variables extracted")

// Variable is one color custom-property declaration.
type Variable struct {
	Name   string
	Value  string
	Source string
}

// Set maps variable names to their last declared value.
type Set struct {
	values map[string]Variable
	order  []string
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{values: make(map[string]Variable)}
}

// Put records v, replacing any earlier declaration of the same name.
func (s *Set) Put(v Variable) {
	if _, exists := s.values[v.Name]; !exists {
		s.order = append(s.order, v.Name)
	}
	s.values[v.Name] = v
}

// Lookup returns the hex value declared for name.
func (s *Set) Lookup(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[name]
	return v.Value, ok
}

// Len returns the number of distinct names.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Variables returns the winning declarations in first-seen name order.
func (s *Set) Variables() []Variable {
	if s == nil {
		return nil
	}
	out := make([]Variable, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.values[name])
	}
	return out
}

// Map returns a copy of the name to value mapping.
func (s *Set) Map() map[string]string {
	out := make(map[string]string, s.Len())
	for _, v := range s.Variables() {
		out[v.Name] = v.Value
	}
	return out
}

// Extract reads each existing path in order and merges its declarations.
// Missing files, including paths under a non-directory, are skipped.
// An empty Set is not an error.
func Extract(paths []string) (*Set, error) {
	logger := logging.Component("cssvars")
	set := NewSet()

	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			if isMissing(err) {
				logger.Debug().Str("path", path).Msg("stylesheet not found, skipping")
				continue
			}
			return nil, fmt.Errorf("read stylesheet %s: %w", path, err)
		}

		vars, err := Parse(file, path)
		file.Close()
		if err != nil {
			return nil, err
		}

		for _, v := range vars {
			set.Put(v)
		}
		logger.Debug().
			Str("path", path).
			Int("declarations", len(vars)).
			Msg("stylesheet scanned")
	}

	return set, nil
}

func isMissing(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
