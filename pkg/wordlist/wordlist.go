package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lists holds the three name categories a generator samples from.
type Lists struct {
	Male     []string `yaml:"male"`
	Female   []string `yaml:"female"`
	Surnames []string `yaml:"surnames"`
}

// LoadFile reads a YAML word-list file containing the male, female, and
// surnames categories. Entries are trimmed and blanks dropped; every category
// must end up non-empty.
func LoadFile(path string) (Lists, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Lists{}, errors.Join(ErrReadFile, err)
	}

	var lists Lists
	if err := yaml.Unmarshal(raw, &lists); err != nil {
		return Lists{}, errors.Join(ErrParseFile, err)
	}

	for category, entries := range map[string]*[]string{
		"male":     &lists.Male,
		"female":   &lists.Female,
		"surnames": &lists.Surnames,
	} {
		cleaned := clean(*entries)
		if len(cleaned) == 0 {
			return Lists{}, fmt.Errorf("%w: %s", ErrEmptyList, category)
		}
		*entries = cleaned
	}

	return lists, nil
}

// ParseLines reads a plain one-name-per-line list, the format the generator's
// banks were traditionally shipped in. Lines are trimmed and blank lines
// skipped.
func ParseLines(r io.Reader) ([]string, error) {
	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			names = append(names, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	if len(names) == 0 {
		return nil, ErrEmptyList
	}

	return names, nil
}

func clean(entries []string) []string {
	cleaned := make([]string, 0, len(entries))
	for _, entry := range entries {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
