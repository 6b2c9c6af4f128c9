package namegen

import "strings"

// bank is an ordered, immutable list of names. It is built once during
// Generator construction and only ever read afterwards, so it is safe for
// concurrent use without locking.
type bank struct {
	names []string
}

// newBank copies and trims the given entries, dropping blank lines. It
// returns ErrEmptyBank when nothing usable remains.
func newBank(entries []string) (bank, error) {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	if len(names) == 0 {
		return bank{}, ErrEmptyBank
	}
	return bank{names: names}, nil
}

func (b bank) len() int {
	return len(b.names)
}

func (b bank) at(i int) string {
	return b.names[i]
}
