// Package wordlist loads custom name banks from files so a generator can run
// on something other than the built-in lists. Two formats are supported: a
// YAML document carrying all three categories at once, and a plain
// one-name-per-line text format for overriding a single category.
//
// The YAML layout:
//
//	male:
//	  - Arthur
//	  - Bram
//	female:
//	  - Clara
//	  - Dora
//	surnames:
//	  - Ellsworth
//
// Every entry is trimmed and blank entries are dropped, so hand-edited files
// with stray whitespace load cleanly. A category that ends up empty is a hard
// error: downstream sampling needs at least one entry per bank.
//
// # Usage
//
//	lists, err := wordlist.LoadFile("names.yaml")
//	if err != nil {
//		return err
//	}
//	gen, err := namegen.New(
//		namegen.WithMaleNames(lists.Male),
//		namegen.WithFemaleNames(lists.Female),
//		namegen.WithSurnames(lists.Surnames),
//	)
//
// Errors wrap the package sentinels (ErrReadFile, ErrParseFile, ErrEmptyList)
// so callers can branch with errors.Is.
package wordlist
