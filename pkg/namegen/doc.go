// Package namegen generates random person names: single names, batches with
// an optional gender split, and family groups that share one surname. It is
// useful for seeding databases, generating fixtures and demo data, or any
// place that needs plausible human names rather than opaque identifiers.
//
// A Name is a pair of first name and last name. First names are drawn from
// one of two gendered banks, last names from a surname bank; every draw is an
// independent uniform selection with replacement, so repeats within a batch
// are possible and expected.
//
// # Architecture
//
//   • Three immutable word banks (male first names, female first names,
//     surnames) are fixed at construction. The built-in curated lists in
//     names.go are the defaults; all three can be replaced via options.
//   • A single mutex-guarded *rand.Rand owned by the Generator is the only
//     source of randomness. Injecting a seeded source via WithRand makes
//     every operation reproducible, which the tests rely on.
//   • Batch operations that can be asked for zero names return a comma-ok
//     bool so callers can tell "nothing requested" apart from an empty
//     result. Family operations always return at least the two parents.
//
// # Usage
//
// Build a generator with the default banks:
//
//	gen, err := namegen.New()
//	if err != nil {
//		// only possible with custom, empty word lists
//	}
//
//	fmt.Println(gen.Generate())                       // e.g. "Nathan Reyes"
//	fmt.Println(gen.GenerateSpecific(namegen.Female)) // e.g. "Diane Brooks"
//
// Generate a batch with a deterministic gender split:
//
//	names, ok := gen.GenerateManySpecific(3, 2)
//	if ok {
//		boys, girls := names[:3], names[3:]
//		_ = boys
//		_ = girls
//	}
//
// Generate a family of two parents and four children, all sharing a surname:
//
//	for _, member := range gen.GenerateFamily(4) {
//		fmt.Println(member)
//	}
//
// Custom banks are handy in tests, where a one-entry bank pins the output:
//
//	gen, _ := namegen.New(
//		namegen.WithMaleNames([]string{"Bob"}),
//		namegen.WithFemaleNames([]string{"Alice"}),
//		namegen.WithSurnames([]string{"Smith"}),
//	)
package namegen
