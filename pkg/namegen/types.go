package namegen

// Gender selects which first-name bank a draw comes from.
type Gender int

// Genders available for name generation.
const (
	Male Gender = iota
	Female
)

// String returns a human-readable label for the gender.
func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "unknown"
	}
}

// Name is a generated person name. It has no identity beyond its field
// values and is immutable once returned.
type Name struct {
	FirstName string
	LastName  string
}

// String renders the name as "FirstName LastName".
func (n Name) String() string {
	return n.FirstName + " " + n.LastName
}

// DefaultName returns the fixed "John Doe" placeholder. It involves no
// randomness and is safe to use as a sentinel or fallback value.
func DefaultName() Name {
	return Name{FirstName: "John", LastName: "Doe"}
}
