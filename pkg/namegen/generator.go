package namegen

import (
	"math/rand"
	"sync"
	"time"
)

// Option configures Generator construction.
type Option func(*config)

// config holds the construction-time settings for a Generator.
type config struct {
	maleNames   []string
	femaleNames []string
	surnames    []string
	rnd         *rand.Rand
}

// WithMaleNames replaces the built-in male first-name bank.
func WithMaleNames(names []string) Option {
	return func(c *config) {
		c.maleNames = names
	}
}

// WithFemaleNames replaces the built-in female first-name bank.
func WithFemaleNames(names []string) Option {
	return func(c *config) {
		c.femaleNames = names
	}
}

// WithSurnames replaces the built-in surname bank.
func WithSurnames(names []string) Option {
	return func(c *config) {
		c.surnames = names
	}
}

// WithRand sets the random source used for every draw. Passing a seeded
// source makes the output sequence reproducible. Nil sources are ignored.
func WithRand(rnd *rand.Rand) Option {
	return func(c *config) {
		if rnd != nil {
			c.rnd = rnd
		}
	}
}

// Generator produces random names from three fixed word banks. The banks are
// immutable after construction and the random source is mutex-guarded, so a
// single Generator is safe for concurrent use.
type Generator struct {
	maleFirstNames   bank
	femaleFirstNames bank
	surnames         bank

	mu  sync.Mutex
	rnd *rand.Rand
}

// New builds a Generator from the default curated word lists, or from custom
// lists supplied via options. Entries are trimmed and blank entries dropped;
// New returns ErrEmptyBank when any of the three banks ends up empty.
func New(opts ...Option) (*Generator, error) {
	cfg := &config{
		maleNames:   maleFirstNames,
		femaleNames: femaleFirstNames,
		surnames:    surnames,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	male, err := newBank(cfg.maleNames)
	if err != nil {
		return nil, err
	}
	female, err := newBank(cfg.femaleNames)
	if err != nil {
		return nil, err
	}
	last, err := newBank(cfg.surnames)
	if err != nil {
		return nil, err
	}

	return &Generator{
		maleFirstNames:   male,
		femaleFirstNames: female,
		surnames:         last,
		rnd:              cfg.rnd,
	}, nil
}

// Generate returns one random name with a uniformly random gender.
func (g *Generator) Generate() Name {
	return g.GenerateSpecific(g.randomGender())
}

// GenerateSpecific returns one random name whose first name comes from the
// bank matching the given gender. The surname is drawn independently.
func (g *Generator) GenerateSpecific(gender Gender) Name {
	return Name{
		FirstName: g.pickFirstName(gender),
		LastName:  g.pick(g.surnames),
	}
}

// GenerateMany returns amount independent random names in call order. The
// second return value is false when amount is zero or negative: nothing was
// requested, which is distinct from an empty result.
func (g *Generator) GenerateMany(amount int) ([]Name, bool) {
	if amount <= 0 {
		return nil, false
	}

	names := make([]Name, 0, amount)
	for i := 0; i < amount; i++ {
		names = append(names, g.Generate())
	}
	return names, true
}

// GenerateManySpecific returns maleAmount male names followed by
// femaleAmount female names. The male-before-female ordering is part of the
// contract so callers can split the slice deterministically. The second
// return value is false when neither gender was requested. A negative amount
// behaves as zero.
func (g *Generator) GenerateManySpecific(maleAmount, femaleAmount int) ([]Name, bool) {
	if maleAmount <= 0 && femaleAmount <= 0 {
		return nil, false
	}

	names := make([]Name, 0, max(maleAmount, 0)+max(femaleAmount, 0))
	for i := 0; i < maleAmount; i++ {
		names = append(names, g.GenerateSpecific(Male))
	}
	for i := 0; i < femaleAmount; i++ {
		names = append(names, g.GenerateSpecific(Female))
	}
	return names, true
}

// GenerateFamily returns a father, a mother, and children more members, in
// that order, all sharing a single surname drawn once. Each child's gender is
// chosen at random. Unlike the batch operations there is no "nothing
// requested" case: the two parents are always returned.
func (g *Generator) GenerateFamily(children int) []Name {
	surname := g.pick(g.surnames)

	family := make([]Name, 0, 2+max(children, 0))
	family = append(family, g.familyMember(surname, Male))
	family = append(family, g.familyMember(surname, Female))

	for i := 0; i < children; i++ {
		family = append(family, g.familyMember(surname, g.randomGender()))
	}
	return family
}

// GenerateFamilySpecific is GenerateFamily with an explicit gender split:
// father, mother, then all male children followed by all female children,
// every member sharing one surname. At least the two parents are returned.
func (g *Generator) GenerateFamilySpecific(maleChildren, femaleChildren int) []Name {
	surname := g.pick(g.surnames)

	family := make([]Name, 0, 2+max(maleChildren, 0)+max(femaleChildren, 0))
	family = append(family, g.familyMember(surname, Male))
	family = append(family, g.familyMember(surname, Female))

	for i := 0; i < maleChildren; i++ {
		family = append(family, g.familyMember(surname, Male))
	}
	for i := 0; i < femaleChildren; i++ {
		family = append(family, g.familyMember(surname, Female))
	}
	return family
}

// familyMember builds one member with the shared family surname.
func (g *Generator) familyMember(surname string, gender Gender) Name {
	return Name{
		FirstName: g.pickFirstName(gender),
		LastName:  surname,
	}
}

func (g *Generator) pickFirstName(gender Gender) string {
	if gender == Male {
		return g.pick(g.maleFirstNames)
	}
	return g.pick(g.femaleFirstNames)
}

// pick draws one entry uniformly at random, with replacement. This is the
// only source of randomness in the package.
func (g *Generator) pick(b bank) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return b.at(g.rnd.Intn(b.len()))
}

func (g *Generator) randomGender() Gender {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rnd.Intn(2) == 0 {
		return Male
	}
	return Female
}
