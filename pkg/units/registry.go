package units

import (
	"fmt"
	"regexp"
	"sort"
)

// UnitFactory constructs a concrete unit at the given decimal magnitude
// exponent.
type UnitFactory func(magnitude float64) Unit

// registration pairs a compiled lexical pattern with its unit factory.
type registration struct {
	pattern string
	re      *regexp.Regexp
	factory UnitFactory
}

// dimensionTable holds the registrations and standard unit of one dimension.
type dimensionTable struct {
	dimension Dimension
	standard  *Unit
	entries   []registration
	patterns  map[string]bool
}

// Registry maps lexical unit patterns to unit factories, per dimension, and
// records each dimension's standard unit. It is the engine's contract with
// external tokenizers: given matched text, a tokenizer selects the factory
// and constructs the unit. Registration is append-only and happens once
// during process start-up; afterwards the registry must be treated as
// read-only, which makes concurrent reads safe.
// Implements: prd004-unit-registry R1.
type Registry struct {
	tables map[string]*dimensionTable // keyed by Dimension.Key
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*dimensionTable)}
}

// table returns the dimension's table, creating it on first use.
func (r *Registry) table(dim Dimension) *dimensionTable {
	key := dim.Key()
	t, ok := r.tables[key]
	if !ok {
		t = &dimensionTable{dimension: dim, patterns: make(map[string]bool)}
		r.tables[key] = t
	}
	return t
}

// Register adds a lexical pattern for the given dimension. Patterns are
// regular expressions matched against the whole of a candidate token. A
// pattern already registered for the dimension returns ErrDuplicatePattern
// rather than overwriting.
func (r *Registry) Register(dim Dimension, pattern string, factory UnitFactory) error {
	t := r.table(dim)
	if t.patterns[pattern] {
		return fmt.Errorf("%w: %q", ErrDuplicatePattern, pattern)
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	t.entries = append(t.entries, registration{pattern: pattern, re: re, factory: factory})
	t.patterns[pattern] = true
	return nil
}

// SetStandardUnit records the designated standard unit for the dimension,
// used as the default whenever a value's unit is otherwise unset. It
// returns ErrDimensionMismatch when the unit belongs to another dimension.
func (r *Registry) SetStandardUnit(dim Dimension, u Unit) error {
	if !u.Dimensions().Equal(dim) {
		return ErrDimensionMismatch
	}
	t := r.table(dim)
	t.standard = &u
	return nil
}

// StandardUnit returns the standard unit of the dimension and whether one
// is recorded.
func (r *Registry) StandardUnit(dim Dimension) (Unit, bool) {
	t, ok := r.tables[dim.Key()]
	if !ok || t.standard == nil {
		return Unit{}, false
	}
	return *t.standard, true
}

// Match returns the factory of the first pattern registered for the
// dimension that matches the whole of text, in registration order.
func (r *Registry) Match(dim Dimension, text string) (UnitFactory, bool) {
	t, ok := r.tables[dim.Key()]
	if !ok {
		return nil, false
	}
	for _, e := range t.entries {
		if e.re.MatchString(text) {
			return e.factory, true
		}
	}
	return nil, false
}

// Lookup searches every dimension table for a pattern matching text,
// visiting dimensions in canonical key order.
func (r *Registry) Lookup(text string) (Dimension, UnitFactory, bool) {
	for _, t := range r.sortedTables() {
		for _, e := range t.entries {
			if e.re.MatchString(text) {
				return t.dimension, e.factory, true
			}
		}
	}
	return Dimension{}, nil, false
}

// Patterns returns the patterns registered for the dimension, in
// registration order.
func (r *Registry) Patterns(dim Dimension) []string {
	t, ok := r.tables[dim.Key()]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e.pattern)
	}
	return out
}

// Dimensions returns the registered dimensions in canonical key order.
func (r *Registry) Dimensions() []Dimension {
	tables := r.sortedTables()
	out := make([]Dimension, 0, len(tables))
	for _, t := range tables {
		out = append(out, t.dimension)
	}
	return out
}

// sortedTables returns the dimension tables ordered by canonical key.
func (r *Registry) sortedTables() []*dimensionTable {
	keys := make([]string, 0, len(r.tables))
	for k := range r.tables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*dimensionTable, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.tables[k])
	}
	return out
}

// NewStandardRegistry returns a registry populated with the built-in
// dimensions, their lexical patterns, and their standard units. Call it
// once during process start-up and treat the result as read-only.
func NewStandardRegistry() (*Registry, error) {
	r := NewRegistry()
	for _, seed := range []func(*Registry) error{
		registerDimensionless,
		registerLength,
		registerTime,
		registerMass,
		registerTemperature,
		registerElectricPotential,
		registerElectrocaloricStrength,
	} {
		if err := seed(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// patternRegistration seeds one pattern of a built-in dimension table.
type patternRegistration struct {
	pattern string
	factory UnitFactory
}

// registerAll registers every pattern of one dimension and its standard
// unit.
func registerAll(r *Registry, dim Dimension, standard Unit, regs []patternRegistration) error {
	for _, reg := range regs {
		if err := r.Register(dim, reg.pattern, reg.factory); err != nil {
			return err
		}
	}
	return r.SetStandardUnit(dim, standard)
}
