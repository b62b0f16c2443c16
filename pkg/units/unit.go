package units

import (
	"hash/fnv"
	"math"
	"sort"
	"strings"
)

// Dimensioned is implemented by values that report a physical dimension.
// Quantity.SetUnit accepts any Dimensioned candidate but binds only Unit
// values whose dimension matches.
type Dimensioned interface {
	Dimensions() Dimension
}

// Converter supplies the four conversion primitives of a base unit: values
// and uncertainties, each to and from the dimension's standard unit. Value
// conversions may be affine; uncertainty conversions must apply scale
// factors only, since an uncertainty has no absolute reference point.
// Implements: prd002-unit-algebra R2.
type Converter interface {
	ValueToStandard(value float64) float64
	ValueFromStandard(value float64) float64
	ErrorToStandard(err float64) float64
	ErrorFromStandard(err float64) float64
}

// LinearConverter converts by a constant scale factor.
type LinearConverter struct {
	Factor float64
}

func (c LinearConverter) ValueToStandard(v float64) float64   { return v * c.Factor }
func (c LinearConverter) ValueFromStandard(v float64) float64 { return v / c.Factor }
func (c LinearConverter) ErrorToStandard(e float64) float64   { return e * c.Factor }
func (c LinearConverter) ErrorFromStandard(e float64) float64 { return e / c.Factor }

// AffineConverter converts by scale and additive offset
// (standard = value·Scale + Offset). The offset applies to values only;
// uncertainties use the scale alone.
type AffineConverter struct {
	Scale  float64
	Offset float64
}

func (c AffineConverter) ValueToStandard(v float64) float64   { return v*c.Scale + c.Offset }
func (c AffineConverter) ValueFromStandard(v float64) float64 { return (v - c.Offset) / c.Scale }
func (c AffineConverter) ErrorToStandard(e float64) float64   { return e * c.Scale }
func (c AffineConverter) ErrorFromStandard(e float64) float64 { return e / c.Scale }

// identity is the converter of standard units.
var identity = LinearConverter{Factor: 1}

// unitTerm is one entry of a composite unit signature. The unit held is
// always at magnitude zero; decimal scale lives on the composite.
type unitTerm struct {
	unit  Unit
	power float64
}

// Unit is an immutable measurement unit bound to a Dimension. A base unit
// carries a Converter; a composite unit produced by the algebra carries a
// signature of magnitude-normalized base units and rational powers. Every
// unit carries a decimal magnitude exponent (kilo = 3).
// Implements: prd002-unit-algebra R1.
type Unit struct {
	name      string
	dimension Dimension
	magnitude float64
	terms     map[string]unitTerm // nil for base units; keyed by term unit Key
	conv      Converter           // non-nil exactly when terms is nil
}

// NewUnit returns a base unit with the given name, dimension, decimal
// magnitude exponent, and conversion primitives.
func NewUnit(name string, dim Dimension, magnitude float64, conv Converter) Unit {
	return Unit{name: name, dimension: dim, magnitude: magnitude, conv: conv}
}

// UnitPower pairs a constituent unit with its power in a composite.
type UnitPower struct {
	Unit  Unit
	Power float64
}

// NewCompositeUnit builds a unit from explicit constituent powers, as an
// alternative to composing units with Mul and Div; both constructions yield
// equal units. Constituent magnitudes fold into the composite magnitude,
// scaled by their powers, and dimensionless constituents are dropped.
func NewCompositeUnit(dim Dimension, magnitude float64, powers []UnitPower) Unit {
	terms := make(map[string]unitTerm)
	mag := magnitude
	for _, p := range powers {
		mag += p.Unit.magnitude * p.Power
		p.Unit.accumulateTerms(terms, p.Power)
	}
	return fromTerms(dim, mag, terms)
}

// Name returns the concrete unit name; it is empty for composites produced
// by the algebra.
func (u Unit) Name() string { return u.name }

// Dimensions returns the unit's dimension.
func (u Unit) Dimensions() Dimension { return u.dimension }

// Magnitude returns the decimal magnitude exponent.
func (u Unit) Magnitude() float64 { return u.magnitude }

// IsComposite reports whether u carries a composite signature.
func (u Unit) IsComposite() bool { return u.terms != nil }

// Mul returns the product unit. Magnitudes combine additively; constituent
// units that differ only in decimal prefix merge, with their prefixes
// folded into the combined magnitude, so kilometer times millimeter cancels
// to square meters and kilometer times inverse meter leaves a dimensionless
// unit carrying the residual magnitude.
func (u Unit) Mul(other Unit) Unit {
	terms := make(map[string]unitTerm)
	u.accumulateTerms(terms, 1)
	other.accumulateTerms(terms, 1)
	return fromTerms(u.dimension.Mul(other.dimension), u.magnitude+other.magnitude, terms)
}

// Div returns the quotient unit u / other.
func (u Unit) Div(other Unit) Unit {
	return u.Mul(other.Pow(-1))
}

// Pow returns u raised to the power n. The magnitude scales by n and every
// signature power multiplies by n. A dimensionless base unit keeps its
// scaled residual magnitude.
func (u Unit) Pow(n float64) Unit {
	if u.terms == nil && u.dimension.IsDimensionless() {
		return DimensionlessUnit(u.magnitude * n)
	}
	if n == 0 {
		return DimensionlessUnit(0)
	}
	terms := make(map[string]unitTerm)
	u.accumulateTerms(terms, n)
	return fromTerms(u.dimension.Pow(n), u.magnitude*n, terms)
}

// accumulateTerms merges u, scaled by the given power, into terms. A base
// unit contributes itself at magnitude zero; a composite contributes every
// signature entry. Dimensionless units contribute nothing.
func (u Unit) accumulateTerms(terms map[string]unitTerm, scale float64) {
	if u.terms == nil {
		if u.dimension.IsDimensionless() {
			return
		}
		base := u
		base.magnitude = 0
		addTerm(terms, base, scale)
		return
	}
	for _, t := range u.terms {
		addTerm(terms, t.unit, t.power*scale)
	}
}

// addTerm adds power for the given magnitude-zero base unit, removing the
// entry when the combined power reaches zero.
func addTerm(terms map[string]unitTerm, base Unit, power float64) {
	key := base.Key()
	sum := power
	if existing, ok := terms[key]; ok {
		sum += existing.power
	}
	if sum == 0 {
		delete(terms, key)
		return
	}
	terms[key] = unitTerm{unit: base, power: sum}
}

// fromTerms canonicalizes accumulated terms into a Unit. An empty signature
// collapses to a dimensionless unit keeping the residual magnitude; a
// single first-power term collapses back to its base unit at the combined
// magnitude, so that u·DimensionlessUnit == u and u·w/w == u hold under
// Equal.
func fromTerms(dim Dimension, magnitude float64, terms map[string]unitTerm) Unit {
	if len(terms) == 0 {
		return DimensionlessUnit(magnitude)
	}
	if len(terms) == 1 {
		for _, t := range terms {
			if t.power == 1 {
				base := t.unit
				base.magnitude = magnitude
				return base
			}
		}
	}
	return Unit{dimension: dim, magnitude: magnitude, terms: terms}
}

// ToStandard converts a value expressed in this unit to the dimension's
// standard unit. The decimal magnitude applies first; a base unit then
// delegates to its Converter, while a composite applies each constituent
// conversion termwise.
func (u Unit) ToStandard(value float64) float64 {
	v := value * math.Pow(10, u.magnitude)
	if u.terms == nil {
		return u.conv.ValueToStandard(v)
	}
	for _, t := range u.sortedTerms() {
		v = math.Pow(t.unit.ToStandard(math.Pow(v, 1/t.power)), t.power)
	}
	return v
}

// FromStandard converts a value in the dimension's standard unit to this
// unit. It is the exact inverse of ToStandard: the core conversions invert
// first and the decimal magnitude applies last.
func (u Unit) FromStandard(value float64) float64 {
	v := value
	if u.terms == nil {
		v = u.conv.ValueFromStandard(v)
	} else {
		for _, t := range u.sortedTerms() {
			v = math.Pow(t.unit.FromStandard(math.Pow(v, 1/t.power)), t.power)
		}
	}
	return v * math.Pow(10, -u.magnitude)
}

// ErrorToStandard converts an uncertainty to the standard unit. Only scale
// factors apply, never additive offsets.
func (u Unit) ErrorToStandard(err float64) float64 {
	e := err * math.Pow(10, u.magnitude)
	if u.terms == nil {
		return u.conv.ErrorToStandard(e)
	}
	for _, t := range u.sortedTerms() {
		e = math.Pow(t.unit.ErrorToStandard(math.Pow(e, 1/t.power)), t.power)
	}
	return e
}

// ErrorFromStandard converts an uncertainty from the standard unit.
func (u Unit) ErrorFromStandard(err float64) float64 {
	e := err
	if u.terms == nil {
		e = u.conv.ErrorFromStandard(e)
	} else {
		for _, t := range u.sortedTerms() {
			e = math.Pow(t.unit.ErrorFromStandard(math.Pow(e, 1/t.power)), t.power)
		}
	}
	return e * math.Pow(10, -u.magnitude)
}

// sortedTerms returns signature entries ordered by key, for deterministic
// composition and rendering.
func (u Unit) sortedTerms() []unitTerm {
	keys := make([]string, 0, len(u.terms))
	for k := range u.terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]unitTerm, 0, len(keys))
	for _, k := range keys {
		out = append(out, u.terms[k])
	}
	return out
}

// Equal reports whether two units are semantically identical: equal
// signatures and magnitudes for composites, or same name, magnitude, and
// dimension for base units.
func (u Unit) Equal(other Unit) bool {
	if (u.terms == nil) != (other.terms == nil) {
		return false
	}
	if u.terms != nil {
		if u.magnitude != other.magnitude || len(u.terms) != len(other.terms) {
			return false
		}
		for k, t := range u.terms {
			ot, ok := other.terms[k]
			if !ok || ot.power != t.power {
				return false
			}
		}
		return true
	}
	return u.name == other.name &&
		u.magnitude == other.magnitude &&
		u.dimension.Equal(other.dimension)
}

// Key returns a canonical string for the unit, stable across signature
// entry order and consistent with Equal.
func (u Unit) Key() string {
	var b strings.Builder
	if u.terms == nil {
		b.WriteString(u.name)
		b.WriteByte('@')
		b.WriteString(formatPower(u.magnitude))
		b.WriteByte('#')
		b.WriteString(u.dimension.Key())
		return b.String()
	}
	b.WriteString("10^")
	b.WriteString(formatPower(u.magnitude))
	for _, t := range u.sortedTerms() {
		b.WriteByte('|')
		b.WriteString(t.unit.Key())
		b.WriteByte('^')
		b.WriteString(formatPower(t.power))
	}
	return b.String()
}

// Hash returns a 64-bit hash consistent with Equal.
func (u Unit) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(u.Key()))
	return h.Sum64()
}

// String renders the unit with its decimal prefix and one
// <name>^(<power>) term per signature entry.
func (u Unit) String() string {
	var b strings.Builder
	b.WriteString("Units of: ")
	if u.magnitude != 0 {
		b.WriteString("(10^")
		b.WriteString(formatPower(u.magnitude))
		b.WriteString(") * ")
	}
	if u.terms == nil {
		b.WriteString(u.name)
		return b.String()
	}
	for i, t := range u.sortedTerms() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.unit.name)
		b.WriteString("^(")
		b.WriteString(formatPower(t.power))
		b.WriteByte(')')
	}
	return b.String()
}

// Convert converts a value between two units of the same dimension through
// the standard unit. It returns ErrDimensionMismatch when the dimension
// signatures differ.
func Convert(from, to Unit, value float64) (float64, error) {
	if !from.dimension.Equal(to.dimension) {
		return 0, ErrDimensionMismatch
	}
	return to.FromStandard(from.ToStandard(value)), nil
}

// ConvertError converts an uncertainty between two units of the same
// dimension using the scale-only error primitives.
func ConvertError(from, to Unit, err float64) (float64, error) {
	if !from.dimension.Equal(to.dimension) {
		return 0, ErrDimensionMismatch
	}
	return to.ErrorFromStandard(from.ErrorToStandard(err)), nil
}
