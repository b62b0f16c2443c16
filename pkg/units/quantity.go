package units

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Quantity is a measured value bound to a dimension, with an optional unit
// and an optional parallel uncertainty. Values and uncertainties are either
// a single scalar or an ordered two-element range. Every arithmetic
// operation returns a fresh Quantity; operands are never mutated.
// Implements: prd003-quantity-values R1.
type Quantity struct {
	dimension   Dimension
	unit        *Unit
	value       []float64 // nil = absent; len 1 = scalar; len 2 = range
	uncertainty []float64
}

// NewQuantity returns an empty quantity of the given dimension.
func NewQuantity(dim Dimension) *Quantity {
	return &Quantity{dimension: dim}
}

// Dimensions returns the quantity's dimension.
func (q *Quantity) Dimensions() Dimension { return q.dimension }

// SetValue stores a scalar (one argument) or an ascending range (two
// arguments). Any other arity silently clears the value; callers detect
// rejection by re-reading the field. A pair with a NaN endpoint cannot be
// ordered and is stored as given.
func (q *Quantity) SetValue(vals ...float64) {
	q.value = processEndpoints(vals)
}

// SetUncertainty stores an uncertainty with the same scalar-or-range shape
// and rejection policy as SetValue.
func (q *Quantity) SetUncertainty(vals ...float64) {
	q.uncertainty = processEndpoints(vals)
}

// processEndpoints normalizes a value assignment: scalars pass through,
// pairs sort ascending when orderable, everything else is rejected as nil.
func processEndpoints(vals []float64) []float64 {
	switch len(vals) {
	case 1:
		return []float64{vals[0]}
	case 2:
		lo, hi := vals[0], vals[1]
		// NaN comparisons are false, leaving unorderable pairs untouched.
		if lo > hi {
			lo, hi = hi, lo
		}
		return []float64{lo, hi}
	default:
		return nil
	}
}

// SetUnit binds the candidate when it is a Unit whose dimension equals the
// quantity's own. Nil candidates, non-Unit implementations, and dimension
// mismatches all leave the unit absent without signaling an error.
func (q *Quantity) SetUnit(candidate Dimensioned) {
	q.unit = nil
	if candidate == nil {
		return
	}
	u, ok := candidate.(Unit)
	if !ok {
		return
	}
	if !u.Dimensions().Equal(q.dimension) {
		return
	}
	q.unit = &u
}

// Value returns a copy of the stored endpoints, or nil when absent.
func (q *Quantity) Value() []float64 { return slices.Clone(q.value) }

// Uncertainty returns a copy of the stored uncertainty endpoints, or nil
// when absent.
func (q *Quantity) Uncertainty() []float64 { return slices.Clone(q.uncertainty) }

// Unit returns the bound unit and whether one is bound.
func (q *Quantity) Unit() (Unit, bool) {
	if q.unit == nil {
		return Unit{}, false
	}
	return *q.unit, true
}

// IsRange reports whether the stored value is a two-element range.
func (q *Quantity) IsRange() bool { return len(q.value) == 2 }

// Mul returns the product quantity. Dimensions and units combine through
// the algebra; the unit is absent unless both operands carry one. Range
// products pair corresponding endpoints componentwise (low·low, high·high);
// this is deliberately not interval arithmetic.
func (q *Quantity) Mul(other *Quantity) *Quantity {
	out := NewQuantity(q.dimension.Mul(other.dimension))
	if q.unit != nil && other.unit != nil {
		u := q.unit.Mul(*other.unit)
		out.unit = &u
	}
	switch {
	case q.value == nil || other.value == nil:
	case len(q.value) == 2 && len(other.value) == 2:
		out.value = []float64{q.value[0] * other.value[0], q.value[1] * other.value[1]}
	case len(q.value) == 2:
		s := other.value[0]
		out.value = []float64{q.value[0] * s, q.value[1] * s}
	case len(other.value) == 2:
		s := q.value[0]
		out.value = []float64{s * other.value[0], s * other.value[1]}
	default:
		out.value = []float64{q.value[0] * other.value[0]}
	}
	return out
}

// Div returns the quotient quantity q / other.
func (q *Quantity) Div(other *Quantity) *Quantity {
	return q.Mul(other.Pow(-1))
}

// Pow returns the quantity raised to the power n. Range endpoints are
// raised independently and not re-sorted.
func (q *Quantity) Pow(n float64) *Quantity {
	out := NewQuantity(q.dimension.Pow(n))
	if q.unit != nil {
		u := q.unit.Pow(n)
		out.unit = &u
	}
	if q.value != nil {
		vals := make([]float64, len(q.value))
		for i, v := range q.value {
			vals[i] = math.Pow(v, n)
		}
		out.value = vals
	}
	return out
}

// ConvertTo converts the quantity to the target unit, returning a fresh
// quantity bound to it. The uncertainty, when present, converts through the
// scale-only error primitives. It returns ErrUnsetUnit when no unit is
// bound, ErrUnsetValue when no value is set, and ErrDimensionMismatch when
// the target's dimension differs.
func (q *Quantity) ConvertTo(target Unit) (*Quantity, error) {
	if q.unit == nil {
		return nil, ErrUnsetUnit
	}
	vals, err := q.ConvertValue(*q.unit, target)
	if err != nil {
		return nil, err
	}
	out := NewQuantity(q.dimension)
	out.value = vals
	if q.uncertainty != nil {
		errs := make([]float64, len(q.uncertainty))
		for i, e := range q.uncertainty {
			converted, cerr := ConvertError(*q.unit, target, e)
			if cerr != nil {
				return nil, cerr
			}
			errs[i] = converted
		}
		out.uncertainty = errs
	}
	out.SetUnit(target)
	return out, nil
}

// ConvertValue converts the stored endpoints between the given units
// without consulting the bound unit. Each endpoint converts independently
// and endpoint order is preserved from the source: monotonic conversions
// keep low ≤ high, a negative-scale affine conversion would not (documented
// limitation).
func (q *Quantity) ConvertValue(from, to Unit) ([]float64, error) {
	if q.value == nil {
		return nil, ErrUnsetValue
	}
	if !from.Dimensions().Equal(to.Dimensions()) {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, len(q.value))
	for i, v := range q.value {
		out[i] = to.FromStandard(from.ToStandard(v))
	}
	return out, nil
}

// String renders the quantity's dimension, unit, and value.
func (q *Quantity) String() string {
	var b strings.Builder
	b.WriteString("Quantity with ")
	b.WriteString(q.dimension.String())
	if q.unit != nil {
		b.WriteString(", ")
		b.WriteString(q.unit.String())
	}
	if q.value != nil {
		b.WriteString(" and a value of ")
		for i, v := range q.value {
			if i > 0 {
				b.WriteString(" to ")
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return b.String()
}
