package units

import (
	"hash/fnv"
	"maps"
	"sort"
	"strconv"
	"strings"
)

// signature maps elementary dimension kinds to their powers. A canonical
// signature never contains a zero power or the Dimensionless kind.
type signature map[string]float64

// Dimension is an immutable symbolic physical dimension. A base dimension
// (Length, Time, ...) carries only its kind; composite dimensions produced
// by the algebra carry a canonical signature over elementary kinds; derived
// dimensions declared by name (e.g. ElectrocaloricStrength) carry their
// constituent composition for introspection but behave as opaque elementary
// kinds under the algebra.
// Implements: prd001-dimension-algebra R1.
type Dimension struct {
	kind         string
	composition  signature // non-nil only for anonymous composites
	constituents signature // declared composition of a derived dimension
}

// NewBaseDimension returns an elementary dimension with the given kind name.
// The built-in constructors (Length, Time, ...) should be preferred; this
// exists for consumers extending the engine with new physical kinds.
func NewBaseDimension(kind string) Dimension {
	return Dimension{kind: kind}
}

// NewDerivedDimension returns a named dimension whose composition over
// elementary kinds is evaluated once from the given algebra expression.
// Under the algebra the result behaves as an opaque elementary kind; the
// evaluated composition is available through Constituents.
func NewDerivedDimension(kind string, composition Dimension) Dimension {
	sig := make(signature)
	composition.accumulate(sig, 1)
	delete(sig, KindDimensionless)
	return Dimension{kind: kind, constituents: sig}
}

// Kind returns the concrete kind name; it is empty for composites produced
// by the algebra.
func (d Dimension) Kind() string { return d.kind }

// IsComposite reports whether d carries a composite signature.
func (d Dimension) IsComposite() bool { return d.composition != nil }

// IsDimensionless reports whether d is the identity dimension.
func (d Dimension) IsDimensionless() bool {
	return d.kind == KindDimensionless && d.composition == nil
}

// Signature returns a copy of the composite signature, or nil for base and
// derived dimensions.
func (d Dimension) Signature() map[string]float64 {
	if d.composition == nil {
		return nil
	}
	return maps.Clone(d.composition)
}

// Constituents returns a copy of a derived dimension's declared composition,
// or nil for every other dimension.
func (d Dimension) Constituents() map[string]float64 {
	if d.constituents == nil {
		return nil
	}
	return maps.Clone(d.constituents)
}

// Mul returns the product dimension. Signatures merge entrywise, net-zero
// entries are dropped, and Dimensionless never appears in a result
// signature. Mul never fails: any pair of operands produces a valid
// dimension, with semantic checks deferred to conversion.
func (d Dimension) Mul(other Dimension) Dimension {
	sig := make(signature)
	d.accumulate(sig, 1)
	other.accumulate(sig, 1)
	return fromSignature(sig)
}

// Div returns the quotient dimension d / other.
func (d Dimension) Div(other Dimension) Dimension {
	return d.Mul(other.Pow(-1))
}

// Pow returns d raised to the power n. Dimensionless raised to anything,
// and anything raised to zero, is Dimensionless.
func (d Dimension) Pow(n float64) Dimension {
	if d.IsDimensionless() || n == 0 {
		return Dimensionless()
	}
	sig := make(signature)
	d.accumulate(sig, n)
	return fromSignature(sig)
}

// accumulate merges d, scaled by the given power, into sig. Base and
// derived dimensions contribute their own kind; composites contribute every
// signature entry.
func (d Dimension) accumulate(sig signature, scale float64) {
	if d.composition == nil {
		if d.kind == KindDimensionless {
			return
		}
		addPower(sig, d.kind, scale)
		return
	}
	for k, p := range d.composition {
		addPower(sig, k, p*scale)
	}
}

// addPower adds p to the entry for key, removing the entry when the sum
// reaches zero.
func addPower(sig signature, key string, p float64) {
	sum := sig[key] + p
	if sum == 0 {
		delete(sig, key)
		return
	}
	sig[key] = sum
}

// fromSignature canonicalizes an accumulated signature into a Dimension.
// An empty signature collapses to Dimensionless and a single first-power
// entry collapses back to its elementary kind, so that d·Dimensionless == d
// and d·e/e == d hold under Equal.
func fromSignature(sig signature) Dimension {
	delete(sig, KindDimensionless)
	if len(sig) == 0 {
		return Dimensionless()
	}
	if len(sig) == 1 {
		for k, p := range sig {
			if p == 1 {
				return Dimension{kind: k}
			}
		}
	}
	return Dimension{composition: sig}
}

// Equal reports whether two dimensions are semantically identical: same
// concrete kind and either both without a signature or with signatures that
// compare equal as unordered mappings.
func (d Dimension) Equal(other Dimension) bool {
	if d.kind != other.kind {
		return false
	}
	if d.composition == nil && other.composition == nil {
		return true
	}
	return maps.Equal(d.composition, other.composition)
}

// Key returns a canonical string for the dimension, stable across signature
// entry order. Equal dimensions have equal keys, which makes Key suitable
// as a map key.
func (d Dimension) Key() string {
	if d.composition == nil {
		return d.kind
	}
	keys := sortedKeys(d.composition)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(k)
		b.WriteByte('^')
		b.WriteString(formatPower(d.composition[k]))
	}
	return b.String()
}

// Hash returns a 64-bit hash consistent with Equal.
func (d Dimension) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(d.Key()))
	return h.Sum64()
}

// String renders the dimension with one <kind>^(<power>) term per
// signature entry, in sorted kind order.
func (d Dimension) String() string {
	var b strings.Builder
	b.WriteString("Dimensions of: ")
	if d.composition == nil {
		b.WriteString(d.kind)
		return b.String()
	}
	for i, k := range sortedKeys(d.composition) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString("^(")
		b.WriteString(formatPower(d.composition[k]))
		b.WriteByte(')')
	}
	return b.String()
}

// sortedKeys returns the signature's kinds in sorted order.
func sortedKeys(sig signature) []string {
	keys := make([]string, 0, len(sig))
	for k := range sig {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatPower renders a power with the shortest exact representation.
// Negative zero normalizes to "0" so that keys stay canonical.
func formatPower(p float64) string {
	if p == 0 {
		return "0"
	}
	return strconv.FormatFloat(p, 'g', -1, 64)
}
