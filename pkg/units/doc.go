// Package units implements symbolic dimensional algebra and unit conversion
// for the quanta engine: Dimension and Unit value objects with
// multiply/divide/power algebra, canonical signatures for equality and
// hashing, scalar-or-range Quantity values, and a per-dimension registry of
// lexical unit patterns with standard units.
// Implements: prd001-dimension-algebra, prd002-unit-algebra,
//
//	prd003-quantity-values, prd004-unit-registry.
package units
