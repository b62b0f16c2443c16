package units

import "errors"

// Conversion and registry errors (prd002-unit-algebra R6, prd004-unit-registry R3).
// Algebra operators (Mul, Div, Pow) never fail; conversion operators always
// validate dimensions. Compare with errors.Is.
var (
	ErrDimensionMismatch = errors.New("dimensions do not match")
	ErrUnsetUnit         = errors.New("unit to convert from is not set")
	ErrUnsetValue        = errors.New("value is not set")
	ErrDuplicatePattern  = errors.New("pattern already registered for dimension")
	ErrUnknownDimension  = errors.New("dimension not registered")
)
