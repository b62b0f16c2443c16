package units

// KindDimensionless names the identity dimension. It is dropped from every
// signature the algebra produces.
const KindDimensionless = "Dimensionless"

// Dimensionless returns the identity dimension.
func Dimensionless() Dimension {
	return Dimension{kind: KindDimensionless}
}

const (
	dimensionlessUnitName = "DimensionlessUnit"
	percentName           = "Percent"
)

// DimensionlessUnit returns the unit of pure numbers at the given decimal
// magnitude. The algebra produces it, with a residual magnitude, whenever a
// composite signature cancels completely.
func DimensionlessUnit(magnitude float64) Unit {
	return NewUnit(dimensionlessUnitName, Dimensionless(), magnitude, identity)
}

// Percent is one hundredth of the dimensionless standard.
func Percent(magnitude float64) Unit {
	return NewUnit(percentName, Dimensionless(), magnitude, LinearConverter{Factor: 0.01})
}

func registerDimensionless(r *Registry) error {
	return registerAll(r, Dimensionless(), DimensionlessUnit(0), []patternRegistration{
		{`%|(P|p)er( )?(C|c)ent(s)?`, Percent},
	})
}
