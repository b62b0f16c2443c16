package units

// KindMass names the base dimension of mass.
const KindMass = "Mass"

// Mass returns the base dimension of mass.
func Mass() Dimension {
	return Dimension{kind: KindMass}
}

const (
	gramName  = "Gram"
	tonneName = "Tonne"
	poundName = "Pound"
)

// Mass conversion factors, in grams.
const (
	gramsPerTonne = 1e6
	gramsPerPound = 453.592
)

// Gram is the standard mass unit.
func Gram(magnitude float64) Unit {
	return NewUnit(gramName, Mass(), magnitude, identity)
}

func Tonne(magnitude float64) Unit {
	return NewUnit(tonneName, Mass(), magnitude, LinearConverter{Factor: gramsPerTonne})
}

func Pound(magnitude float64) Unit {
	return NewUnit(poundName, Mass(), magnitude, LinearConverter{Factor: gramsPerPound})
}

func registerMass(r *Registry) error {
	return registerAll(r, Mass(), Gram(0), []patternRegistration{
		{`g(ram(s)?)?`, Gram},
		{`t(onne(s)?)?`, Tonne},
		{`lb(s)?|(P|p)ound(s)?`, Pound},
	})
}
