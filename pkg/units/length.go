package units

// KindLength names the base dimension of spatial extent.
const KindLength = "Length"

// Length returns the base dimension of spatial extent.
func Length() Dimension {
	return Dimension{kind: KindLength}
}

const (
	meterName    = "Meter"
	mileName     = "Mile"
	angstromName = "Angstrom"
)

// Length conversion factors, in meters.
const (
	metersPerMile     = 1609.34
	metersPerAngstrom = 1e-10
)

// Meter is the standard length unit.
func Meter(magnitude float64) Unit {
	return NewUnit(meterName, Length(), magnitude, identity)
}

// Mile is the statute mile.
func Mile(magnitude float64) Unit {
	return NewUnit(mileName, Length(), magnitude, LinearConverter{Factor: metersPerMile})
}

// Angstrom is 10^-10 meters.
func Angstrom(magnitude float64) Unit {
	return NewUnit(angstromName, Length(), magnitude, LinearConverter{Factor: metersPerAngstrom})
}

func registerLength(r *Registry) error {
	return registerAll(r, Length(), Meter(0), []patternRegistration{
		{`m(eter|etre)?(s)?`, Meter},
		{`mi|(M|m)ile(s)?`, Mile},
		{`Å|(A|a)ngstrom(s)?`, Angstrom},
	})
}
