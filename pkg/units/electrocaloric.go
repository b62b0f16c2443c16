package units

// KindElectrocaloricStrength names the derived dimension of electrocaloric
// strength, declared as Temperature·Length/ElectricPotential.
const KindElectrocaloricStrength = "ElectrocaloricStrength"

// ElectrocaloricStrength returns the derived dimension of electrocaloric
// strength. Its declared composition is evaluated once and exposed through
// Constituents; under the algebra it behaves as an elementary kind.
func ElectrocaloricStrength() Dimension {
	return NewDerivedDimension(KindElectrocaloricStrength,
		Temperature().Mul(Length()).Div(ElectricPotential()))
}

const (
	jouleName        = "Joule"
	electronVoltName = "ElectronVolt"
	ergName          = "Erg"
)

// Electrocaloric-strength conversion factors, in joules.
const (
	joulesPerElectronVolt = 1.6021766208e-19
	joulesPerErg          = 1e-7
)

// Joule is the standard electrocaloric-strength unit.
func Joule(magnitude float64) Unit {
	return NewUnit(jouleName, ElectrocaloricStrength(), magnitude, identity)
}

// ElectronVolt is 1.6021766208·10^-19 joules.
func ElectronVolt(magnitude float64) Unit {
	return NewUnit(electronVoltName, ElectrocaloricStrength(), magnitude,
		LinearConverter{Factor: joulesPerElectronVolt})
}

// Erg is 10^-7 joules.
func Erg(magnitude float64) Unit {
	return NewUnit(ergName, ElectrocaloricStrength(), magnitude,
		LinearConverter{Factor: joulesPerErg})
}

func registerElectrocaloricStrength(r *Registry) error {
	return registerAll(r, ElectrocaloricStrength(), Joule(0), []patternRegistration{
		{`(J|j)(oule(s)?)?`, Joule},
		{`(E|e)(lectron)?( )?(V|v)(olts)?`, ElectronVolt},
		{`(E|e)rg`, Erg},
	})
}
