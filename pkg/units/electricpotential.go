package units

// KindElectricPotential names the base dimension of electric potential.
const KindElectricPotential = "ElectricPotential"

// ElectricPotential returns the base dimension of electric potential.
func ElectricPotential() Dimension {
	return Dimension{kind: KindElectricPotential}
}

const voltName = "Volt"

// Volt is the standard electric-potential unit.
func Volt(magnitude float64) Unit {
	return NewUnit(voltName, ElectricPotential(), magnitude, identity)
}

func registerElectricPotential(r *Registry) error {
	return registerAll(r, ElectricPotential(), Volt(0), []patternRegistration{
		{`V|(V|v)olt(s)?`, Volt},
	})
}
