package units

// KindTemperature names the base dimension of temperature.
const KindTemperature = "Temperature"

// Temperature returns the base dimension of temperature.
func Temperature() Dimension {
	return Dimension{kind: KindTemperature}
}

const (
	kelvinName     = "Kelvin"
	celsiusName    = "Celsius"
	fahrenheitName = "Fahrenheit"
)

// Affine temperature constants. Celsius and Fahrenheit have shifted zero
// points; their offsets apply to values, never to uncertainties.
const (
	celsiusOffset       = 273.15
	fahrenheitScale     = 5.0 / 9.0
	fahrenheitZeroShift = 459.67
)

// Kelvin is the standard temperature unit.
func Kelvin(magnitude float64) Unit {
	return NewUnit(kelvinName, Temperature(), magnitude, identity)
}

// Celsius converts as K = °C + 273.15.
func Celsius(magnitude float64) Unit {
	return NewUnit(celsiusName, Temperature(), magnitude, AffineConverter{
		Scale:  1,
		Offset: celsiusOffset,
	})
}

// Fahrenheit converts as K = (°F + 459.67) · 5/9.
func Fahrenheit(magnitude float64) Unit {
	return NewUnit(fahrenheitName, Temperature(), magnitude, AffineConverter{
		Scale:  fahrenheitScale,
		Offset: fahrenheitZeroShift * fahrenheitScale,
	})
}

func registerTemperature(r *Registry) error {
	return registerAll(r, Temperature(), Kelvin(0), []patternRegistration{
		{`K(elvin(s)?)?`, Kelvin},
		{`(°)?C|(C|c)elsius`, Celsius},
		{`(°)?F|(F|f)ahrenheit`, Fahrenheit},
	})
}
