package units

// KindTime names the base dimension of duration.
const KindTime = "Time"

// Time returns the base dimension of duration.
func Time() Dimension {
	return Dimension{kind: KindTime}
}

const (
	secondName = "Second"
	minuteName = "Minute"
	hourName   = "Hour"
	dayName    = "Day"
	yearName   = "Year"
)

// Time conversion factors, in seconds. The year is the Julian year.
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 31557600
)

// Second is the standard time unit.
func Second(magnitude float64) Unit {
	return NewUnit(secondName, Time(), magnitude, identity)
}

func Minute(magnitude float64) Unit {
	return NewUnit(minuteName, Time(), magnitude, LinearConverter{Factor: secondsPerMinute})
}

func Hour(magnitude float64) Unit {
	return NewUnit(hourName, Time(), magnitude, LinearConverter{Factor: secondsPerHour})
}

func Day(magnitude float64) Unit {
	return NewUnit(dayName, Time(), magnitude, LinearConverter{Factor: secondsPerDay})
}

func Year(magnitude float64) Unit {
	return NewUnit(yearName, Time(), magnitude, LinearConverter{Factor: secondsPerYear})
}

func registerTime(r *Registry) error {
	return registerAll(r, Time(), Second(0), []patternRegistration{
		{`s(econd(s)?)?`, Second},
		{`min(ute(s)?)?`, Minute},
		{`h(r(s)?|our(s)?)?`, Hour},
		{`d(ay(s)?)?`, Day},
		{`y(r(s)?|ear(s)?)?`, Year},
	})
}
