package units

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

// drawDimension generates a dimension from the built-in elementary kinds and
// small composites over them.
func drawDimension(t *rapid.T) Dimension {
	base := []Dimension{
		Dimensionless(), Length(), Time(), Mass(),
		Temperature(), ElectricPotential(),
	}
	d := rapid.SampledFrom(base).Draw(t, "first")
	extra := rapid.IntRange(0, 2).Draw(t, "extra")
	for i := 0; i < extra; i++ {
		e := rapid.SampledFrom(base).Draw(t, "factor")
		if rapid.Bool().Draw(t, "invert") {
			d = d.Div(e)
		} else {
			d = d.Mul(e)
		}
	}
	return d
}

func TestProperty_DimensionMulCommutative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawDimension(t)
		b := drawDimension(t)
		if !a.Mul(b).Equal(b.Mul(a)) {
			t.Fatalf("a*b != b*a for %v, %v", a, b)
		}
	})
}

func TestProperty_DimensionMulAssociative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawDimension(t)
		b := drawDimension(t)
		c := drawDimension(t)
		if !a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))) {
			t.Fatalf("(a*b)*c != a*(b*c) for %v, %v, %v", a, b, c)
		}
	})
}

func TestProperty_DimensionIdentityAndCancellation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := drawDimension(t)
		if !d.Mul(Dimensionless()).Equal(d) {
			t.Fatalf("d*1 != d for %v", d)
		}
		if !d.Div(d).IsDimensionless() {
			t.Fatalf("d/d not dimensionless for %v", d)
		}
		if !d.Pow(0).IsDimensionless() {
			t.Fatalf("d^0 not dimensionless for %v", d)
		}
	})
}

func TestProperty_DimensionKeyConsistentWithEqual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawDimension(t)
		b := drawDimension(t)
		if a.Equal(b) != (a.Key() == b.Key()) {
			t.Fatalf("Equal and Key disagree for %v, %v", a, b)
		}
		if a.Equal(b) && a.Hash() != b.Hash() {
			t.Fatalf("equal dimensions hash differently: %v, %v", a, b)
		}
	})
}

// drawBaseUnit generates a linear built-in unit at a drawn decimal magnitude.
func drawBaseUnit(t *rapid.T) Unit {
	factories := []UnitFactory{
		Meter, Mile, Angstrom,
		Second, Minute, Hour, Day, Year,
		Gram, Tonne, Pound,
		Kelvin, Volt,
		Joule, ElectronVolt, Erg,
	}
	f := rapid.SampledFrom(factories).Draw(t, "factory")
	mag := float64(rapid.IntRange(-6, 6).Draw(t, "magnitude"))
	return f(mag)
}

func TestProperty_UnitRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := drawBaseUnit(t)
		v := rapid.Float64Range(1e-3, 1e3).Draw(t, "value")
		back := u.FromStandard(u.ToStandard(v))
		if diff := math.Abs(back - v); diff > 1e-9*math.Abs(v) {
			t.Fatalf("round trip of %v through %v gave %v", v, u, back)
		}
	})
}

func TestProperty_UnitMulCommutative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawBaseUnit(t)
		b := drawBaseUnit(t)
		if !a.Mul(b).Equal(b.Mul(a)) {
			t.Fatalf("a*b != b*a for %v, %v", a, b)
		}
	})
}

func TestProperty_UnitCancellation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := drawBaseUnit(t)
		w := drawBaseUnit(t)
		if !u.Mul(w).Div(w).Equal(u) {
			t.Fatalf("u*w/w != u for %v, %v", u, w)
		}
		if !u.Div(u).Dimensions().IsDimensionless() {
			t.Fatalf("u/u not dimensionless for %v", u)
		}
	})
}

func TestProperty_ConvertRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lengths := []UnitFactory{Meter, Mile, Angstrom}
		from := rapid.SampledFrom(lengths).Draw(t, "from")(float64(rapid.IntRange(-3, 3).Draw(t, "fromMag")))
		to := rapid.SampledFrom(lengths).Draw(t, "to")(float64(rapid.IntRange(-3, 3).Draw(t, "toMag")))
		v := rapid.Float64Range(1e-3, 1e3).Draw(t, "value")

		there, err := Convert(from, to, v)
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		back, err := Convert(to, from, there)
		if err != nil {
			t.Fatalf("Convert back: %v", err)
		}
		if diff := math.Abs(back - v); diff > 1e-9*math.Abs(v) {
			t.Fatalf("round trip of %v gave %v", v, back)
		}
	})
}
