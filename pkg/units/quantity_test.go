package units

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// bareDimension implements Dimensioned without being a Unit.
type bareDimension struct{ dim Dimension }

func (b bareDimension) Dimensions() Dimension { return b.dim }

func TestQuantitySetValue(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"scalar", []float64{5}, []float64{5}},
		{"ordered range", []float64{10, 20}, []float64{10, 20}},
		{"reversed range sorts", []float64{20, 10}, []float64{10, 20}},
		{"equal endpoints", []float64{7, 7}, []float64{7, 7}},
		{"empty rejected", nil, nil},
		{"triple rejected", []float64{1, 2, 3}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuantity(Length())
			q.SetValue(tt.in...)
			if diff := cmp.Diff(tt.want, q.Value()); diff != "" {
				t.Errorf("Value() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuantitySetValueNaN(t *testing.T) {
	// An unorderable pair is stored as given.
	q := NewQuantity(Length())
	q.SetValue(5, math.NaN())
	got := q.Value()
	if len(got) != 2 || got[0] != 5 || !math.IsNaN(got[1]) {
		t.Errorf("Value() = %v, want [5 NaN]", got)
	}
}

func TestQuantitySetValueOverwrite(t *testing.T) {
	// A rejected assignment clears a previously valid value.
	q := NewQuantity(Length())
	q.SetValue(5)
	q.SetValue(1, 2, 3)
	if q.Value() != nil {
		t.Errorf("Value() = %v, want nil after rejected assignment", q.Value())
	}
}

func TestQuantitySetUnit(t *testing.T) {
	tests := []struct {
		name      string
		candidate Dimensioned
		wantBound bool
	}{
		{"matching unit", Meter(0), true},
		{"prefixed matching unit", Meter(3), true},
		{"dimension mismatch", Second(0), false},
		{"nil candidate", nil, false},
		{"non-unit dimensioned", bareDimension{dim: Length()}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuantity(Length())
			q.SetUnit(tt.candidate)
			if _, ok := q.Unit(); ok != tt.wantBound {
				t.Errorf("unit bound = %v, want %v", ok, tt.wantBound)
			}
		})
	}
}

func TestQuantitySetUnitClearsPrevious(t *testing.T) {
	q := NewQuantity(Length())
	q.SetUnit(Meter(0))
	q.SetUnit(Second(0))
	if _, ok := q.Unit(); ok {
		t.Errorf("rejected candidate should leave the unit absent")
	}
}

func TestQuantityMul(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"scalar by scalar", []float64{3}, []float64{4}, []float64{12}},
		{"range by range componentwise", []float64{1, 2}, []float64{3, 4}, []float64{3, 8}},
		{"range by range mixed signs", []float64{1, 2}, []float64{-2, 3}, []float64{-2, 6}},
		{"range by scalar", []float64{1, 2}, []float64{5}, []float64{5, 10}},
		{"scalar by range", []float64{5}, []float64{1, 2}, []float64{5, 10}},
		{"absent propagates", nil, []float64{5}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewQuantity(Length())
			a.SetValue(tt.a...)
			b := NewQuantity(Time())
			b.SetValue(tt.b...)

			got := a.Mul(b)
			if diff := cmp.Diff(tt.want, got.Value()); diff != "" {
				t.Errorf("Value() mismatch (-want +got):\n%s", diff)
			}
			if !got.Dimensions().Equal(Length().Mul(Time())) {
				t.Errorf("Dimensions() = %v", got.Dimensions())
			}
		})
	}
}

func TestQuantityMulUnitBinding(t *testing.T) {
	a := NewQuantity(Length())
	a.SetValue(10)
	a.SetUnit(Meter(0))
	b := NewQuantity(Time())
	b.SetValue(2)

	// One operand unitless: the product carries no unit.
	if _, ok := a.Mul(b).Unit(); ok {
		t.Errorf("product of unit and unitless should be unitless")
	}

	b.SetUnit(Second(0))
	prod := a.Mul(b)
	u, ok := prod.Unit()
	if !ok {
		t.Fatalf("product of two united quantities should carry a unit")
	}
	if !u.Equal(Meter(0).Mul(Second(0))) {
		t.Errorf("product unit = %v", u)
	}
}

func TestQuantityDiv(t *testing.T) {
	a := NewQuantity(Length())
	a.SetValue(10)
	a.SetUnit(Meter(0))
	b := NewQuantity(Time())
	b.SetValue(2)
	b.SetUnit(Second(0))

	got := a.Div(b)
	if diff := cmp.Diff([]float64{5}, got.Value()); diff != "" {
		t.Errorf("Value() mismatch (-want +got):\n%s", diff)
	}
	if !got.Dimensions().Equal(Length().Div(Time())) {
		t.Errorf("Dimensions() = %v", got.Dimensions())
	}
	u, ok := got.Unit()
	if !ok || !u.Equal(Meter(0).Div(Second(0))) {
		t.Errorf("unit = %v, bound = %v", u, ok)
	}
}

func TestQuantityPow(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		n    float64
		want []float64
	}{
		{"scalar squared", []float64{3}, 2, []float64{9}},
		{"range squared no reorder", []float64{-2, 1}, 2, []float64{4, 1}},
		{"inverse", []float64{2, 4}, -1, []float64{0.5, 0.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuantity(Length())
			// Bypass SetValue ordering only through valid assignments.
			q.SetValue(tt.in...)
			got := q.Pow(tt.n)
			if diff := cmp.Diff(tt.want, got.Value()); diff != "" {
				t.Errorf("Value() mismatch (-want +got):\n%s", diff)
			}
			if !got.Dimensions().Equal(Length().Pow(tt.n)) {
				t.Errorf("Dimensions() = %v", got.Dimensions())
			}
		})
	}
}

func TestQuantityConvertTo(t *testing.T) {
	q := NewQuantity(Temperature())
	q.SetValue(25)
	q.SetUncertainty(2)
	q.SetUnit(Celsius(0))

	got, err := q.ConvertTo(Kelvin(0))
	if err != nil {
		t.Fatalf("ConvertTo: %v", err)
	}
	vals := got.Value()
	if len(vals) != 1 || !closeEnough(vals[0], 298.15) {
		t.Errorf("Value() = %v, want [298.15]", vals)
	}
	// The offset never touches the uncertainty.
	errs := got.Uncertainty()
	if len(errs) != 1 || !closeEnough(errs[0], 2) {
		t.Errorf("Uncertainty() = %v, want [2]", errs)
	}
	u, ok := got.Unit()
	if !ok || !u.Equal(Kelvin(0)) {
		t.Errorf("unit = %v, bound = %v", u, ok)
	}
	// The source is untouched.
	if v := q.Value(); v[0] != 25 {
		t.Errorf("source mutated: %v", v)
	}
}

func TestQuantityConvertToRange(t *testing.T) {
	q := NewQuantity(Length())
	q.SetValue(1000, 2000)
	q.SetUnit(Meter(0))

	got, err := q.ConvertTo(Meter(3))
	if err != nil {
		t.Fatalf("ConvertTo: %v", err)
	}
	if diff := cmp.Diff([]float64{1, 2}, got.Value()); diff != "" {
		t.Errorf("Value() mismatch (-want +got):\n%s", diff)
	}
}

func TestQuantityConvertErrors(t *testing.T) {
	noUnit := NewQuantity(Length())
	noUnit.SetValue(5)
	if _, err := noUnit.ConvertTo(Meter(0)); !errors.Is(err, ErrUnsetUnit) {
		t.Errorf("ConvertTo without unit: err = %v, want ErrUnsetUnit", err)
	}

	noValue := NewQuantity(Length())
	noValue.SetUnit(Meter(0))
	if _, err := noValue.ConvertTo(Mile(0)); !errors.Is(err, ErrUnsetValue) {
		t.Errorf("ConvertTo without value: err = %v, want ErrUnsetValue", err)
	}

	mismatch := NewQuantity(Length())
	mismatch.SetValue(5)
	mismatch.SetUnit(Meter(0))
	if _, err := mismatch.ConvertTo(Second(0)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("ConvertTo across dimensions: err = %v, want ErrDimensionMismatch", err)
	}
}

func TestQuantityString(t *testing.T) {
	q := NewQuantity(Length())
	q.SetValue(10, 20)
	q.SetUnit(Meter(0))
	want := "Quantity with Dimensions of: Length, Units of: Meter and a value of 10 to 20"
	if got := q.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
