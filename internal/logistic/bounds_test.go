package logistic

import (
	"errors"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	want := Params{N0: 100, R: 0.5, K: 500, TMax: 10}
	if p != want {
		t.Errorf("expected %+v, got %+v", want, p)
	}
	if err := CheckBounds(p); err != nil {
		t.Errorf("defaults out of bounds: %v", err)
	}
}

func TestFieldClamp(t *testing.T) {
	tests := []struct {
		field Field
		in    float64
		want  float64
	}{
		{FieldN0, 0, 1},
		{FieldN0, 20000, 10000},
		{FieldN0, 55.7, 55},
		{FieldR, -7, -5},
		{FieldR, 0.123, 0.123},
		{FieldK, 1e9, 100000},
		{FieldT, -3, 1},
	}

	for _, tt := range tests {
		if got := tt.field.Clamp(tt.in); got != tt.want {
			t.Errorf("%s.Clamp(%v): expected %v, got %v", tt.field.Name, tt.in, tt.want, got)
		}
	}
}

func TestFieldIncrement(t *testing.T) {
	v := FieldR.Default
	for i := 0; i < 10; i++ {
		v = FieldR.Increment(v, 1)
	}
	if v != 0.6 {
		t.Errorf("expected r to step to 0.6, got %v", v)
	}

	if got := FieldN0.Increment(100, -1); got != 90 {
		t.Errorf("expected 90, got %v", got)
	}
	if got := FieldN0.Increment(5, -1); got != 1 {
		t.Errorf("expected clamp to 1, got %v", got)
	}
	if got := FieldK.Increment(100000, 1); got != 100000 {
		t.Errorf("expected clamp to 100000, got %v", got)
	}
	if got := FieldR.Increment(4.995, 1); got != 5 {
		t.Errorf("expected clamp to 5, got %v", got)
	}
}

func TestFieldGetSet(t *testing.T) {
	p := DefaultParams()
	for _, f := range Fields() {
		if got := f.Get(p); got != f.Default {
			t.Errorf("%s: expected default %v, got %v", f.Name, f.Default, got)
		}
	}

	p = FieldK.Set(p, 50)
	p = FieldR.Set(p, -0.1)
	if p.K != 50 || p.R != -0.1 {
		t.Errorf("set failed: %+v", p)
	}
	if _, ok := AsDomainError(p.Validate()); !ok {
		t.Error("expected the updated params to trip the domain guard")
	}
}

func TestCheckBounds(t *testing.T) {
	p := DefaultParams()
	p.TMax = 1001

	err := CheckBounds(p)
	var be *BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("expected BoundsError, got %v", err)
	}
	if be.Field.Name != "tmax" {
		t.Errorf("expected tmax, got %s", be.Field.Name)
	}
	if be.Error() != "tmax = 1001 outside [1, 1000]" {
		t.Errorf("unexpected message: %s", be.Error())
	}
}

func TestFieldFormat(t *testing.T) {
	if got := FieldR.Format(0.5); got != "0.500" {
		t.Errorf("expected 0.500, got %s", got)
	}
	if got := FieldK.Format(500); got != "500" {
		t.Errorf("expected 500, got %s", got)
	}
}
