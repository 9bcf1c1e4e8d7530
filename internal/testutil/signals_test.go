package testutil

import (
	"math"
	"testing"
)

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(7, 1.0, 128)
	b := DeterministicNoise(7, 1.0, 128)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestImpulse(t *testing.T) {
	s := Impulse(8, 3)
	for i, v := range s {
		want := 0.0
		if i == 3 {
			want = 1.0
		}
		if v != want {
			t.Fatalf("s[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestReferenceCorrelate(t *testing.T) {
	got := ReferenceCorrelate([]float64{1, 2, 3, 4}, []float64{1, 1})
	want := []float64{1, 3, 5, 7, 4}
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReferenceCorrelateSingleSample(t *testing.T) {
	got := ReferenceCorrelate([]float64{5}, []float64{3})
	if len(got) != 1 || got[0] != 15 {
		t.Fatalf("got %v, want [15]", got)
	}
}
