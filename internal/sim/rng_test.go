package sim

import "testing"

func TestSeededRNGReproducible(t *testing.T) {
	a := NewSeededRNG(9)
	b := NewSeededRNG(9)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestDefaultRNGRange(t *testing.T) {
	rng := DefaultRNG()
	for i := 0; i < 1000; i++ {
		v := rng.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %f outside [0,1)", v)
		}
	}
}

func TestIntNBounds(t *testing.T) {
	rng := NewSeededRNG(1)
	for i := 0; i < 1000; i++ {
		if v := IntN(rng, 3); v < 0 || v > 2 {
			t.Fatalf("IntN out of range: %d", v)
		}
	}
	if IntN(rng, 0) != 0 || IntN(rng, 1) != 0 {
		t.Fatalf("degenerate n must return 0")
	}
}
