package rng

import "testing"

func TestStreamDeterministic(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestStreamDifferentSeeds(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 20; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 20 {
		t.Error("different seeds should produce different sequences")
	}
}

func TestStreamReseed(t *testing.T) {
	s := New(DefaultSeed)
	first := make([]float64, 10)
	for i := range first {
		first[i] = s.Float64()
	}

	s.Reseed()
	for i, want := range first {
		if got := s.Float64(); got != want {
			t.Errorf("after Reseed draw %d = %v, want %v", i, got, want)
		}
	}
}

func TestStreamRange(t *testing.T) {
	s := New(3)
	for i := 0; i < 1000; i++ {
		v := s.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, want [0,1)", v)
		}
		r := s.Range(-2, 5)
		if r < -2 || r >= 5 {
			t.Fatalf("Range(-2, 5) = %v", r)
		}
	}
}

func TestNewRandomRecordsSeed(t *testing.T) {
	s := NewRandom()
	x := s.Float64()

	replay := New(s.Seed())
	if y := replay.Float64(); x != y {
		t.Errorf("New(Seed()) first draw = %v, want %v", y, x)
	}
}
