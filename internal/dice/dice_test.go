package dice

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestShuffleKeepsElements(t *testing.T) {
	r := New(7)
	in := []int{1, 2, 3, 4, 5}
	out := Shuffle(r, in)
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	seen := map[int]bool{}
	for _, v := range out {
		seen[v] = true
	}
	for _, v := range in {
		if !seen[v] {
			t.Errorf("missing %d after shuffle", v)
		}
	}
	if in[0] != 1 || in[4] != 5 {
		t.Error("input slice was mutated")
	}
}

func TestBetweenBounds(t *testing.T) {
	r := New(1)
	for i := 0; i < 200; i++ {
		v := Between(r, 50, 78)
		if v < 50 || v > 78 {
			t.Fatalf("Between out of range: %d", v)
		}
	}
}

func TestChanceExtremes(t *testing.T) {
	r := New(3)
	for i := 0; i < 20; i++ {
		if Chance(r, 0) {
			t.Fatal("Chance(0) returned true")
		}
		if !Chance(r, 1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}
