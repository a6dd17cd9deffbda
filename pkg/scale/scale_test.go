package scale

import (
	"math"
	"testing"
)

func TestCategoryScaleIndex(t *testing.T) {
	s := Category("city", "a", "b", "c")
	if got := s.ScaleIndex(0); got != 0 {
		t.Fatalf("expected first category to scale to 0, got %v", got)
	}
	if got := s.ScaleIndex(2); got != 1 {
		t.Fatalf("expected last category to scale to 1, got %v", got)
	}
	if got := s.ScaleIndex(1); got != 0.5 {
		t.Fatalf("expected middle category to scale to 0.5, got %v", got)
	}
}

func TestCategorySingleValue(t *testing.T) {
	s := Category("city", "only")
	if got := s.ScaleIndex(0); got != 0 {
		t.Fatalf("expected single category to scale to 0, got %v", got)
	}
}

func TestCategoryScaleString(t *testing.T) {
	s := Category("city", "a", "b", "c")
	if got := s.ScaleString("b"); got != 0.5 {
		t.Fatalf("expected category b to scale to 0.5, got %v", got)
	}
	if got := s.ScaleString("missing"); got != 0 {
		t.Fatalf("expected unknown category to scale to 0, got %v", got)
	}
}

func TestLinearScaleNumber(t *testing.T) {
	s := Linear("temp", 0, 100)
	if got := s.ScaleNumber(50); got != 0.5 {
		t.Fatalf("expected 50 to scale to 0.5, got %v", got)
	}
	if got := s.ScaleNumber(0); got != 0 {
		t.Fatalf("expected min to scale to 0, got %v", got)
	}
	if got := s.ScaleNumber(100); got != 1 {
		t.Fatalf("expected max to scale to 1, got %v", got)
	}
}

func TestLinearDegenerateDomain(t *testing.T) {
	s := Linear("temp", 42, 42)
	if got := s.ScaleNumber(42); got != 0 {
		t.Fatalf("expected degenerate domain to scale to 0, got %v", got)
	}
}

func TestLinearScaleStringParses(t *testing.T) {
	s := Linear("temp", 0, 10)
	if got := s.ScaleString("5"); got != 0.5 {
		t.Fatalf("expected \"5\" to scale to 0.5, got %v", got)
	}
	if got := s.ScaleString("not-a-number"); got != 0 {
		t.Fatalf("expected unparseable value to scale to 0, got %v", got)
	}
}

func TestLinearTicks(t *testing.T) {
	s := Linear("temp", 0, 100)
	ticks := s.Ticks(5)
	want := []float64{0, 25, 50, 75, 100}
	if len(ticks) != len(want) {
		t.Fatalf("expected %d ticks, got %d", len(want), len(ticks))
	}
	for i, w := range want {
		if math.Abs(ticks[i]-w) > 1e-9 {
			t.Fatalf("tick %d: expected %v, got %v", i, w, ticks[i])
		}
	}
}

func TestCategoryTicks(t *testing.T) {
	s := Category("city", "a", "b", "c")
	ticks := s.Ticks(10)
	if len(ticks) != 3 {
		t.Fatalf("expected one tick per category, got %d", len(ticks))
	}
	if ticks[2] != 2 {
		t.Fatalf("expected last tick at index 2, got %v", ticks[2])
	}
}
