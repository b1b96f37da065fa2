package models

import (
	"testing"
	"time"
)

func utc(hour, min int) time.Time {
	return time.Date(2026, 1, 28, hour, min, 0, 0, time.UTC)
}

func TestOverlaps_HalfOpen(t *testing.T) {
	a := TimeInterval{Start: utc(9, 0), End: utc(10, 0)}
	b := TimeInterval{Start: utc(10, 0), End: utc(11, 0)}
	if a.Overlaps(b) {
		t.Fatal("touching intervals must not overlap under half-open semantics")
	}
	c := TimeInterval{Start: utc(9, 59), End: utc(10, 30)}
	if !a.Overlaps(c) {
		t.Fatal("expected overlap")
	}
	if !c.Overlaps(a) {
		t.Fatal("overlap must be symmetric")
	}
}

func TestSubtract_NoOverlap(t *testing.T) {
	a := TimeInterval{Start: utc(9, 0), End: utc(10, 0)}
	b := TimeInterval{Start: utc(11, 0), End: utc(12, 0)}
	got := a.Subtract(b)
	if len(got) != 1 || !got[0].Start.Equal(a.Start) || !got[0].End.Equal(a.End) {
		t.Fatalf("expected input unchanged, got %v", got)
	}
}

func TestSubtract_FullContainment(t *testing.T) {
	a := TimeInterval{Start: utc(9, 0), End: utc(17, 0)}
	b := TimeInterval{Start: utc(12, 0), End: utc(13, 0)}
	got := a.Subtract(b)
	if len(got) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(got))
	}
	if !got[0].Start.Equal(utc(9, 0)) || !got[0].End.Equal(utc(12, 0)) {
		t.Fatalf("unexpected first piece %v", got[0])
	}
	if !got[1].Start.Equal(utc(13, 0)) || !got[1].End.Equal(utc(17, 0)) {
		t.Fatalf("unexpected second piece %v", got[1])
	}
}

func TestSubtract_Truncates(t *testing.T) {
	a := TimeInterval{Start: utc(9, 0), End: utc(12, 0)}
	b := TimeInterval{Start: utc(11, 0), End: utc(14, 0)}
	got := a.Subtract(b)
	if len(got) != 1 {
		t.Fatalf("expected 1 piece, got %d", len(got))
	}
	if !got[0].Start.Equal(utc(9, 0)) || !got[0].End.Equal(utc(11, 0)) {
		t.Fatalf("unexpected piece %v", got[0])
	}
}

func TestSubtract_CoveredEntirely(t *testing.T) {
	a := TimeInterval{Start: utc(10, 0), End: utc(11, 0)}
	b := TimeInterval{Start: utc(9, 0), End: utc(12, 0)}
	if got := a.Subtract(b); len(got) != 0 {
		t.Fatalf("expected nothing left, got %v", got)
	}
}

func TestSubtract_NeverZeroLength(t *testing.T) {
	a := TimeInterval{Start: utc(9, 0), End: utc(12, 0)}
	// Block aligned exactly with the start edge: the "before" remainder is
	// zero-length and must be dropped.
	b := TimeInterval{Start: utc(9, 0), End: utc(10, 0)}
	got := a.Subtract(b)
	if len(got) != 1 {
		t.Fatalf("expected 1 piece, got %d", len(got))
	}
	for _, iv := range got {
		if iv.IsZeroLength() {
			t.Fatalf("zero-length remainder leaked: %v", iv)
		}
	}
}

func TestClampTo(t *testing.T) {
	bounds := TimeInterval{Start: utc(9, 0), End: utc(17, 0)}

	iv := TimeInterval{Start: utc(8, 0), End: utc(10, 0)}
	clamped, ok := iv.ClampTo(bounds)
	if !ok {
		t.Fatal("expected a surviving piece")
	}
	if !clamped.Start.Equal(utc(9, 0)) || !clamped.End.Equal(utc(10, 0)) {
		t.Fatalf("unexpected clamp %v", clamped)
	}

	outside := TimeInterval{Start: utc(18, 0), End: utc(19, 0)}
	if _, ok := outside.ClampTo(bounds); ok {
		t.Fatal("interval fully outside bounds must not survive")
	}
}

func TestIsZeroLength(t *testing.T) {
	if !(TimeInterval{Start: utc(9, 0), End: utc(9, 0)}).IsZeroLength() {
		t.Fatal("equal bounds must be zero-length")
	}
	if (TimeInterval{Start: utc(9, 0), End: utc(9, 1)}).IsZeroLength() {
		t.Fatal("positive span must not be zero-length")
	}
}
