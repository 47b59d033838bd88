package geom

import (
	"math"
	"testing"
)

func TestPointAdd(t *testing.T) {
	got := Pt(1, 2).Add(Pt(10, -4))
	if got != Pt(11, -2) {
		t.Errorf("Add = %v, want (11,-2)", got)
	}
}

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"same point", Pt(3, 3), Pt(3, 3), 0},
		{"horizontal", Pt(0, 0), Pt(5, 0), 5},
		{"pythagorean", Pt(0, 0), Pt(3, 4), 5},
		{"negative coords", Pt(-1, -1), Pt(2, 3), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Distance(tt.q); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
			if got := tt.q.Distance(tt.p); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance not symmetric: %v", got)
			}
		})
	}
}

func TestPointString(t *testing.T) {
	if s := Pt(1.5, -2).String(); s != "(1.5,-2)" {
		t.Errorf("String = %q", s)
	}
}
