package nodeedit

import "testing"

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, 4), Pt(5, 6).Sub(Pt(2, 2)))
}

func TestPointMidpoint(t *testing.T) {
	diff(t, Pt(5, 0), Pt(0, 0).Midpoint(Pt(10, 0)))
	diff(t, Pt(-1, 2.5), Pt(-4, 2).Midpoint(Pt(2, 3)))
}

func TestPointLerp(t *testing.T) {
	diff(t, Pt(2.5, 0), Pt(0, 0).Lerp(Pt(10, 0), 0.25))
	diff(t, Pt(10, 0), Pt(0, 0).Lerp(Pt(10, 0), 1))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}
