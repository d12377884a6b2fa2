package vector

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScalarOps(t *testing.T) {
	a, b := Scalar(3), Scalar(-1.5)

	if got := a.Add(b); got != 1.5 {
		t.Errorf("add: got %v, expected 1.5", got)
	}
	if got := a.Sub(b); got != 4.5 {
		t.Errorf("sub: got %v, expected 4.5", got)
	}
	if got := a.Scale(2); got != 6 {
		t.Errorf("scale: got %v, expected 6", got)
	}
	if got := b.MagnitudeSquared(); got != 2.25 {
		t.Errorf("magnitude squared: got %v, expected 2.25", got)
	}
}

func TestPointOps(t *testing.T) {
	p := Point{3, 4}

	if got := p.MagnitudeSquared(); got != 25 {
		t.Errorf("magnitude squared: got %v, expected 25", got)
	}
	if diff := cmp.Diff(Point{4, 6}, p.Add(Point{1, 2})); diff != "" {
		t.Errorf("add mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Point{1.5, 2}, p.Scale(0.5)); diff != "" {
		t.Errorf("scale mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroValueIsIdentity(t *testing.T) {
	var zeroP Point
	var zeroR Rect
	var zeroT Transform

	p := Point{1, -2}
	if diff := cmp.Diff(p, p.Add(zeroP)); diff != "" {
		t.Errorf("point identity (-want +got):\n%s", diff)
	}

	r := Rect{Point{1, 2}, Size{3, 4}}
	if diff := cmp.Diff(r, r.Add(zeroR)); diff != "" {
		t.Errorf("rect identity (-want +got):\n%s", diff)
	}

	tr := Transform{Point{1, 2}, 0.5}
	if diff := cmp.Diff(tr, tr.Add(zeroT)); diff != "" {
		t.Errorf("transform identity (-want +got):\n%s", diff)
	}
}

// Composite operations must equal the same operation applied independently
// to each field.
func TestCompositeDecomposition(t *testing.T) {
	a := Rect{Point{1, 2}, Size{3, 4}}
	b := Rect{Point{-5, 0.5}, Size{2, -1}}

	sum := a.Add(b)
	if diff := cmp.Diff(a.Origin.Add(b.Origin), sum.Origin); diff != "" {
		t.Errorf("origin decomposition (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(a.Size.Add(b.Size), sum.Size); diff != "" {
		t.Errorf("size decomposition (-want +got):\n%s", diff)
	}

	if got, want := a.MagnitudeSquared(), a.Origin.MagnitudeSquared()+a.Size.MagnitudeSquared(); got != want {
		t.Errorf("magnitude decomposition: got %v, expected %v", got, want)
	}

	min := a.Memberwise(b, math.Min)
	if diff := cmp.Diff(a.Origin.Memberwise(b.Origin, math.Min), min.Origin); diff != "" {
		t.Errorf("memberwise decomposition (-want +got):\n%s", diff)
	}
}

func TestAddScaled(t *testing.T) {
	got := AddScaled(Point{1, 1}, Point{2, -4}, 0.5)
	if diff := cmp.Diff(Point{2, -1}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestClamp(t *testing.T) {
	got := Clamp(Point{-2, 5}, Point{0, 0}, Point{1, 1})
	if diff := cmp.Diff(Point{0, 1}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	inside := Clamp(Scalar(0.3), Scalar(0), Scalar(1))
	if inside != 0.3 {
		t.Errorf("in-bounds value moved: got %v", inside)
	}
}

func TestMap(t *testing.T) {
	got := Map(Point{1, -4}, math.Abs)
	if diff := cmp.Diff(Point{1, 4}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestProject(t *testing.T) {
	// Zero velocity projects to the value itself.
	if got := Project(Scalar(2), Scalar(0), 0.998); got != 2 {
		t.Errorf("zero velocity: got %v, expected 2", got)
	}

	// Positive velocity projects forward by v*rate/(1000*(1-rate)).
	got := float64(Project(Scalar(0), Scalar(1), 0.998))
	want := 0.998 / (1000 * 0.002)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got %v, expected %v", got, want)
	}
}
