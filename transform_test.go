package viewport

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineOrder(t *testing.T) {
	// Scale then translate: the translation is not scaled.
	m := multiplyAffine(translateAffine(5, 7), scaleAffine(2))
	x, y := transformPoint(m, 1, 1)
	assertNear(t, "x", x, 7)
	assertNear(t, "y", y, 9)

	// Translate then scale: the translation is scaled.
	m = multiplyAffine(scaleAffine(2), translateAffine(5, 7))
	x, y = transformPoint(m, 1, 1)
	assertNear(t, "x", x, 12)
	assertNear(t, "y", y, 16)
}

func TestInvertAffineRoundtrip(t *testing.T) {
	m := [6]float64{1.5, 0, 0, 1.5, -40, 12}
	inv := invertAffine(m)
	assertMatrix(t, "m*inv", multiplyAffine(m, inv), identityTransform)
}

func TestInvertAffineSingular(t *testing.T) {
	assertMatrix(t, "singular", invertAffine([6]float64{0, 0, 0, 0, 5, 5}), identityTransform)
}

func TestLayerTransformIdentity(t *testing.T) {
	m := layerTransform(ViewportState{Zoom: 1}, Size{Width: 300, Height: 200})
	assertMatrix(t, "identity", m, identityTransform)
}

func TestLayerTransformScalesAboutCenter(t *testing.T) {
	size := Size{Width: 300, Height: 200}
	m := layerTransform(ViewportState{Zoom: 2}, size)

	x, y := transformPoint(m, 150, 100)
	assertNear(t, "center x", x, 150)
	assertNear(t, "center y", y, 100)

	x, y = transformPoint(m, 0, 0)
	assertNear(t, "corner x", x, -150)
	assertNear(t, "corner y", y, -100)
}

func TestLayerTransformOffset(t *testing.T) {
	size := Size{Width: 300, Height: 200}
	m := layerTransform(ViewportState{Zoom: 2, Offset: Vec2{30, -20}}, size)
	x, y := transformPoint(m, 150, 100)
	assertNear(t, "x", x, 180)
	assertNear(t, "y", y, 80)
}
