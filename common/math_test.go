package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(5), Clamp(5, 0, 10))
	assert.Equal(t, float32(0), Clamp(-3, 0, 10))
	assert.Equal(t, float32(10), Clamp(42, 0, 10))
	assert.Equal(t, float32(10), Clamp(10, 0, 10))
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 9
	}
	Identity(m)
	for i, v := range m {
		if i == 0 || i == 5 || i == 10 || i == 15 {
			assert.Equal(t, float32(1), v)
		} else {
			assert.Equal(t, float32(0), v)
		}
	}
}

func TestMul4Identity(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)

	m := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	out := make([]float32, 16)
	Mul4(out, id, m)
	assert.Equal(t, m, out)

	// In-place multiplication must be safe.
	Mul4(m, id, m)
	assert.Equal(t, out, m)
}

func TestInvert4RoundTrip(t *testing.T) {
	proj := make([]float32, 16)
	Perspective(proj, float32(60.0*math.Pi/180.0), 16.0/9.0, 0.1, 1000)

	inv := make([]float32, 16)
	assert.True(t, Invert4(inv, proj))

	prod := make([]float32, 16)
	Mul4(prod, proj, inv)

	id := make([]float32, 16)
	Identity(id)
	for i := range id {
		assert.InDelta(t, float64(id[i]), float64(prod[i]), 1.0e-4)
	}
}

func TestInvert4Singular(t *testing.T) {
	zero := make([]float32, 16)
	out := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	before := append([]float32(nil), out...)
	assert.False(t, Invert4(out, zero))
	assert.Equal(t, before, out, "singular input must leave out unchanged")
}

func TestLookAtTransformsTargetToNegativeZ(t *testing.T) {
	view := make([]float32, 16)
	LookAt(view, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	// The look target must land on the view-space -Z axis.
	x := view[0]*0 + view[4]*0 + view[8]*0 + view[12]
	y := view[1]*0 + view[5]*0 + view[9]*0 + view[13]
	z := view[2]*0 + view[6]*0 + view[10]*0 + view[14]
	assert.InDelta(t, 0, float64(x), 1.0e-6)
	assert.InDelta(t, 0, float64(y), 1.0e-6)
	assert.InDelta(t, -5, float64(z), 1.0e-6)

	// The eye itself must land at the view-space origin.
	ex := view[0]*0 + view[4]*0 + view[8]*5 + view[12]
	ey := view[1]*0 + view[5]*0 + view[9]*5 + view[13]
	ez := view[2]*0 + view[6]*0 + view[10]*5 + view[14]
	assert.InDelta(t, 0, float64(ex), 1.0e-6)
	assert.InDelta(t, 0, float64(ey), 1.0e-6)
	assert.InDelta(t, 0, float64(ez), 1.0e-6)
}
