package dsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gordonklaus/colornoise/dsp"
)

func TestFingerprint(t *testing.T) {
	a := []float32{0, 0.5, -0.25}
	assert.Equal(t, dsp.Fingerprint(a), dsp.Fingerprint(append([]float32(nil), a...)))
	assert.NotEqual(t, dsp.Fingerprint(a), dsp.Fingerprint([]float32{0, 0.5, 0.25}))
	assert.NotEqual(t, dsp.Fingerprint([]float32{0}), dsp.Fingerprint([]float32{float32(negZero())}))
	assert.NotEqual(t, dsp.Fingerprint(nil), dsp.Fingerprint([]float32{0}))
}

func negZero() float64 {
	z := 0.0
	return -z
}
