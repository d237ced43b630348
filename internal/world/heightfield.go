package world

import "math"

// HeightAmplitude is the number of distinct surface levels above the baseline
// minus one: heights fall in [baseline, baseline+HeightAmplitude].
const HeightAmplitude = 4

// HeightField maps a world column to its surface height.
type HeightField struct {
	noise    NoiseSource
	scale    float64
	baseline int
}

// NewHeightField creates a height field sampling noise at (x/scale, z/scale).
func NewHeightField(noise NoiseSource, scale float64, baseline int) *HeightField {
	if scale == 0 {
		scale = 1
	}
	return &HeightField{noise: noise, scale: scale, baseline: baseline}
}

// Height computes the surface cell Y at world X,Z.
func (h *HeightField) Height(worldX, worldZ int) int {
	n := clampUnit(h.noise.Sample2D(float64(worldX)/h.scale, float64(worldZ)/h.scale))
	return int(math.Floor((n+1)*2)) + h.baseline
}

// Baseline returns the lowest possible height.
func (h *HeightField) Baseline() int { return h.baseline }
