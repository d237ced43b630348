package config

import "sync"

// RenderSettings holds viewer configuration
type RenderSettings struct {
	mu         sync.RWMutex
	fov        float32 // degrees
	orbitSpeed float32 // radians per second
}

// NewRenderSettings returns render settings with default values.
func NewRenderSettings() *RenderSettings {
	return &RenderSettings{
		fov:        60,
		orbitSpeed: 0.1,
	}
}

// FOV returns the vertical field of view in degrees
func (r *RenderSettings) FOV() float32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fov
}

// SetFOV sets the field of view in degrees
func (r *RenderSettings) SetFOV(deg float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Clamp to reasonable values
	if deg < 30 {
		deg = 30
	}
	if deg > 110 {
		deg = 110
	}

	r.fov = deg
}

// OrbitSpeed returns the camera orbit speed in radians per second
func (r *RenderSettings) OrbitSpeed() float32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.orbitSpeed
}

// SetOrbitSpeed sets the camera orbit speed
func (r *RenderSettings) SetOrbitSpeed(speed float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if speed < 0 {
		speed = 0
	}
	if speed > 2 {
		speed = 2
	}

	r.orbitSpeed = speed
}
