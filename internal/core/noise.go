package core

import (
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/logger"
)

const (
	noiseAlpha     = 2.0
	noiseBeta      = 2.0
	noiseOctaves   = 3
	noiseScale     = 0.15
	noiseThreshold = 0.5
)

// noiseField maps level coordinates to terrain, so neighbouring rectangles
// filled with the same seed line up.
type noiseField struct {
	seed int64
	p    *perlin.Perlin
}

// newNoiseField seeds a field. Seed 0 picks one from the clock.
func newNoiseField(seed int64) *noiseField {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &noiseField{
		seed: seed,
		p:    perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

func (n *noiseField) terrain(x, y int) geo.GeoType {
	v := (n.p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale) + 1) / 2
	if v > noiseThreshold {
		return geo.Solid
	}
	return geo.Air
}

// Seed returns the seed of the noise tool.
func (e *Editor) Seed() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.noise.seed
}

// SetSeed reseeds the noise tool.
func (e *Editor) SetSeed(seed int64) {
	field := newNoiseField(seed)
	e.mu.Lock()
	e.noise = field
	e.mu.Unlock()
	logger.Debugf("Editor: noise seed set to %d", field.seed)
}
