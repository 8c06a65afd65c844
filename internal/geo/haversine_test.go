package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters_SamePoint(t *testing.T) {
	assert.InDelta(t, 0, HaversineMeters(28.6139, 77.2090, 28.6139, 77.2090), 1e-9)
}

func TestHaversineMeters_KnownDistance(t *testing.T) {
	// Connaught Place to India Gate, roughly 2.2 km.
	d := HaversineMeters(28.6315, 77.2167, 28.6129, 77.2295)
	assert.InDelta(t, 2400, d, 200)
}

func TestHaversineMeters_Symmetric(t *testing.T) {
	a := HaversineMeters(28.6139, 77.2090, 28.7041, 77.1025)
	b := HaversineMeters(28.7041, 77.1025, 28.6139, 77.2090)
	assert.InDelta(t, a, b, 1e-6)
}

func TestHaversineMeters_SmallOffset(t *testing.T) {
	// One ten-thousandth of a degree of latitude is about 11 meters.
	d := HaversineMeters(28.6139, 77.2090, 28.6140, 77.2090)
	assert.InDelta(t, 11.1, d, 0.5)
}
