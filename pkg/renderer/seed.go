package renderer

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// BandSeed derives an independent seed for a band from the render's base seed.
// It uses the splitmix64 finalizer so neighbouring band indices give uncorrelated streams.
func BandSeed(base int64, band int) int64 {
	z := uint64(base) + uint64(band+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	return int64(z)
}

// NewEntropySeed draws a non-zero seed from the operating system's random source
func NewEntropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand does not fail on supported platforms; fall back to the clock anyway
		return time.Now().UnixNano() | 1
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]))
	if seed == 0 {
		seed = 1
	}
	return seed
}
