package pricing

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NewStandardNormal returns a standard normal sampler backed by its own
// source: no process-wide generator state is shared between runs. An explicit
// seed makes every draw sequence bit-reproducible; a nil seed draws fresh
// entropy and callers must not assume repeatability.
func NewStandardNormal(seed *int64) distuv.Normal {
	var src rand.Source
	if seed != nil {
		src = rand.NewSource(uint64(*seed))
	} else {
		src = rand.NewSource(entropySeed())
	}

	return distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   src,
	}
}

func entropySeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand is effectively infallible; the clock is a last resort.
		return uint64(time.Now().UnixNano())
	}

	return binary.LittleEndian.Uint64(buf[:])
}
