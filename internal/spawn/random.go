package spawn

import (
	"math/rand/v2"
	"time"

	"github.com/udisondev/splinespawn/internal/model"
)

// Random is the source of every jitter, rotation and scale draw.
type Random interface {
	// Range returns a uniform value between min and max.
	Range(min, max float32) float32
}

// PCGRandom is the default Random backed by math/rand/v2.
type PCGRandom struct {
	r *rand.Rand
}

// NewRandom creates a seeded Random. Seed 0 seeds from the clock.
func NewRandom(seed uint64) *PCGRandom {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PCGRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Range returns min + u*(max-min) for u in [0, 1).
func (p *PCGRandom) Range(min, max float32) float32 {
	return min + p.r.Float32()*(max-min)
}

func draw(r Random, rg model.Range) float32 {
	return r.Range(rg.Min, rg.Max)
}
