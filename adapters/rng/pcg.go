// Package rng provides deterministic per-replication random streams backed
// by PCG sources from math/rand/v2, compatible with gonum's distuv samplers.
package rng

import (
	"hash/fnv"
	"math/rand/v2"
)

// splitmix64 constant, used to spread replication indices across the seed
// word so adjacent replications do not share low-entropy seeds.
const replicationMix = 0x9e3779b97f4a7c15

// PCGProvider derives independent PCG streams from a base seed. The first
// seed word is the shared base seed; the second mixes the operation label
// with the replication index, so no two (label, replication) pairs collide.
type PCGProvider struct {
	seed uint64
}

// NewPCGProvider creates a provider rooted at the given base seed.
func NewPCGProvider(seed uint64) *PCGProvider {
	return &PCGProvider{seed: seed}
}

// Stream returns the deterministic source for a named operation and
// replication index.
func (p *PCGProvider) Stream(label string, replication uint64) rand.Source {
	h := fnv.New64a()
	h.Write([]byte(label))
	mixed := h.Sum64() ^ ((replication + 1) * replicationMix)
	return rand.NewPCG(p.seed, mixed)
}
