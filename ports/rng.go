package ports

import (
	"math/rand/v2"
)

// StreamProvider hands out deterministic, non-colliding random sources.
//
// Each replication of each combination gets its own stream derived from the
// base seed, so replications stay statistically independent regardless of
// which worker runs them, and a fixed seed reproduces the run bit for bit.
type StreamProvider interface {
	// Stream returns the random source for a named operation and
	// replication index. Equal arguments always yield identical streams.
	Stream(label string, replication uint64) rand.Source
}
