package checker

import (
	"math/rand"
	"time"
)

// rng is the process-wide random source for example parameters. It is
// replaced at most once per Check invocation when a seed is supplied
// and is not reset afterward, so concurrent invocations are
// unsupported.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

func seedSource(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

// randomVec draws n uniform parameters from [0, 1).
func randomVec(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}
