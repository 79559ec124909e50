package engine_test

import (
	"testing"

	"spider/internal/engine/sim"
)

func TestRandomPlayoutsManySeeds(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		if err := sim.RunRandomPlayouts(seed, 6, 400); err != nil {
			t.Fatalf("random playout failed: %v", err)
		}
	}
}

func FuzzRandomPlayouts(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(42))
	f.Add(int64(20260831))
	f.Fuzz(func(t *testing.T, seed int64) {
		if err := sim.RunRandomPlayouts(seed, 3, 400); err != nil {
			t.Fatalf("random playout failed: %v", err)
		}
	})
}
