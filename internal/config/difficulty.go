package config

import (
	"math"
	"time"
)

// Ramp maps survival time to a speed multiplier.
//
// A tier applies once elapsed time is strictly greater than its threshold,
// so at the exact boundary the previous tier is still in effect. The result
// is capped at the ceiling, after which further time changes nothing.
// Ramp holds no state, so calling it repeatedly in one tick is harmless.
type Ramp struct {
	enabled bool
	ceiling float64
	tiers   []Tier
}

// NewRamp creates a ramp from the difficulty config.
func NewRamp(cfg DifficultyConfig) Ramp {
	tiers := make([]Tier, len(cfg.Tiers))
	copy(tiers, cfg.Tiers)
	return Ramp{
		enabled: cfg.Enabled,
		ceiling: math.Max(cfg.Ceiling, 1.0),
		tiers:   tiers,
	}
}

// IsEnabled returns whether the ramp changes speed at all.
func (r Ramp) IsEnabled() bool {
	return r.enabled && len(r.tiers) > 0
}

// Ceiling returns the maximum multiplier.
func (r Ramp) Ceiling() float64 {
	return r.ceiling
}

// Multiplier returns the speed multiplier for the given survival time.
func (r Ramp) Multiplier(elapsed time.Duration) float64 {
	if !r.IsEnabled() {
		return 1.0
	}
	m := 1.0
	for _, t := range r.tiers {
		if elapsed <= t.After {
			break
		}
		m = t.Multiplier
	}
	return math.Min(m, r.ceiling)
}

// Speed returns base scaled by the multiplier for the given survival time.
func (r Ramp) Speed(base float64, elapsed time.Duration) float64 {
	return base * r.Multiplier(elapsed)
}

// Tier returns the 0-based index of the active tier, or -1 before the first.
func (r Ramp) Tier(elapsed time.Duration) int {
	if !r.IsEnabled() {
		return -1
	}
	idx := -1
	for i, t := range r.tiers {
		if elapsed <= t.After {
			break
		}
		idx = i
	}
	return idx
}

// Saturated reports whether the ramp has reached its ceiling.
func (r Ramp) Saturated(elapsed time.Duration) bool {
	return r.Multiplier(elapsed) >= r.ceiling
}
