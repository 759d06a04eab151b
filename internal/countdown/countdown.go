package countdown

import (
	"context"
	"time"
)

// DefaultInterval is the refresh cadence for ticking displays.
const DefaultInterval = time.Second

// Breakdown decomposes the time remaining until a target into display units.
// Hours, Minutes and Seconds are each taken modulo the next larger unit, so
// the full remaining duration is reconstructable from the four fields.
type Breakdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Expired bool
}

// Until computes the breakdown of the time remaining from now until target.
// A zero target, or a target at or before now, yields an all-zero expired
// breakdown.
func Until(target, now time.Time) Breakdown {
	if target.IsZero() || !target.After(now) {
		return Breakdown{Expired: true}
	}

	remaining := target.Sub(now)
	return Breakdown{
		Days:    int(remaining.Hours()) / 24,
		Hours:   int(remaining.Hours()) % 24,
		Minutes: int(remaining.Minutes()) % 60,
		Seconds: int(remaining.Seconds()) % 60,
	}
}

// Watch invokes fn with a fresh breakdown immediately and then once per
// interval, stopping when the countdown expires or ctx is cancelled. The
// final expired breakdown is delivered before returning.
func Watch(ctx context.Context, target time.Time, interval time.Duration, fn func(Breakdown)) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	b := Until(target, time.Now())
	fn(b)
	if b.Expired {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b = Until(target, time.Now())
			fn(b)
			if b.Expired {
				return
			}
		}
	}
}
