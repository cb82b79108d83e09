// Package countdown decides when a running timer should announce how much time
// is left. Announcements happen at fixed milestones (10m, 5m, ... 1s), each at
// most once.
package countdown

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
)

var DefaultMilestones = []time.Duration{
	10 * time.Minute,
	5 * time.Minute,
	4 * time.Minute,
	3 * time.Minute,
	2 * time.Minute,
	1 * time.Minute,
	30 * time.Second,
	10 * time.Second,
	5 * time.Second,
	4 * time.Second,
	3 * time.Second,
	2 * time.Second,
	1 * time.Second,
}

type Countdown struct {
	end        time.Time
	milestones []time.Duration

	// smallest milestone that has been announced or skipped
	last time.Duration
}

// New creates a countdown running from start until end. Milestones larger than
// the time left at start are never announced. Non-positive milestones are ignored.
func New(start, end time.Time, milestones []time.Duration) *Countdown {
	sorted := make([]time.Duration, 0, len(milestones))
	for _, m := range milestones {
		if m > 0 {
			sorted = append(sorted, m)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] > sorted[j]
	})

	c := &Countdown{
		end:        end,
		milestones: sorted,
		last:       time.Duration(math.MaxInt64),
	}

	remaining := end.Sub(start)
	for _, m := range sorted {
		if m > remaining {
			c.last = m
		}
	}

	return c
}

func (c *Countdown) End() time.Time {
	return c.end
}

func (c *Countdown) Remaining(now time.Time) time.Duration {
	return max(c.end.Sub(now), 0)
}

func (c *Countdown) Done(now time.Time) bool {
	return !now.Before(c.end)
}

// Check returns the milestone to announce at now, if any. When several
// milestones were crossed since the previous check only the smallest is
// returned.
func (c *Countdown) Check(now time.Time) (time.Duration, bool) {
	remaining := c.end.Sub(now)

	var found time.Duration
	ok := false
	for _, m := range c.milestones {
		if m < c.last && remaining <= m {
			found = m
			ok = true
		}
	}

	if ok {
		c.last = found
	}
	return found, ok
}

// Run checks the countdown on every tick and calls announce for each milestone
// reached. It returns nil once the countdown is done or ticks is closed, and
// ctx.Err() if the context ends first.
func (c *Countdown) Run(ctx context.Context, ticks <-chan time.Time, announce func(time.Duration)) error {
	for {
		select {
		case <-ctx.Done():
			log.Debug().Err(ctx.Err()).Time("end", c.end).Msg("countdown cancelled")
			return ctx.Err()
		case now, open := <-ticks:
			if !open {
				return nil
			}

			if m, ok := c.Check(now); ok {
				log.Trace().Dur("milestone", m).Dur("remaining", c.Remaining(now)).Msg("milestone reached")
				announce(m)
			}

			if c.Done(now) {
				log.Debug().Time("end", c.end).Msg("countdown finished")
				return nil
			}
		}
	}
}
