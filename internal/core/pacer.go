package core

import (
	"context"
	"time"
)

// Pacer spaces ticks at a steady ticks-per-second rate for hosts without a
// display clock of their own.
type Pacer struct {
	step time.Duration
	next time.Time
}

// NewPacer constructs a Pacer targeting the given TPS.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	p.SetTPS(tps)
	return p
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	p.step = time.Second / time.Duration(tps)
}

// Step returns the tick interval.
func (p *Pacer) Step() time.Duration { return p.step }

// Wait blocks until the next tick is due. A host that falls more than one
// tick behind skips the backlog instead of running ticks back to back.
func (p *Pacer) Wait(ctx context.Context) error {
	now := time.Now()
	if p.next.IsZero() || now.Sub(p.next) > p.step {
		p.next = now
	}
	if d := p.next.Sub(now); d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}
	p.next = p.next.Add(p.step)
	return nil
}
