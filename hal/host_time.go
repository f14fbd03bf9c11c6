package hal

import "time"

// tickBuffer bounds how many unread tick counts the host queues. Counts
// are cumulative, so a full queue sheds its oldest entry and no time is
// lost.
const tickBuffer = 64

// hostTime turns wall time between steps into TickDuration ticks.
type hostTime struct {
	ch  chan uint64
	seq uint64

	now  func() time.Time
	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, tickBuffer), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step advances the tick count by every TickDuration elapsed since the
// previous call. The first call advances it by n.
func (t *hostTime) step(n uint64) {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.advance(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / TickDuration)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % TickDuration
	t.advance(ticks)
}

// advance publishes the count after n more ticks.
func (t *hostTime) advance(n uint64) {
	t.seq += n
	for {
		select {
		case t.ch <- t.seq:
			return
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}
