package core

// Loop converts variable host-supplied elapsed time into fixed-duration
// logic ticks through an accumulator. The host decides the cadence: it
// calls Advance from its render loop, a test harness, or a fixed-rate
// driver; the engine never starts its own timer.

// MaxCatchUpTicks caps how many ticks one Advance call may fire after a
// host stall. Time beyond the cap is dropped, not queued.
const MaxCatchUpTicks = 5

// Loop is the fixed-timestep accumulator.
type Loop struct {
	tickDur float64 // seconds per logic tick
	maxAcc  float64 // accumulator cap

	acc    float64
	tick   uint64
	paused bool
	frozen float64 // interpolation held while paused
}

// NewLoop creates a loop running at the given tick rate (ticks/second).
func NewLoop(tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	dur := 1.0 / float64(tickRate)
	return &Loop{
		tickDur: dur,
		maxAcc:  dur * MaxCatchUpTicks,
	}
}

// Tick returns the current tick counter.
func (l *Loop) Tick() uint64 {
	return l.tick
}

// Paused reports whether the loop is paused.
func (l *Loop) Paused() bool {
	return l.paused
}

// Advance banks dt seconds of elapsed time, fires onTick for every whole
// tick available (at most MaxCatchUpTicks), then fires onRender once with
// the interpolation fraction of the leftover time (0 = just ticked,
// approaching 1 = about to tick). While paused, logic ticks are
// suppressed and onRender fires with the frozen fraction.
func (l *Loop) Advance(dt float64, onTick func(tick uint64), onRender func(alpha float64)) {
	if l.paused {
		if onRender != nil {
			onRender(l.frozen)
		}
		return
	}

	if dt > 0 {
		l.acc += dt
	}
	if l.acc > l.maxAcc {
		l.acc = l.maxAcc
	}

	for l.acc >= l.tickDur {
		if onTick != nil {
			onTick(l.tick)
		}
		l.tick++
		l.acc -= l.tickDur
	}

	if onRender != nil {
		onRender(l.acc / l.tickDur)
	}
}

// Pause suppresses logic ticks, freezing the interpolation fraction at
// its current value.
func (l *Loop) Pause() {
	if l.paused {
		return
	}
	l.paused = true
	l.frozen = l.acc / l.tickDur
}

// Resume clears the accumulator before unpausing so no burst of
// catch-up ticks fires on the first Advance after a long pause.
func (l *Loop) Resume() {
	if !l.paused {
		return
	}
	l.paused = false
	l.acc = 0
}

// Reset restores the loop to its initial state.
func (l *Loop) Reset() {
	l.acc = 0
	l.tick = 0
	l.paused = false
	l.frozen = 0
}
