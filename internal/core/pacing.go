package core

import "time"

// Write is a single recorded cell mutation.
type Write struct {
	X, Y  int
	Value uint8
}

// Recorder is a Pacer that keeps every write so generation can be replayed
// after the fact.
type Recorder struct {
	writes []Write
}

// Pace records the write.
func (r *Recorder) Pace(x, y int, v uint8) {
	r.writes = append(r.writes, Write{X: x, Y: y, Value: v})
}

// Writes returns the recorded writes in order.
func (r *Recorder) Writes() []Write { return r.writes }

// Replay applies recorded writes to a cell buffer at a steady rate.
type Replay struct {
	w      int
	writes []Write
	pos    int

	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewReplay constructs a Replay for a grid w cells wide, applying wps writes
// per second.
func NewReplay(w int, writes []Write, wps int) *Replay {
	r := &Replay{w: w, writes: writes}
	r.SetRate(wps)
	return r
}

// SetRate changes the write rate. It is safe to call from the main loop.
func (r *Replay) SetRate(wps int) {
	if wps <= 0 {
		wps = 600
	}
	r.step = time.Second / time.Duration(wps)
	if r.step <= 0 {
		r.step = time.Nanosecond
	}
}

// Done reports whether every write has been applied.
func (r *Replay) Done() bool { return r.pos >= len(r.writes) }

// Rewind restarts the replay from the first write.
func (r *Replay) Rewind() {
	r.pos = 0
	r.accumulator = 0
	r.last = time.Time{}
}

// Advance applies the writes that fit into delta and returns how many were
// applied.
func (r *Replay) Advance(delta time.Duration, cells []uint8) int {
	r.accumulator += delta
	n := 0
	for r.accumulator >= r.step && !r.Done() {
		r.accumulator -= r.step
		wr := r.writes[r.pos]
		idx := wr.Y*r.w + wr.X
		if idx >= 0 && idx < len(cells) {
			cells[idx] = wr.Value
		}
		r.pos++
		n++
	}
	if r.Done() {
		r.accumulator = 0
	}
	return n
}

// Tick advances using wall-clock time since the previous call.
func (r *Replay) Tick(cells []uint8) int {
	now := time.Now()
	if r.last.IsZero() {
		r.last = now
	}
	delta := now.Sub(r.last)
	r.last = now
	return r.Advance(delta, cells)
}

// Finish applies all remaining writes immediately.
func (r *Replay) Finish(cells []uint8) {
	for !r.Done() {
		wr := r.writes[r.pos]
		idx := wr.Y*r.w + wr.X
		if idx >= 0 && idx < len(cells) {
			cells[idx] = wr.Value
		}
		r.pos++
	}
}
