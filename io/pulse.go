package io

// Pulse is a handshake strobe of the program load boundary.
type Pulse int

//go:generate go tool stringer -linecomment -type=Pulse
const (
	PULSE_READY = Pulse(0) // ready
	PULSE_DONE  = Pulse(1) // done
)

// PulseQueue records handshake pulses in the order they were raised.
type PulseQueue struct {
	Pulses []Pulse
}

// Reset discards all recorded pulses.
func (pq *PulseQueue) Reset() {
	pq.Pulses = nil
}

// Raise records a pulse.
func (pq *PulseQueue) Raise(pulse Pulse) {
	pq.Pulses = append(pq.Pulses, pulse)
}

// Await removes and returns the oldest recorded pulse.
func (pq *PulseQueue) Await() (pulse Pulse, ok bool) {
	if len(pq.Pulses) > 0 {
		ok = true
		pulse = pq.Pulses[0]
		pq.Pulses = pq.Pulses[1:]
	}
	return
}
