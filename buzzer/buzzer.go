/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     Max Gerhardt
 * @copyright   2026, Max Gerhardt
 * @licence     MIT
 *
 */
package buzzer

import (
	"time"
)

// Pin is satisfied by machine.Pin configured as an output
type Pin interface {
	Set(value bool)
}

// Differential drives a piezo across two pins, swapping their polarity
// every half period
type Differential struct {
	// The two sides of the piezo
	a Pin
	b Pin
	// Blocking delay, time.Sleep on the device
	delay func(time.Duration)
}

func New(a Pin, b Pin) Differential {

	return Differential{a: a, b: b, delay: time.Sleep}
}

// NewWithDelay is New with a custom blocking delay
func NewWithDelay(a Pin, b Pin, delay func(time.Duration)) Differential {

	return Differential{a: a, b: b, delay: delay}
}

// Buzz toggles the buzzer every halfPeriod for the duration. Any remainder
// shorter than a whole cycle is not played.
func (p Differential) Buzz(duration time.Duration, halfPeriod time.Duration) {

	if halfPeriod <= 0 {
		return
	}

	// Loop until the remaining play time is less than a single cycle
	remaining := duration
	for remaining > halfPeriod*2 {
		remaining -= halfPeriod * 2

		// Toggle the buzzer
		p.a.Set(false)
		p.b.Set(true)
		p.delay(halfPeriod)

		p.a.Set(true)
		p.b.Set(false)
		p.delay(halfPeriod)
	}

	// Leave both sides low so no current flows
	p.Off()
}

// Off drives both sides of the buzzer low
func (p Differential) Off() {

	p.a.Set(false)
	p.b.Set(false)
}

// Frequency returns the tone in Hz produced by a half period
func Frequency(halfPeriod time.Duration) float64 {

	if halfPeriod <= 0 {
		return 0
	}
	return float64(time.Second) / float64(halfPeriod*2)
}
