/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     Max Gerhardt
 * @copyright   2026, Max Gerhardt
 * @licence     MIT
 *
 */
package game

import "time"

// Clock is the time source for the engine. The busy-wait loops read Now()
// on every pass and the fixed pauses go through Sleep(), so tests can swap
// in a fake.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time {

	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {

	time.Sleep(d)
}

// SystemClock uses the time package directly
var SystemClock Clock = systemClock{}
