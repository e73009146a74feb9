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

// Input reads the buttons. CheckButton() must not block.
type Input interface {
	CheckButton() Move
}

// Output drives the lights and the sound
type Output interface {
	// SetLights turns each light on or off from its bit in the mask
	SetLights(mask Move)

	// Emit lights a single station and plays its tone for the duration,
	// then turns all lights off. Emit blocks until it is done.
	Emit(move Move, duration time.Duration)
}

// InputPin is satisfied by machine.Pin configured as an input
type InputPin interface {
	Get() bool
}

// OutputPin is satisfied by machine.Pin configured as an output
type OutputPin interface {
	Set(value bool)
}

// Buzzer plays a square wave with the given half period for the duration
type Buzzer interface {
	Buzz(duration time.Duration, halfPeriod time.Duration)
}

/*
 * Buttons
 */

// Buttons reads four momentary buttons wired to ground on pulled-up pins,
// so a pressed button reads low
type Buttons struct {
	Red    InputPin
	Green  InputPin
	Blue   InputPin
	Yellow InputPin
}

// CheckButton returns the pressed station, or None. If several buttons are
// held, the first in the order red, green, blue, yellow wins.
func (b Buttons) CheckButton() Move {

	if !b.Red.Get() {
		return Red
	} else if !b.Green.Get() {
		return Green
	} else if !b.Blue.Get() {
		return Blue
	} else if !b.Yellow.Get() {
		return Yellow
	}

	// No button is pressed
	return None
}

/*
 * Board
 */

// Tone half periods per station:
// Red, upper left:     440Hz - 2.272ms - 1.136ms pulse
// Green, upper right:  880Hz - 1.136ms - 0.568ms pulse
// Blue, lower left:    587.33Hz - 1.702ms - 0.851ms pulse
// Yellow, lower right: 784Hz - 1.276ms - 0.638ms pulse
var toneHalfPeriods = map[Move]time.Duration{
	Red:    1136 * time.Microsecond,
	Green:  568 * time.Microsecond,
	Blue:   851 * time.Microsecond,
	Yellow: 638 * time.Microsecond,
}

// ToneHalfPeriod returns the buzzer half period used for a station, or zero
// if m is not a single station
func ToneHalfPeriod(m Move) time.Duration {

	return toneHalfPeriods[m]
}

// Board is the Output made of four LED pins and a buzzer
type Board struct {
	Red    OutputPin
	Green  OutputPin
	Blue   OutputPin
	Yellow OutputPin
	Buzzer Buzzer
}

func (b Board) SetLights(mask Move) {

	b.Red.Set(mask.Has(Red))
	b.Green.Set(mask.Has(Green))
	b.Blue.Set(mask.Has(Blue))
	b.Yellow.Set(mask.Has(Yellow))
}

func (b Board) Emit(move Move, duration time.Duration) {

	// Turn on the station's LED
	b.SetLights(move)

	// Play the sound associated with it
	if halfPeriod, ok := toneHalfPeriods[move]; ok {
		b.Buzzer.Buzz(duration, halfPeriod)
	}

	// Turn off all LEDs
	b.SetLights(Off)
}
