/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     Max Gerhardt
 * @copyright   2026, Max Gerhardt
 * @licence     MIT
 *
 */
package show

import "time"

const (
	// Time each light stays on in the attract loop
	AttractStep time.Duration = 100 * time.Millisecond

	// All lights on, then off, before a game
	StartFlash time.Duration = 1000 * time.Millisecond
	StartPause time.Duration = 250 * time.Millisecond

	// Let the MP3 module start a track before asking for its status
	JingleGrace time.Duration = 200 * time.Millisecond

	// Between status reads while a jingle plays
	StatusPoll time.Duration = 20 * time.Millisecond
)
