/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     Max Gerhardt
 * @copyright   2026, Max Gerhardt
 * @licence     MIT
 *
 */
package main

import (
	"sync"
	"time"

	"github.com/pkg/term"

	"github.com/maxgerhardt/simon-says-mp3/game"
)

// A terminal only sends key presses, never releases, so a press holds its
// button down for a fixed window
const defaultHold = 120 * time.Millisecond

const keyCtrlC = 0x03

var keyStations = map[byte]game.Move{
	'1': game.Red, 'r': game.Red, 'R': game.Red,
	'2': game.Green, 'g': game.Green, 'G': game.Green,
	'3': game.Blue, 'b': game.Blue, 'B': game.Blue,
	'4': game.Yellow, 'y': game.Yellow, 'Y': game.Yellow,
}

// keypad turns key presses into held buttons. The reader goroutine writes
// and the game loop reads, so the state sits behind a mutex.
type keypad struct {
	clock game.Clock
	hold  time.Duration

	mu        sync.Mutex
	pressedAt map[game.Move]time.Time
	quit      bool
	interrupt bool
}

func newKeypad(clock game.Clock, hold time.Duration) *keypad {

	return &keypad{clock: clock, hold: hold, pressedAt: make(map[game.Move]time.Time)}
}

// key records a single key press
func (k *keypad) key(b byte) {

	k.mu.Lock()
	defer k.mu.Unlock()

	switch b {
	case 'q', 'Q':
		k.quit = true
		return
	case keyCtrlC:
		k.quit = true
		k.interrupt = true
		return
	}

	if m, ok := keyStations[b]; ok {
		k.pressedAt[m] = k.clock.Now()
	}
}

// CheckButton returns the held station, by the same priority as the real
// buttons
func (k *keypad) CheckButton() game.Move {

	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.clock.Now()
	for _, s := range game.Stations {
		if at, ok := k.pressedAt[s]; ok && now.Sub(at) < k.hold {
			return s
		}
	}
	return game.None
}

// Quit reports whether q or ctrl-c has been pressed
func (k *keypad) Quit() bool {

	k.mu.Lock()
	defer k.mu.Unlock()
	return k.quit
}

// resetQuit forgets a q pressed outside the attract loop. ctrl-c stays
// latched.
func (k *keypad) resetQuit() {

	k.mu.Lock()
	defer k.mu.Unlock()
	k.quit = k.interrupt
}

// terminal is the controlling tty in raw mode
type terminal struct {
	tty *term.Term
}

func openTerminal(path string) (*terminal, error) {

	tty, err := term.Open(path, term.RawMode)
	if err != nil {
		return nil, err
	}
	return &terminal{tty: tty}, nil
}

// run feeds key presses to the keypad until the terminal is closed.
// onInterrupt is called for ctrl-c, since raw mode stops the terminal
// sending SIGINT.
func (t *terminal) run(k *keypad, onInterrupt func()) {

	buf := make([]byte, 16)
	for {
		n, err := t.tty.Read(buf)
		if err != nil {
			return
		}
		for _, b := range buf[:n] {
			k.key(b)
			if b == keyCtrlC {
				onInterrupt()
			}
		}
	}
}

func (t *terminal) Write(p []byte) (int, error) {

	return t.tty.Write(p)
}

// Close puts the terminal back the way it was
func (t *terminal) Close() error {

	if err := t.tty.Restore(); err != nil {
		t.tty.Close()
		return err
	}
	return t.tty.Close()
}
