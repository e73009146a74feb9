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

import (
	"fmt"
	"time"
)

/*
 * Default game parameters
 */
const (
	// Number of rounds to successfully remember before you win. 13 is do-able.
	DefaultRoundsToWin int = 4

	// Amount of time to press a button before the game times out
	DefaultEntryTimeLimit time.Duration = 3000 * time.Millisecond

	// Length of each station tone, in playback and as press feedback
	DefaultToneLength time.Duration = 150 * time.Millisecond

	// Gap between played-back moves. 150 works well, 75 gets fast.
	DefaultPlaybackGap time.Duration = 150 * time.Millisecond

	// Pause after a correctly repeated round
	DefaultRoundPause time.Duration = 1000 * time.Millisecond

	// Settle time after a button release, against bounce and double taps
	DefaultDebounceTime time.Duration = 10 * time.Millisecond
)

// Config holds the tunable timings of a game
type Config struct {
	RoundsToWin    int
	EntryTimeLimit time.Duration
	ToneLength     time.Duration
	PlaybackGap    time.Duration
	RoundPause     time.Duration
	DebounceTime   time.Duration
}

// DefaultConfig returns the stock game settings
func DefaultConfig() Config {

	return Config{
		RoundsToWin:    DefaultRoundsToWin,
		EntryTimeLimit: DefaultEntryTimeLimit,
		ToneLength:     DefaultToneLength,
		PlaybackGap:    DefaultPlaybackGap,
		RoundPause:     DefaultRoundPause,
		DebounceTime:   DefaultDebounceTime,
	}
}

// Validate checks that the settings describe a playable game. The gap,
// pause and debounce may be zero; the rest must be positive.
func (c Config) Validate() error {

	if c.RoundsToWin < 1 {
		return fmt.Errorf("game: rounds to win must be at least 1, got %d", c.RoundsToWin)
	}
	if c.EntryTimeLimit <= 0 {
		return fmt.Errorf("game: entry time limit must be positive, got %v", c.EntryTimeLimit)
	}
	if c.ToneLength <= 0 {
		return fmt.Errorf("game: tone length must be positive, got %v", c.ToneLength)
	}
	if c.PlaybackGap < 0 || c.RoundPause < 0 || c.DebounceTime < 0 {
		return fmt.Errorf("game: pauses cannot be negative")
	}
	return nil
}
