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
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// Outcome is the result of a game
type Outcome bool

const (
	Lost Outcome = false
	Won  Outcome = true
)

func (o Outcome) String() string {

	if o == Won {
		return "won"
	}
	return "lost"
}

// Reasons for losing a game
var (
	ErrEntryTimeout = errors.New("no button pressed in time")
	ErrWrongMove    = errors.New("wrong button pressed")
)

// State is the position of the engine in a game
type State int

const (
	Idle State = iota
	RoundSetup
	Playback
	AwaitingInput
	GameWon
	GameLost
)

func (s State) String() string {

	switch s {
	case Idle:
		return "idle"
	case RoundSetup:
		return "round setup"
	case Playback:
		return "playback"
	case AwaitingInput:
		return "awaiting input"
	case GameWon:
		return "won"
	case GameLost:
		return "lost"
	}
	return "unknown"
}

// Result describes how the last game ended. Round and Position locate the
// failed entry when the game was lost; Position is zero-based.
type Result struct {
	Outcome  Outcome
	Round    int
	Position int
	Expected Move
	Pressed  Move
	Err      error
	Sequence Sequence
}

// Picker draws the random moves
type Picker interface {
	Intn(n int) int
}

// Seeder makes a new Picker from a seed
type Seeder func(seed int64) Picker

// MathRandSeeder seeds math/rand. Good enough for a toy, not for secrets.
func MathRandSeeder(seed int64) Picker {

	return rand.New(rand.NewSource(seed))
}

// Engine plays the memory game. It is not safe for concurrent use: a game
// is a single sequential run from Play() to its outcome.
type Engine struct {
	config Config
	input  Input
	output Output
	clock  Clock
	seeder Seeder
	log    zerolog.Logger

	state State
	last  Result
}

// Option changes an Engine's defaults
type Option func(*Engine)

// WithClock sets the time source
func WithClock(c Clock) Option {

	return func(e *Engine) { e.clock = c }
}

// WithSeeder sets how the random source is made at the start of each game
func WithSeeder(s Seeder) Option {

	return func(e *Engine) { e.seeder = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {

	return func(e *Engine) { e.log = l }
}

// NewEngine checks the config and returns a ready engine
func NewEngine(config Config, input Input, output Output, opts ...Option) (*Engine, error) {

	if err := config.Validate(); err != nil {
		return nil, err
	}
	if input == nil || output == nil {
		return nil, errors.New("game: input and output are required")
	}

	e := &Engine{
		config: config,
		input:  input,
		output: output,
		clock:  SystemClock,
		seeder: MathRandSeeder,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// State returns where the engine is in the current or last game
func (e *Engine) State() State {

	return e.state
}

// Last returns the details of the last finished game
func (e *Engine) Last() Result {

	return e.last
}

func (e *Engine) setState(s State) {

	e.state = s
	e.log.Trace().Stringer("state", s).Msg("game state")
}

// Play runs one complete game and reports whether the player won
func (e *Engine) Play() Outcome {

	// Seed the random generator from the clock so games differ
	picker := e.seeder(e.clock.Now().UnixNano())

	// Reset the game to the beginning
	sess := newSession(e.config.RoundsToWin, e.config.EntryTimeLimit)
	e.setState(RoundSetup)

	for !sess.complete() {
		// Add a button to the current moves, then play them back
		e.addToMoves(sess, picker)
		e.playMoves(sess)

		// Then require the player to repeat the sequence
		e.setState(AwaitingInput)
		for position, expected := range sess.moves {
			choice := e.WaitForButton(sess.entryTimeout)

			if choice == None {
				// If the wait timed out, the player loses
				return e.lose(sess, position, expected, choice, ErrEntryTimeout)
			}

			if choice != expected {
				// If the choice is incorrect, the player loses
				return e.lose(sess, position, expected, choice, ErrWrongMove)
			}
		}

		// Player was correct, pause before playing the moves again
		e.log.Debug().Int("round", sess.round()).Msg("round complete")
		e.setState(RoundSetup)
		e.clock.Sleep(e.config.RoundPause)
	}

	// Player made it through all the rounds to win
	e.setState(GameWon)
	e.last = Result{
		Outcome:  Won,
		Round:    sess.round(),
		Sequence: sess.sequence(),
	}
	e.log.Info().Int("rounds", sess.round()).Msg("game won")
	return Won
}

func (e *Engine) lose(sess *session, position int, expected Move, pressed Move, err error) Outcome {

	e.setState(GameLost)
	e.last = Result{
		Outcome:  Lost,
		Round:    sess.round(),
		Position: position,
		Expected: expected,
		Pressed:  pressed,
		Err:      err,
		Sequence: sess.sequence(),
	}
	e.log.Info().
		Err(err).
		Int("round", sess.round()).
		Int("position", position).
		Stringer("expected", expected).
		Stringer("pressed", pressed).
		Msg("game lost")
	return Lost
}

// addToMoves adds a new random station to the sequence
func (e *Engine) addToMoves(sess *session, picker Picker) {

	// Min included, max excluded
	move := moveFromIndex(picker.Intn(len(Stations)))
	sess.grow(move)
	e.log.Debug().Int("round", sess.round()).Stringer("move", move).Msg("move added")
}

// playMoves plays back the current sequence
func (e *Engine) playMoves(sess *session) {

	e.setState(Playback)
	for _, move := range sess.moves {
		e.output.Emit(move, e.config.ToneLength)

		// Wait some amount of time between button playback.
		// Shorten this to make the game harder.
		e.clock.Sleep(e.config.PlaybackGap)
	}
}

// WaitForButton polls the buttons until one is pressed or the timeout
// passes. A press is echoed on the output and only returned once the button
// has been released. Returns None if the wait timed out.
//
// The release wait has no limit of its own: a button that stays held
// blocks here for as long as it is held.
func (e *Engine) WaitForButton(timeout time.Duration) Move {

	// Remember the time we started this loop
	start := e.clock.Now()

	for e.clock.Now().Sub(start) < timeout {
		button := e.input.CheckButton()

		if button != None {
			// Play the button the user just pressed
			e.output.Emit(button, e.config.ToneLength)

			// Now wait for the user to release the button
			for e.input.CheckButton() != None {
			}

			// This helps with debouncing and accidental double taps
			e.clock.Sleep(e.config.DebounceTime)
			return button
		}
	}

	// If we get here, we've timed out
	return None
}
