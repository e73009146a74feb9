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

// Sequence is the ordered list of moves the player has to repeat. It only
// ever grows during a game.
type Sequence []Move

// session is the state of a single game. A new one is made at the start of
// every Play() and dropped when it returns.
type session struct {
	moves        Sequence
	roundsToWin  int
	entryTimeout time.Duration
}

func newSession(roundsToWin int, entryTimeout time.Duration) *session {

	return &session{
		moves:        make(Sequence, 0, roundsToWin),
		roundsToWin:  roundsToWin,
		entryTimeout: entryTimeout,
	}
}

// grow adds a move to the end of the sequence and starts the next round
func (s *session) grow(m Move) {

	s.moves = append(s.moves, m)
}

// round is the number of moves added so far, which is also the number of
// the round in play
func (s *session) round() int {

	return len(s.moves)
}

// complete reports whether the player has reached the winning round
func (s *session) complete() bool {

	return s.round() >= s.roundsToWin
}

// sequence returns a copy of the moves so far
func (s *session) sequence() Sequence {

	c := make(Sequence, len(s.moves))
	copy(c, s.moves)
	return c
}
