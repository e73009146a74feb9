/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     Max Gerhardt
 * @copyright   2026, Max Gerhardt
 * @licence     MIT
 *
 */

// Package show has the light and sound displays played around a game: the
// attract loop while nobody is playing, the start flash, and the winner and
// loser celebrations with their MP3 jingles.
package show

import (
	"github.com/rs/zerolog"

	"github.com/maxgerhardt/simon-says-mp3/game"
	"github.com/maxgerhardt/simon-says-mp3/jq6500"
)

// Jingle track numbers on the MP3 module
const (
	LoserTrack  uint16 = 1
	WinnerTrack uint16 = 2
)

// Player is the MP3 module. *jq6500.JQ6500 satisfies it.
type Player interface {
	PlayFileByIndex(index uint16) error
	Status() (jq6500.Status, error)
}

// Presenter runs the displays on the same lights and buttons as the game
type Presenter struct {
	Input  game.Input
	Output game.Output
	Player Player
	Clock  game.Clock
	Log    zerolog.Logger

	// Quit is checked during the attract loop. Leave nil on the device,
	// where the loop only ends with a button press.
	Quit func() bool
}

// Attract cycles the lights until a button is pressed, and returns true.
// It returns false if Quit reports true first.
func (p *Presenter) Attract() bool {

	for {
		for _, light := range []game.Move{game.Red, game.Blue, game.Green, game.Yellow} {
			p.Output.SetLights(light)
			p.Clock.Sleep(AttractStep)

			if p.Input.CheckButton() != game.None {
				return true
			}

			if p.Quit != nil && p.Quit() {
				p.Output.SetLights(game.Off)
				return false
			}
		}
	}
}

// Start flashes every light to show a game is about to begin
func (p *Presenter) Start() {

	p.Output.SetLights(game.All)
	p.Clock.Sleep(StartFlash)
	p.Output.SetLights(game.Off)
	p.Clock.Sleep(StartPause)
}

// Winner alternates the diagonal pairs with the winner jingle
func (p *Presenter) Winner() {

	for i := 0; i < 2; i++ {
		p.Output.SetLights(game.Green | game.Blue)
		p.jingle(WinnerTrack, "winner")
		p.Output.SetLights(game.Red | game.Yellow)
		p.jingle(WinnerTrack, "winner")
	}
}

// Loser alternates the top and bottom pairs with the loser jingle
func (p *Presenter) Loser() {

	p.Output.SetLights(game.Red | game.Green)
	p.jingle(LoserTrack, "loser")
	p.Output.SetLights(game.Blue | game.Yellow)
	p.jingle(LoserTrack, "loser")
	p.Output.SetLights(game.Red | game.Green)
	p.jingle(LoserTrack, "loser")
	p.Output.SetLights(game.Blue | game.Yellow)
}

// Celebrate runs the display for a game's outcome
func (p *Presenter) Celebrate(outcome game.Outcome) {

	if outcome == game.Won {
		p.Winner()
	} else {
		p.Loser()
	}
}

// jingle plays a track and blocks until the module stops playing it. A
// module that fails to answer ends the wait rather than the game.
func (p *Presenter) jingle(track uint16, name string) {

	p.Log.Debug().Str("sound", name).Uint16("track", track).Msg("triggered sound")
	if err := p.Player.PlayFileByIndex(track); err != nil {
		p.Log.Warn().Err(err).Str("sound", name).Msg("could not play sound")
		return
	}

	// Wait a little so the file starts playing
	p.Clock.Sleep(JingleGrace)

	// Block until the file is done playing
	for {
		status, err := p.Player.Status()
		if err != nil {
			p.Log.Warn().Err(err).Str("sound", name).Msg("lost track of sound")
			return
		}

		p.Log.Trace().Stringer("status", status).Msg("mp3 status")
		if status != jq6500.Playing {
			// Stopped or paused
			break
		}
		p.Clock.Sleep(StatusPoll)
	}

	p.Log.Debug().Str("sound", name).Msg("end of sound")
}
