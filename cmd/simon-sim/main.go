/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     Max Gerhardt
 * @copyright   2026, Max Gerhardt
 * @licence     MIT
 *
 */

// Command simon-sim plays the memory game on a terminal, running the same
// engine and displays as the firmware with the keyboard standing in for
// the buttons.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxgerhardt/simon-says-mp3/game"
	"github.com/maxgerhardt/simon-says-mp3/show"
)

func main() {

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	rootCmd := &cobra.Command{
		Use:          "simon-sim",
		Short:        "Play the Simon memory game in a terminal",
		Long:         "simon-sim runs the memory game with the keyboard as the four buttons: 1/r red, 2/g green, 3/b blue, 4/y yellow. Press q while the lights cycle to quit.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}

			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	addFlags(rootCmd.Flags())
	return rootCmd
}

// tally counts finished games
type tally struct {
	won  int
	lost int
}

func (t *tally) add(o game.Outcome) {

	if o == game.Won {
		t.won++
	} else {
		t.lost++
	}
}

func (t tally) String() string {

	return fmt.Sprintf("%d won, %d lost", t.won, t.lost)
}

func run(cfg simConfig) error {

	tty, err := openTerminal("/dev/tty")
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer tty.Close()

	log := zerolog.New(zerolog.ConsoleWriter{Out: crlf{os.Stderr}}).
		Level(cfg.LogLevel).
		With().Timestamp().Logger()

	clock := game.SystemClock
	keys := newKeypad(clock, cfg.Hold)
	go tty.run(keys, func() {
		// Raw mode swallows SIGINT, so leave from here
		tty.Close()
		os.Exit(130)
	})

	rec := newRecorder(clock, cfg.Record != "", log)
	board := newPanel(tty).board(rec)

	engine, err := game.NewEngine(cfg.Game, keys, board, game.WithLogger(log))
	if err != nil {
		return err
	}

	presenter := &show.Presenter{
		Input:  keys,
		Output: board,
		Player: newJingles(cfg.Jingles, clock, log),
		Clock:  clock,
		Log:    log,
		Quit:   keys.Quit,
	}

	var score tally
	for {
		io.WriteString(tty, "\r\npress a colour to start, q to quit\r\n")
		keys.resetQuit()
		if !presenter.Attract() {
			break
		}

		presenter.Start()
		outcome := engine.Play()
		score.add(outcome)
		describe(tty, engine.Last())
		presenter.Celebrate(outcome)
	}

	io.WriteString(tty, "\r\n"+score.String()+"\r\n")

	if cfg.Record != "" {
		if err := rec.Save(cfg.Record); err != nil {
			return err
		}
		log.Info().Str("file", cfg.Record).Msg("buzzer recording saved")
	}
	return nil
}

// describe prints how a game ended
func describe(w io.Writer, r game.Result) {

	if r.Outcome == game.Won {
		fmt.Fprintf(w, "\r\nYou won! %d rounds: %v\r\n", r.Round, []game.Move(r.Sequence))
		return
	}

	fmt.Fprintf(w, "\r\nYou lost in round %d, move %d: %v", r.Round, r.Position+1, r.Err)
	if r.Pressed != game.None {
		fmt.Fprintf(w, " (pressed %v, wanted %v)", r.Pressed, r.Expected)
	}
	io.WriteString(w, "\r\n")
}
