//go:build tinygo

/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @version     0.1.0
 * @authors     Max Gerhardt
 * @copyright   2026, Max Gerhardt
 * @licence     MIT
 *
 */
package main

import (
	"machine"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxgerhardt/simon-says-mp3/buzzer"
	"github.com/maxgerhardt/simon-says-mp3/game"
	"github.com/maxgerhardt/simon-says-mp3/jq6500"
	"github.com/maxgerhardt/simon-says-mp3/show"
)

func main() {

	// Set up the hardware or fail
	if !setup() {
		failLoop()
	}

	// Play the game
	for {
		// Blink the lights while waiting for a button press
		presenter.Attract()

		// Indicate the start of game play
		presenter.Start()

		// Play the memory game and show the result
		presenter.Celebrate(engine.Play())
	}
}

/*
 *  Initialisation Functions
 */
func setup() bool {

	// Log to the USB serial console
	log = zerolog.New(machine.Serial).With().Str("app", "simon").Logger()

	// Set up the buttons: each one shorts its pin to GND
	for _, pin := range []machine.Pin{PIN_BUTTON_RED, PIN_BUTTON_GREEN, PIN_BUTTON_BLUE, PIN_BUTTON_YELLOW} {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	// Set up the LEDs
	for _, pin := range []machine.Pin{PIN_LED_RED, PIN_LED_GREEN, PIN_LED_BLUE, PIN_LED_YELLOW} {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
	}

	// Set up the buzzer
	PIN_BUZZER_1.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_BUZZER_2.Configure(machine.PinConfig{Mode: machine.PinOutput})

	buttons := game.Buttons{
		Red:    PIN_BUTTON_RED,
		Green:  PIN_BUTTON_GREEN,
		Blue:   PIN_BUTTON_BLUE,
		Yellow: PIN_BUTTON_YELLOW,
	}

	board := game.Board{
		Red:    PIN_LED_RED,
		Green:  PIN_LED_GREEN,
		Blue:   PIN_LED_BLUE,
		Yellow: PIN_LED_YELLOW,
		Buzzer: buzzer.New(PIN_BUZZER_1, PIN_BUZZER_2),
	}
	board.SetLights(game.Off)

	// Set up the MP3 module
	uart := machine.UART0
	err := uart.Configure(machine.UARTConfig{BaudRate: jq6500.JQ6500_BAUD_RATE, TX: PIN_MP3_TX, RX: PIN_MP3_RX})
	if err != nil {
		// Couldn't configure the UART
		return false
	}

	mp3 = jq6500.New(uart)
	if !setupMP3() {
		return false
	}

	// Set up the game
	engine, err = game.NewEngine(game.DefaultConfig(), buttons, board, game.WithLogger(log))
	if err != nil {
		log.Error().Err(err).Msg("bad game settings")
		return false
	}

	presenter = &show.Presenter{
		Input:  buttons,
		Output: board,
		Player: &mp3,
		Clock:  game.SystemClock,
		Log:    log,
	}

	return true
}

func setupMP3() bool {

	if err := mp3.Reset(); err != nil {
		log.Error().Err(err).Msg("mp3 module did not reset")
		return false
	}

	if err := mp3.SetVolume(MP3_VOLUME); err != nil {
		log.Error().Err(err).Send()
		return false
	}

	// Read the level back as a check that the module is listening
	if volume, err := mp3.Volume(); err != nil {
		log.Warn().Err(err).Msg("could not read volume")
	} else {
		log.Info().Uint8("volume", volume).Msg("mp3 volume set")
	}

	// Don't loop tracks: each jingle plays once
	if err := mp3.SetLoopMode(jq6500.LoopNone); err != nil {
		log.Error().Err(err).Send()
		return false
	}

	// Report what the module holds. A module that can't count its
	// files can still play them, so this is not fatal.
	for _, source := range []jq6500.Source{jq6500.SourceBuiltin, jq6500.SourceSDCard} {
		count, err := mp3.CountFiles(source)
		if err != nil {
			log.Warn().Err(err).Msg("could not count files")
			continue
		}
		log.Info().Stringer("source", source).Int("files", count).Msg("mp3 files")
	}

	if err := mp3.SetSource(MP3_SOURCE); err != nil {
		log.Error().Err(err).Send()
		return false
	}
	return true
}

/*
 *  Misc Functions
 */
func failLoop() {

	// Signal hardware failure on the Pico LED
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.Low()
		time.Sleep(time.Millisecond * time.Duration(FAIL_BLINK_MS))
		led.High()
		time.Sleep(time.Millisecond * time.Duration(FAIL_BLINK_MS))
	}
}
