//go:build tinygo

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
	"github.com/rs/zerolog"

	"github.com/maxgerhardt/simon-says-mp3/game"
	"github.com/maxgerhardt/simon-says-mp3/jq6500"
	"github.com/maxgerhardt/simon-says-mp3/show"
)

/*
 * GLOBALS
 */
// MP3 module instance
var mp3 jq6500.JQ6500

// The game and its displays
var engine *game.Engine
var presenter *show.Presenter

// Console log on the USB serial port
var log zerolog.Logger
