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
	"machine"

	"github.com/maxgerhardt/simon-says-mp3/jq6500"
)

/*
 * CONSTANTS
 */
const (
	// GPIO pins: LEDs
	PIN_LED_RED    machine.Pin = machine.GP2
	PIN_LED_GREEN  machine.Pin = machine.GP3
	PIN_LED_BLUE   machine.Pin = machine.GP4
	PIN_LED_YELLOW machine.Pin = machine.GP5

	// GPIO pins: buttons, wired to GND
	PIN_BUTTON_RED    machine.Pin = machine.GP6
	PIN_BUTTON_GREEN  machine.Pin = machine.GP7
	PIN_BUTTON_BLUE   machine.Pin = machine.GP8
	PIN_BUTTON_YELLOW machine.Pin = machine.GP9

	// GPIO pins: the two sides of the piezo
	PIN_BUZZER_1 machine.Pin = machine.GP16
	PIN_BUZZER_2 machine.Pin = machine.GP17

	// UART0 to the JQ6500: Pico TX to module RX via a 1k resistor
	PIN_MP3_TX machine.Pin = machine.GP0
	PIN_MP3_RX machine.Pin = machine.GP1

	// MP3 module settings, volume 0-30
	MP3_VOLUME uint8         = 20
	MP3_SOURCE jq6500.Source = jq6500.SourceBuiltin

	// Pico LED blink period when setup fails
	FAIL_BLINK_MS int64 = 100
)
