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

import "strings"

// Move identifies one of the four stations. The values are single bits so
// that several moves can be OR'ed together into a light mask.
type Move uint8

/*
 * CONSTANTS
 */
const (
	None   Move = 0
	Red    Move = 1 << 0
	Green  Move = 1 << 1
	Blue   Move = 1 << 2
	Yellow Move = 1 << 3

	// Light masks
	Off Move = None
	All Move = Red | Green | Blue | Yellow
)

// Stations lists the four moves in button scan priority order
var Stations = [4]Move{Red, Green, Blue, Yellow}

// Valid reports whether m is exactly one station
func (m Move) Valid() bool {

	return m == Red || m == Green || m == Blue || m == Yellow
}

// Has reports whether the light mask m includes station s
func (m Move) Has(s Move) bool {

	return m&s != 0
}

func (m Move) String() string {

	switch m {
	case None:
		return "none"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	}

	// A mask of several lights
	parts := make([]string, 0, 4)
	for _, s := range Stations {
		if m.Has(s) {
			parts = append(parts, s.String())
		}
	}
	if len(parts) == 0 {
		return "invalid"
	}
	return strings.Join(parts, "|")
}

// moveFromIndex converts a draw in the range 0-3 to a station
func moveFromIndex(i int) Move {

	return Stations[i&3]
}
