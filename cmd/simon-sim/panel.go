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
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/maxgerhardt/simon-says-mp3/game"
)

// Background colours for lit stations
var stationColours = map[game.Move]lipgloss.Color{
	game.Red:    lipgloss.Color("160"),
	game.Green:  lipgloss.Color("34"),
	game.Blue:   lipgloss.Color("27"),
	game.Yellow: lipgloss.Color("220"),
}

const cellWidth = 8

// panel draws the four lights on one terminal line
type panel struct {
	out io.Writer

	styles map[game.Move]lipgloss.Style
	dim    lipgloss.Style

	mu  sync.Mutex
	lit game.Move
}

func newPanel(out io.Writer) *panel {

	// out is the raw mode tty, which termenv cannot detect through the wrapper
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.ANSI256)
	cell := r.NewStyle().Width(cellWidth).Align(lipgloss.Center).MarginRight(1)

	p := &panel{
		out:    out,
		styles: make(map[game.Move]lipgloss.Style, len(game.Stations)),
		dim:    cell.Background(lipgloss.Color("238")).Faint(true),
	}
	for _, st := range game.Stations {
		p.styles[st] = cell.Bold(true).Foreground(lipgloss.Color("0")).Background(stationColours[st])
	}
	return p
}

// set switches a single light and redraws if anything changed
func (p *panel) set(station game.Move, on bool) {

	p.mu.Lock()
	defer p.mu.Unlock()

	lit := p.lit &^ station
	if on {
		lit |= station
	}
	if lit == p.lit {
		return
	}
	p.lit = lit
	io.WriteString(p.out, p.render())
}

// cell renders one station's light
func (p *panel) cell(station game.Move, on bool) string {

	if on {
		return p.styles[station].Render(station.String())
	}
	return p.dim.Render(station.String())
}

func (p *panel) render() string {

	cells := make([]string, 0, len(game.Stations))
	for _, st := range game.Stations {
		cells = append(cells, p.cell(st, p.lit.Has(st)))
	}
	return "\r" + lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// pin returns a light pin for game.Board
func (p *panel) pin(station game.Move) lightPin {

	return lightPin{panel: p, station: station}
}

// board wires the panel lights and a buzzer into a game.Board
func (p *panel) board(bz game.Buzzer) game.Board {

	return game.Board{
		Red:    p.pin(game.Red),
		Green:  p.pin(game.Green),
		Blue:   p.pin(game.Blue),
		Yellow: p.pin(game.Yellow),
		Buzzer: bz,
	}
}

type lightPin struct {
	panel   *panel
	station game.Move
}

func (l lightPin) Set(value bool) {

	l.panel.set(l.station, value)
}

// crlf turns bare newlines into CR LF, which a raw mode terminal needs
type crlf struct {
	w io.Writer
}

func (c crlf) Write(p []byte) (int, error) {

	if _, err := c.w.Write([]byte(strings.ReplaceAll(string(p), "\n", "\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
