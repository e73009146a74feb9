/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     Max Gerhardt
 * @copyright   2026, Max Gerhardt
 * @licence     MIT
 *
 */
package jq6500

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

// JQ6500 serial frame markers and commands
const (
	JQ6500_FRAME_START uint8 = 0x7E
	JQ6500_FRAME_END   uint8 = 0xEF

	JQ6500_CMD_PLAY_INDEX    uint8 = 0x03
	JQ6500_CMD_SET_VOLUME    uint8 = 0x06
	JQ6500_CMD_SET_SOURCE    uint8 = 0x09
	JQ6500_CMD_RESET         uint8 = 0x0C
	JQ6500_CMD_SET_LOOP_MODE uint8 = 0x11
	JQ6500_CMD_GET_STATUS    uint8 = 0x42
	JQ6500_CMD_GET_VOLUME    uint8 = 0x43
	JQ6500_CMD_COUNT_SD      uint8 = 0x47
	JQ6500_CMD_COUNT_BUILTIN uint8 = 0x49

	// The module's serial speed
	JQ6500_BAUD_RATE uint32 = 9600

	JQ6500_MAX_VOLUME uint8 = 30
)

// Source selects where tracks are played from
type Source uint8

const (
	SourceSDCard  Source = 1
	SourceBuiltin Source = 4
)

func (s Source) String() string {

	switch s {
	case SourceSDCard:
		return "sd card"
	case SourceBuiltin:
		return "built-in"
	}
	return fmt.Sprintf("source %d", uint8(s))
}

// LoopMode controls what the module plays after a track ends
type LoopMode uint8

const (
	LoopAll     LoopMode = 0
	LoopFolder  LoopMode = 1
	LoopOne     LoopMode = 2
	LoopRAM     LoopMode = 3
	LoopOneStop LoopMode = 4

	// Play the track once and stop
	LoopNone LoopMode = LoopOneStop
)

// Status is the module's playback state
type Status uint8

const (
	Stopped Status = 0
	Playing Status = 1
	Paused  Status = 2
)

func (s Status) String() string {

	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("unknown state %d", uint8(s))
}

var (
	ErrNoResponse  = errors.New("no response from module")
	ErrBadResponse = errors.New("unreadable response from module")
)

// Port is the serial line to the module. machine.UART satisfies it.
type Port interface {
	io.Writer
	ReadByte() (byte, error)
	Buffered() int
}

const (
	// How long to wait for a reply to start
	responseTimeout = 1000 * time.Millisecond
	// A reply is over once the line has been quiet this long
	responseQuiet = 10 * time.Millisecond
	// Poll period while waiting for serial data
	pollPeriod = time.Millisecond
	// The module ignores commands for a while after a reset
	resetSettle = 500 * time.Millisecond
)

type JQ6500 struct {
	// Host serial port
	port Port
	// Blocking delay, time.Sleep on the device
	delay func(time.Duration)
}

func New(port Port) JQ6500 {

	return JQ6500{port: port, delay: time.Sleep}
}

// NewWithDelay is New with a custom blocking delay
func NewWithDelay(port Port, delay func(time.Duration)) JQ6500 {

	return JQ6500{port: port, delay: delay}
}

// Reset restarts the module and waits for it to come back
func (p *JQ6500) Reset() error {

	if err := p.sendCommand(JQ6500_CMD_RESET); err != nil {
		return fmt.Errorf("jq6500: reset: %w", err)
	}
	p.delay(resetSettle)
	return nil
}

// SetVolume sets the output level, 0 to 30. Higher values are clamped.
func (p *JQ6500) SetVolume(volume uint8) error {

	if volume > JQ6500_MAX_VOLUME {
		volume = JQ6500_MAX_VOLUME
	}

	if err := p.sendCommand(JQ6500_CMD_SET_VOLUME, volume); err != nil {
		return fmt.Errorf("jq6500: set volume: %w", err)
	}
	return nil
}

// Volume reads back the output level
func (p *JQ6500) Volume() (uint8, error) {

	v, err := p.query(JQ6500_CMD_GET_VOLUME)
	if err != nil {
		return 0, fmt.Errorf("jq6500: volume: %w", err)
	}
	return uint8(v), nil
}

func (p *JQ6500) SetLoopMode(mode LoopMode) error {

	if err := p.sendCommand(JQ6500_CMD_SET_LOOP_MODE, uint8(mode)); err != nil {
		return fmt.Errorf("jq6500: set loop mode: %w", err)
	}
	return nil
}

func (p *JQ6500) SetSource(source Source) error {

	if err := p.sendCommand(JQ6500_CMD_SET_SOURCE, uint8(source)); err != nil {
		return fmt.Errorf("jq6500: set source: %w", err)
	}
	return nil
}

// CountFiles returns the number of tracks stored on the source
func (p *JQ6500) CountFiles(source Source) (int, error) {

	cmd := JQ6500_CMD_COUNT_BUILTIN
	if source == SourceSDCard {
		cmd = JQ6500_CMD_COUNT_SD
	}

	count, err := p.query(cmd)
	if err != nil {
		return 0, fmt.Errorf("jq6500: count files on %v: %w", source, err)
	}
	return int(count), nil
}

// PlayFileByIndex plays the track with the given index, counting from 1
func (p *JQ6500) PlayFileByIndex(index uint16) error {

	if err := p.sendCommand(JQ6500_CMD_PLAY_INDEX, uint8(index>>8), uint8(index&0xFF)); err != nil {
		return fmt.Errorf("jq6500: play file %d: %w", index, err)
	}
	return nil
}

// Status asks the module whether it is playing
func (p *JQ6500) Status() (Status, error) {

	s, err := p.query(JQ6500_CMD_GET_STATUS)
	if err != nil {
		return Stopped, fmt.Errorf("jq6500: status: %w", err)
	}
	return Status(s), nil
}

/*
 * Serial helpers
 */
func (p *JQ6500) sendCommand(cmd uint8, args ...uint8) error {

	// Frame: start, length, command, arguments, end. The length
	// counts itself, the command and the arguments.
	frame := make([]byte, 0, len(args)+4)
	frame = append(frame, JQ6500_FRAME_START, uint8(len(args)+2), cmd)
	frame = append(frame, args...)
	frame = append(frame, JQ6500_FRAME_END)

	_, err := p.port.Write(frame)
	return err
}

// query sends a command and reads the reply, which the module sends as
// ASCII hex digits
func (p *JQ6500) query(cmd uint8) (uint32, error) {

	// Drop anything left over from earlier commands
	p.drain()

	if err := p.sendCommand(cmd); err != nil {
		return 0, err
	}

	reply, err := p.readResponse()
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseUint(reply, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadResponse, reply)
	}
	return uint32(v), nil
}

func (p *JQ6500) drain() {

	for p.port.Buffered() > 0 {
		if _, err := p.port.ReadByte(); err != nil {
			return
		}
	}
}

func (p *JQ6500) readResponse() (string, error) {

	// Wait for the reply to start
	var waited time.Duration
	for p.port.Buffered() == 0 {
		if waited >= responseTimeout {
			return "", ErrNoResponse
		}
		p.delay(pollPeriod)
		waited += pollPeriod
	}

	// Read until the line goes quiet
	reply := make([]byte, 0, 8)
	var quiet time.Duration
	for quiet < responseQuiet {
		if p.port.Buffered() == 0 {
			p.delay(pollPeriod)
			quiet += pollPeriod
			continue
		}

		b, err := p.port.ReadByte()
		if err != nil {
			return "", err
		}
		quiet = 0

		// Skip line endings and padding
		if b == '\r' || b == '\n' || b == ' ' {
			continue
		}
		reply = append(reply, b)
	}

	if len(reply) == 0 {
		return "", ErrBadResponse
	}
	return string(reply), nil
}
