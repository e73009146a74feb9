package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-audio/wav"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxgerhardt/simon-says-mp3/game"
	"github.com/maxgerhardt/simon-says-mp3/jq6500"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func newManualClock() *manualClock {

	return &manualClock{now: time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func testConfig(t *testing.T, args ...string) (simConfig, error) {

	t.Helper()

	flags := pflag.NewFlagSet("simon-sim", pflag.ContinueOnError)
	addFlags(flags)
	require.NoError(t, flags.Parse(args))

	v, err := newViper(flags)
	require.NoError(t, err)
	return loadConfig(v)
}

func TestConfigDefaults(t *testing.T) {

	cfg, err := testConfig(t)
	require.NoError(t, err)

	assert.Equal(t, game.DefaultConfig(), cfg.Game)
	assert.Equal(t, defaultHold, cfg.Hold)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.Jingles)
}

func TestConfigFlagsAndEnv(t *testing.T) {

	t.Setenv("SIMON_ENTRY_TIMEOUT", "5s")
	t.Setenv("SIMON_LOG_LEVEL", "debug")

	cfg, err := testConfig(t, "--rounds", "13", "--gap", "75ms")
	require.NoError(t, err)

	assert.Equal(t, 13, cfg.Game.RoundsToWin)
	assert.Equal(t, 75*time.Millisecond, cfg.Game.PlaybackGap)
	assert.Equal(t, 5*time.Second, cfg.Game.EntryTimeLimit)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestConfigFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "simon.toml")
	require.NoError(t, os.WriteFile(path, []byte("rounds = 6\ntone = \"100ms\"\njingles = \"/srv/jingles\"\n"), 0o644))

	cfg, err := testConfig(t, "--config", path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Game.RoundsToWin)
	assert.Equal(t, 100*time.Millisecond, cfg.Game.ToneLength)
	assert.Equal(t, "/srv/jingles", cfg.Jingles)
}

func TestConfigRejectsBadValues(t *testing.T) {

	_, err := testConfig(t, "--rounds", "0")
	assert.Error(t, err)

	_, err = testConfig(t, "--log-level", "loud")
	assert.Error(t, err)

	_, err = testConfig(t, "--hold", "0s")
	assert.Error(t, err)

	_, err = testConfig(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestKeypad(t *testing.T) {

	clock := newManualClock()
	k := newKeypad(clock, 100*time.Millisecond)

	assert.Equal(t, game.None, k.CheckButton())

	k.key('4')
	assert.Equal(t, game.Yellow, k.CheckButton())

	// red beats yellow while both are held
	k.key('r')
	assert.Equal(t, game.Red, k.CheckButton())

	// both released once the hold window has passed
	clock.Sleep(100 * time.Millisecond)
	assert.Equal(t, game.None, k.CheckButton())

	k.key('x')
	assert.Equal(t, game.None, k.CheckButton())
	assert.False(t, k.Quit())

	k.key('q')
	assert.True(t, k.Quit())
}

func TestKeypadQuitIsClearedBeforeAttract(t *testing.T) {

	k := newKeypad(newManualClock(), 100*time.Millisecond)

	// q pressed during a game does not end the next attract loop
	k.key('q')
	k.resetQuit()
	assert.False(t, k.Quit())

	// ctrl-c does
	k.key(keyCtrlC)
	k.resetQuit()
	assert.True(t, k.Quit())
}

func TestPanel(t *testing.T) {

	var out bytes.Buffer
	p := newPanel(&out)
	board := p.board(newRecorder(newManualClock(), false, zerolog.Nop()))

	board.SetLights(game.Red | game.Blue)
	assert.Equal(t, game.Red|game.Blue, p.lit)
	drawn := out.String()
	assert.True(t, strings.HasPrefix(drawn, "\r"))
	assert.Contains(t, drawn, p.cell(game.Red, true))
	assert.Contains(t, drawn, p.cell(game.Green, false))
	assert.Contains(t, drawn, p.cell(game.Blue, true))
	assert.Contains(t, drawn, p.cell(game.Yellow, false))

	// lit and dim cells differ only in style
	assert.NotEqual(t, p.cell(game.Red, true), p.cell(game.Red, false))

	// every cell is the same width plus a one column gap
	for _, st := range game.Stations {
		assert.Equal(t, cellWidth+1, lipgloss.Width(p.cell(st, true)))
		assert.Equal(t, cellWidth+1, lipgloss.Width(p.cell(st, false)))
	}

	// the same mask draws nothing new
	out.Reset()
	board.SetLights(game.Red | game.Blue)
	assert.Empty(t, out.String())

	board.Emit(game.Green, 150*time.Millisecond)
	assert.Equal(t, game.Off, p.lit)
}

func TestCRLF(t *testing.T) {

	var out bytes.Buffer
	n, err := crlf{&out}.Write([]byte("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "a\r\nb\r\n", out.String())
}

func TestRecorder(t *testing.T) {

	clock := newManualClock()
	var logs bytes.Buffer
	rec := newRecorder(clock, true, zerolog.New(&logs).Level(zerolog.DebugLevel))

	rec.Buzz(150*time.Millisecond, game.ToneHalfPeriod(game.Red))
	clock.Sleep(150 * time.Millisecond)
	rec.Buzz(150*time.Millisecond, game.ToneHalfPeriod(game.Green))

	// each tone is logged with its pitch
	assert.Contains(t, logs.String(), `"hz":440.1`)
	assert.Contains(t, logs.String(), `"hz":880.2`)

	// each tone takes its whole duration
	assert.Equal(t, time.Date(2023, 6, 1, 12, 0, 0, 450_000_000, time.UTC), clock.now)

	// two tones of just under 150ms with 150ms of silence between
	assert.InDelta(t, samplesIn(450*time.Millisecond), len(rec.samples), float64(samplesIn(5*time.Millisecond)))
	for _, s := range rec.samples {
		assert.Contains(t, []int{amplitude, -amplitude, 0}, s)
	}

	path := filepath.Join(t.TempDir(), "buzz.wav")
	require.NoError(t, rec.Save(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	assert.Equal(t, uint32(sampleRate), dec.SampleRate)
	assert.Equal(t, uint16(1), dec.NumChans)
}

func TestRecorderOff(t *testing.T) {

	clock := newManualClock()
	rec := newRecorder(clock, false, zerolog.Nop())

	rec.Buzz(time.Second, time.Millisecond)
	assert.Empty(t, rec.samples)
	assert.Equal(t, time.Date(2023, 6, 1, 12, 0, 1, 0, time.UTC), clock.now)
}

func TestSquareWave(t *testing.T) {

	// 10ms at 1ms half periods: four whole cycles
	wave := squareWave(10*time.Millisecond, time.Millisecond)
	half := samplesIn(time.Millisecond)
	require.Len(t, wave, 8*half)
	assert.Equal(t, amplitude, wave[0])
	assert.Equal(t, -amplitude, wave[half])
}

func TestJingles(t *testing.T) {

	t.Run("no directory plays nothing", func(t *testing.T) {
		j := newJingles("", newManualClock(), zerolog.Nop())

		require.NoError(t, j.PlayFileByIndex(2))
		s, err := j.Status()
		require.NoError(t, err)
		assert.Equal(t, jq6500.Stopped, s)
	})

	t.Run("missing track", func(t *testing.T) {
		dir := t.TempDir()
		j := newJingles(dir, newManualClock(), zerolog.Nop())

		err := j.PlayFileByIndex(1)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "track 1"))
		assert.Equal(t, filepath.Join(dir, "001.mp3"), j.trackPath(1))
	})

	t.Run("plays until the decoded track ends", func(t *testing.T) {
		clock := newManualClock()
		j := newJingles("testdata", clock, zerolog.Nop())

		// 40 silent frames of 1152 samples at 44.1kHz
		length, err := trackLength(j.trackPath(1))
		require.NoError(t, err)
		assert.Equal(t, time.Duration(40*1152)*time.Second/44100, length)

		require.NoError(t, j.PlayFileByIndex(1))
		s, err := j.Status()
		require.NoError(t, err)
		assert.Equal(t, jq6500.Playing, s)

		clock.Sleep(length - time.Millisecond)
		s, _ = j.Status()
		assert.Equal(t, jq6500.Playing, s)

		clock.Sleep(time.Millisecond)
		s, _ = j.Status()
		assert.Equal(t, jq6500.Stopped, s)
	})

	t.Run("corrupt track", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "002.mp3"), []byte("this is not an mp3 file"), 0o644))
		j := newJingles(dir, newManualClock(), zerolog.Nop())

		err := j.PlayFileByIndex(2)
		assert.ErrorContains(t, err, "track 2: mp3:")

		s, _ := j.Status()
		assert.Equal(t, jq6500.Stopped, s)
	})
}

func TestPCMDuration(t *testing.T) {

	d, err := pcmDuration(44100*4*2, 44100)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)

	_, err = pcmDuration(-1, 44100)
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {

	var out bytes.Buffer
	describe(&out, game.Result{
		Outcome:  game.Lost,
		Round:    2,
		Position: 1,
		Expected: game.Blue,
		Pressed:  game.Green,
		Err:      game.ErrWrongMove,
	})
	assert.Contains(t, out.String(), "round 2, move 2: wrong button pressed (pressed green, wanted blue)")

	out.Reset()
	describe(&out, game.Result{Outcome: game.Won, Round: 4, Sequence: game.Sequence{game.Red, game.Blue}})
	assert.Contains(t, out.String(), "You won! 4 rounds: [red blue]")

	var score tally
	score.add(game.Won)
	score.add(game.Lost)
	score.add(game.Lost)
	assert.Equal(t, "1 won, 2 lost", score.String())
}
