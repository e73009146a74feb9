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
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/go-mp3"
	"github.com/rs/zerolog"

	"github.com/maxgerhardt/simon-says-mp3/game"
	"github.com/maxgerhardt/simon-says-mp3/jq6500"
)

// jingles stands in for the JQ6500 module. Track n is the file NNN.mp3 in
// the jingle directory; it "plays" for as long as the decoded audio lasts.
type jingles struct {
	dir   string
	clock game.Clock
	log   zerolog.Logger

	until time.Time
}

func newJingles(dir string, clock game.Clock, log zerolog.Logger) *jingles {

	return &jingles{dir: dir, clock: clock, log: log}
}

func (j *jingles) trackPath(index uint16) string {

	return filepath.Join(j.dir, fmt.Sprintf("%03d.mp3", index))
}

func (j *jingles) PlayFileByIndex(index uint16) error {

	if j.dir == "" {
		// No jingles: behave like a module with nothing to play
		j.until = time.Time{}
		return nil
	}

	length, err := trackLength(j.trackPath(index))
	if err != nil {
		j.until = time.Time{}
		return fmt.Errorf("track %d: %w", index, err)
	}

	j.log.Debug().Uint16("track", index).Dur("length", length).Msg("playing jingle")
	j.until = j.clock.Now().Add(length)
	return nil
}

func (j *jingles) Status() (jq6500.Status, error) {

	if j.clock.Now().Before(j.until) {
		return jq6500.Playing, nil
	}
	return jq6500.Stopped, nil
}

// trackLength decodes an MP3 file to find how long it plays
func trackLength(path string) (time.Duration, error) {

	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, fmt.Errorf("mp3: %w", err)
	}

	return pcmDuration(dec.Length(), dec.SampleRate())
}

// pcmDuration converts a length in bytes of the decoder's output, which is
// always 16 bit stereo, to a play time
func pcmDuration(length int64, sampleRate int) (time.Duration, error) {

	if length < 0 || sampleRate <= 0 {
		return 0, fmt.Errorf("mp3: unknown length")
	}

	const bytesPerSample = 4
	samples := length / bytesPerSample
	return time.Duration(samples) * time.Second / time.Duration(sampleRate), nil
}
