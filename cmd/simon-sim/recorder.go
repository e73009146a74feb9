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
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/rs/zerolog"

	"github.com/maxgerhardt/simon-says-mp3/buzzer"
	"github.com/maxgerhardt/simon-says-mp3/game"
)

const (
	sampleRate = 44100
	bitDepth   = 16
	amplitude  = 8000

	// Silences longer than this are cut short in the recording
	maxSilence = 2 * time.Second
)

// recorder stands in for the piezo. It takes as long as the real buzzer
// and, when recording, renders the same square wave into PCM samples.
type recorder struct {
	clock     game.Clock
	log       zerolog.Logger
	recording bool

	samples []int
	lastEnd time.Time
}

func newRecorder(clock game.Clock, recording bool, log zerolog.Logger) *recorder {

	return &recorder{clock: clock, recording: recording, log: log}
}

func (r *recorder) Buzz(duration time.Duration, halfPeriod time.Duration) {

	r.log.Debug().
		Float64("hz", buzzer.Frequency(halfPeriod)).
		Dur("duration", duration).
		Msg("tone")

	if r.recording && halfPeriod > 0 {
		// Keep the quiet time since the last tone
		now := r.clock.Now()
		if !r.lastEnd.IsZero() {
			r.silence(now.Sub(r.lastEnd))
		}
		r.samples = append(r.samples, squareWave(duration, halfPeriod)...)
		r.lastEnd = now.Add(duration)
	}

	r.clock.Sleep(duration)
}

func (r *recorder) silence(d time.Duration) {

	if d <= 0 {
		return
	}
	if d > maxSilence {
		d = maxSilence
	}
	r.samples = append(r.samples, make([]int, samplesIn(d))...)
}

func samplesIn(d time.Duration) int {

	return int(d * sampleRate / time.Second)
}

// squareWave renders whole cycles only, the same as the buzzer driver
func squareWave(duration time.Duration, halfPeriod time.Duration) []int {

	cycles := 0
	for remaining := duration; remaining > halfPeriod*2; remaining -= halfPeriod * 2 {
		cycles++
	}

	half := samplesIn(halfPeriod)
	if half == 0 {
		half = 1
	}

	out := make([]int, 0, cycles*half*2)
	for c := 0; c < cycles; c++ {
		for i := 0; i < half; i++ {
			out = append(out, amplitude)
		}
		for i := 0; i < half; i++ {
			out = append(out, -amplitude)
		}
	}
	return out
}

// Save writes the recording as a mono 16 bit WAV file
func (r *recorder) Save(path string) error {

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("recording: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           r.samples,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("recording: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("recording: %w", err)
	}
	return f.Close()
}
