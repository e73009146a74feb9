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
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/maxgerhardt/simon-says-mp3/game"
)

// Config keys, shared by flags, SIMON_* variables and the config file
const (
	keyRounds   = "rounds"
	keyTimeout  = "entry-timeout"
	keyTone     = "tone"
	keyGap      = "gap"
	keyPause    = "pause"
	keyDebounce = "debounce"
	keyHold     = "hold"
	keyJingles  = "jingles"
	keyRecord   = "record"
	keyLogLevel = "log-level"
	keyConfig   = "config"
)

// simConfig is everything the simulator needs to start
type simConfig struct {
	Game     game.Config
	Hold     time.Duration
	Jingles  string
	Record   string
	LogLevel zerolog.Level
}

func addFlags(flags *pflag.FlagSet) {

	d := game.DefaultConfig()
	flags.Int(keyRounds, d.RoundsToWin, "rounds to remember to win the game")
	flags.Duration(keyTimeout, d.EntryTimeLimit, "time allowed for each button press")
	flags.Duration(keyTone, d.ToneLength, "length of each station tone")
	flags.Duration(keyGap, d.PlaybackGap, "gap between played-back moves; shorter is harder")
	flags.Duration(keyPause, d.RoundPause, "pause after a correct round")
	flags.Duration(keyDebounce, d.DebounceTime, "settle time after a button release")
	flags.Duration(keyHold, defaultHold, "how long a key press keeps a button held")
	flags.String(keyJingles, "", "directory holding 001.mp3 (loser) and 002.mp3 (winner)")
	flags.String(keyRecord, "", "write the buzzer output to this WAV file")
	flags.String(keyLogLevel, "info", "log level: trace, debug, info, warn, error")
	flags.String(keyConfig, "", "TOML config file")
}

// newViper binds the flags and the environment
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	v.SetEnvPrefix("SIMON")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v, nil
}

// loadConfig reads the optional config file and builds the settings
func loadConfig(v *viper.Viper) (simConfig, error) {

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("toml")
		}
		if err := v.ReadInConfig(); err != nil {
			return simConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	level, err := zerolog.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return simConfig{}, fmt.Errorf("log level: %w", err)
	}

	cfg := simConfig{
		Game: game.Config{
			RoundsToWin:    v.GetInt(keyRounds),
			EntryTimeLimit: v.GetDuration(keyTimeout),
			ToneLength:     v.GetDuration(keyTone),
			PlaybackGap:    v.GetDuration(keyGap),
			RoundPause:     v.GetDuration(keyPause),
			DebounceTime:   v.GetDuration(keyDebounce),
		},
		Hold:     v.GetDuration(keyHold),
		Jingles:  v.GetString(keyJingles),
		Record:   v.GetString(keyRecord),
		LogLevel: level,
	}

	if err := cfg.Game.Validate(); err != nil {
		return simConfig{}, err
	}
	if cfg.Hold <= 0 {
		return simConfig{}, fmt.Errorf("hold must be positive, got %v", cfg.Hold)
	}
	return cfg, nil
}
