package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Settings are the runtime options after flags and environment are merged.
type Settings struct {
	FPS        int
	Seed       int64
	ConfigPath string
	Difficulty config.DifficultyPreset
	LogFile    string
	LogLevel   log.Level
	Sound      bool
	Volume     float64
}

var (
	v        = viper.New()
	settings Settings
)

// bindSettings makes every flag readable through viper, with INVADERS_
// environment variables filling in flags left unset.
func bindSettings(vp *viper.Viper, flags *pflag.FlagSet) {
	vp.SetEnvPrefix("INVADERS")
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()
	if err := vp.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("cannot bind flags: %v", err))
	}
}

func loadSettings(_ *cobra.Command, _ []string) error {
	s, err := readSettings(v)
	if err != nil {
		return err
	}
	settings = s
	return nil
}

func readSettings(vp *viper.Viper) (Settings, error) {
	s := Settings{
		FPS:        vp.GetInt("fps"),
		Seed:       vp.GetInt64("seed"),
		ConfigPath: vp.GetString("config"),
		LogFile:    vp.GetString("log-file"),
		Sound:      vp.GetBool("sound"),
		Volume:     vp.GetFloat64("volume"),
	}

	if s.FPS <= 0 || s.FPS > 240 {
		return Settings{}, fmt.Errorf("fps must be between 1 and 240, got %d", s.FPS)
	}
	if s.Volume < 0 || s.Volume > 1 {
		return Settings{}, fmt.Errorf("volume must be between 0 and 1, got %g", s.Volume)
	}

	preset, err := config.ParsePreset(vp.GetString("difficulty"))
	if err != nil {
		return Settings{}, err
	}
	s.Difficulty = preset

	level, err := log.ParseLevel(vp.GetString("log-level"))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid log level: %w", err)
	}
	s.LogLevel = level

	return s, nil
}

// runtimeConfig sizes the game to the current terminal.
func (s Settings) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = s.FPS
	cfg.Seed = s.Seed
	cfg.ConfigPath = s.ConfigPath
	cfg.Difficulty = string(s.Difficulty)
	return cfg
}

// tuning loads the game tuning with the preset applied. The game falls
// back to defaults on a bad file, so commands check it up front.
func (s Settings) tuning() (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(s.ConfigPath)
	if err != nil {
		return config.InvadersConfig{}, err
	}
	config.ApplyInvadersPreset(&cfg, s.Difficulty)
	return cfg, nil
}

// session holds what a game run needs besides the game itself.
type session struct {
	logger  *log.Logger
	store   *storage.Store
	sound   *audio.SoundManager
	closers []io.Closer
}

// openSession sets up logging, the scoreboard and sound. Failures of the
// scoreboard or sound are reported and the game runs without them.
func (s Settings) openSession() (*session, error) {
	out := io.Discard
	sess := &session{}
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		sess.closers = append(sess.closers, f)
	}
	sess.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           s.LogLevel,
	})

	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: scoreboard disabled: %v\n", err)
		sess.logger.Warn("scoreboard disabled", "err", err)
	} else {
		sess.store = store
	}

	if s.Sound {
		sm := audio.NewSoundManager(s.Volume)
		if err := sm.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
			sess.logger.Warn("sound disabled", "err", err)
		} else {
			sess.sound = sm
		}
	}

	sess.logger.Info("session started",
		"fps", s.FPS, "seed", s.Seed, "difficulty", s.Difficulty, "sound", sess.sound != nil)
	return sess, nil
}

// options wires the session into the terminal model. Missing parts stay
// nil interfaces.
func (sess *session) options() tui.Options {
	opts := tui.Options{Logger: sess.logger}
	if sess.store != nil {
		opts.Scores = sess.store
	}
	if sess.sound != nil {
		opts.Sound = sess.sound
	}
	return opts
}

// scores returns the scoreboard source, or nil without one.
func (sess *session) scores() tui.ScoreSource {
	if sess.store == nil {
		return nil
	}
	return sess.store
}

func (sess *session) Close() {
	if sess.sound != nil {
		sess.sound.Close()
	}
	if sess.store != nil {
		//nolint:errcheck // in-memory database, nothing to flush
		sess.store.Close()
	}
	for _, c := range sess.closers {
		//nolint:errcheck // best-effort close of the log file
		c.Close()
	}
}
