/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Seednode/wordshadow/games/shadow"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind           string
	civilianReward int
	maxPlayers     int
	minPlayers     int
	playerTimeout  time.Duration
	port           int
	prefix         string
	profile        bool
	rateBurst      int
	rateLimit      float64
	shadowReward   int
	tieBreak       string
	tlsCert        string
	tlsKey         string
	verbose        bool
	version        bool
	wordList       string

	log zerolog.Logger
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.minPlayers < shadow.DefaultMinPlayers {
		return fmt.Errorf("invalid --min-players (must be at least %d): %d", shadow.DefaultMinPlayers, c.minPlayers)
	}
	if c.maxPlayers < c.minPlayers {
		return fmt.Errorf("--max-players (%d) must not be lower than --min-players (%d)", c.maxPlayers, c.minPlayers)
	}
	if c.civilianReward < 0 || c.shadowReward < 0 {
		return errors.New("rewards must not be negative")
	}
	if c.playerTimeout <= 0 {
		return fmt.Errorf("invalid --player-timeout (must be positive): %s", c.playerTimeout)
	}
	if c.rateLimit < 0 || c.rateBurst < 1 {
		return errors.New("--rate-limit must not be negative and --rate-burst must be at least 1")
	}
	if _, err := shadow.ParseTieBreak(c.tieBreak); err != nil {
		return err
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

// gameConfig builds the room policy, reading the word list from disk if one was given.
func (c *Config) gameConfig() (shadow.Config, error) {
	tieBreak, err := shadow.ParseTieBreak(c.tieBreak)
	if err != nil {
		return shadow.Config{}, err
	}

	pairs := shadow.DefaultWordPairs
	if c.wordList != "" {
		pairs, err = shadow.LoadWordPairs(c.wordList)
		if err != nil {
			return shadow.Config{}, err
		}
	}

	return shadow.Config{
		MaxPlayers: c.maxPlayers,
		MinPlayers: c.minPlayers,
		Rewards: shadow.Rewards{
			Civilian: c.civilianReward,
			Shadow:   c.shadowReward,
		},
		TieBreak:  tieBreak,
		WordPairs: pairs,
		Logger:    &c.log,
	}, nil
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WORDSHADOW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "wordshadow",
		Short:         "Hosts rounds of Shadow, the odd-word-out party game, over websockets.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			cfg.log = newLogger(cfg, os.Stderr)
			return ServePage(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: WORDSHADOW_BIND)")
	fs.IntVar(&cfg.civilianReward, "civilian-reward", shadow.DefaultCivilianReward, "points each civilian earns when the shadow is caught (env: WORDSHADOW_CIVILIAN_REWARD)")
	fs.IntVar(&cfg.maxPlayers, "max-players", shadow.DefaultMaxPlayers, "maximum players per room (env: WORDSHADOW_MAX_PLAYERS)")
	fs.IntVar(&cfg.minPlayers, "min-players", shadow.DefaultMinPlayers, "players required to start a round (env: WORDSHADOW_MIN_PLAYERS)")
	fs.DurationVar(&cfg.playerTimeout, "player-timeout", time.Minute, "time without a pong before a connection is dropped (env: WORDSHADOW_PLAYER_TIMEOUT)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: WORDSHADOW_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: WORDSHADOW_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: WORDSHADOW_PROFILE)")
	fs.IntVar(&cfg.rateBurst, "rate-burst", 10, "inbound messages a connection may send in a burst (env: WORDSHADOW_RATE_BURST)")
	fs.Float64Var(&cfg.rateLimit, "rate-limit", 5, "sustained inbound messages per second per connection, 0 to disable (env: WORDSHADOW_RATE_LIMIT)")
	fs.IntVar(&cfg.shadowReward, "shadow-reward", shadow.DefaultShadowReward, "points the shadow earns when not caught (env: WORDSHADOW_SHADOW_REWARD)")
	fs.StringVar(&cfg.tieBreak, "tie-break", string(shadow.TieBreakFirstToReach), "how tied votes are resolved: first-to-reach or first-voted (env: WORDSHADOW_TIE_BREAK)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: WORDSHADOW_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: WORDSHADOW_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: WORDSHADOW_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: WORDSHADOW_VERSION)")
	fs.StringVar(&cfg.wordList, "word-list", "", "json, yaml or toml file of word pairs to use instead of the built-in list (env: WORDSHADOW_WORD_LIST)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("wordshadow v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
