// Package config reads runtime settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/04pril/go-samegame/internal/samegame"
)

type Config struct {
	Width    int
	Height   int
	Colors   int
	Bonus    int
	Seed     int64
	LogLevel zerolog.Level
}

// Options converts the config into engine options.
func (c Config) Options() samegame.Options {
	bonus := c.Bonus
	if bonus == 0 {
		bonus = -1
	}
	return samegame.Options{
		Width:  c.Width,
		Height: c.Height,
		Colors: c.Colors,
		Bonus:  bonus,
		Seed:   c.Seed,
	}
}

// Load reads .env files (".env" when none are given) into the process
// environment without overriding existing variables, then parses the
// settings. Missing files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var (
		c   Config
		err error
	)
	if c.Width, err = intEnv("SAMEGAME_WIDTH", samegame.DefaultWidth); err != nil {
		return Config{}, err
	}
	if c.Height, err = intEnv("SAMEGAME_HEIGHT", samegame.DefaultHeight); err != nil {
		return Config{}, err
	}
	if c.Colors, err = intEnv("SAMEGAME_COLORS", samegame.DefaultColors); err != nil {
		return Config{}, err
	}
	if c.Bonus, err = intEnv("SAMEGAME_BONUS", samegame.DefaultBonus); err != nil {
		return Config{}, err
	}
	seed, err := intEnv("SAMEGAME_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	c.Seed = int64(seed)

	c.LogLevel = zerolog.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		c.LogLevel = lvl
	}

	c.Width = clamp(c.Width, 2, 60)
	c.Height = clamp(c.Height, 2, 32)
	c.Colors = clamp(c.Colors, 2, 4)
	if c.Bonus < 0 {
		c.Bonus = 0
	}
	return c, nil
}

func intEnv(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
