// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ik5/samplebox/meter"
)

var errUsage = errors.New("usage: samplebox [flags] play|render|info file...")

type config struct {
	command   string
	files     []string
	out       string
	queueSize int
	lowest    float64
	fragment  float64
	rms       bool
}

// loadEnv reads .env from the working directory when there is one.
func loadEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	return nil
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	return f, nil
}

// parseConfig takes defaults from the environment and lets flags override
// them.
func parseConfig(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	var err error

	if cfg.queueSize, err = envInt("SAMPLEBOX_QUEUE_SIZE", 4); err != nil {
		return nil, err
	}

	if cfg.lowest, err = envFloat("SAMPLEBOX_LOWEST_DB", meter.Floor); err != nil {
		return nil, err
	}

	if cfg.fragment, err = envFloat("SAMPLEBOX_UPDATE_RATE", 0.1); err != nil {
		return nil, err
	}

	fl := flag.NewFlagSet("samplebox", flag.ContinueOnError)
	fl.SetOutput(stderr)
	fl.StringVar(&cfg.out, "o", "out.wav", "output file for render")
	fl.IntVar(&cfg.queueSize, "queue", cfg.queueSize, "playback queue size in fragments")
	fl.Float64Var(&cfg.lowest, "lowest", cfg.lowest, "lowest meter level in dB")
	fl.Float64Var(&cfg.fragment, "fragment", cfg.fragment, "meter update interval in seconds")
	fl.BoolVar(&cfg.rms, "rms", false, "meter RMS instead of peak levels")

	if err := fl.Parse(args); err != nil {
		return nil, err
	}

	if fl.NArg() < 2 {
		return nil, errUsage
	}

	cfg.command = fl.Arg(0)
	cfg.files = fl.Args()[1:]

	switch cfg.command {
	case "play", "render", "info":
	default:
		return nil, fmt.Errorf("%w: unknown command %q", errUsage, cfg.command)
	}

	if cfg.fragment <= 0 {
		return nil, fmt.Errorf("fragment must be positive, got %g", cfg.fragment)
	}

	return cfg, nil
}
