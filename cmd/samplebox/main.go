// SPDX-License-Identifier: EPL-2.0

// Command samplebox plays audio files with a console level meter, renders
// them back to back into one WAV file, or prints what they contain.
//
//	samplebox play drums.wav bass.flac
//	samplebox -o mix.wav render intro.ogg loop.aiff
//	samplebox info *.wav
//
// Files are rescaled to the output format before they are queued. Defaults
// come from the environment (SAMPLEBOX_QUEUE_SIZE, SAMPLEBOX_LOWEST_DB,
// SAMPLEBOX_UPDATE_RATE), also read from a .env file, and flags override them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/ik5/samplebox"
	"github.com/ik5/samplebox/internal/log"
	"github.com/ik5/samplebox/meter"
	"github.com/ik5/samplebox/output"
	"github.com/ik5/samplebox/sample"
)

func main() {
	logger := log.GetLogger()

	if err := loadEnv(); err != nil {
		logger.Fatal(err)
	}

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Fatal(err)
	}
}

func load(files []string) ([]*sample.Sample, error) {
	samples := make([]*sample.Sample, 0, len(files))

	for _, f := range files {
		s, err := samplebox.LoadFile(f)
		if err != nil {
			return nil, err
		}

		samples = append(samples, s.Lock())
	}

	return samples, nil
}

func run(cfg *config, logger *logrus.Logger, stdout io.Writer) error {
	samples, err := load(cfg.files)
	if err != nil {
		return err
	}

	if cfg.command == "info" {
		return info(samples, stdout)
	}

	opts := []output.Option{
		output.WithLogger(logger),
		output.WithQueueSize(cfg.queueSize),
	}

	if cfg.command == "render" {
		opts = append(opts, output.WithOpener(nil))
	}

	out, err := output.New(opts...)
	if err != nil {
		return err
	}
	defer out.Close()

	if samples, err = fit(samples, out.Format()); err != nil {
		return err
	}

	if cfg.command == "render" {
		if err := out.StreamToFile(cfg.out, slices.Values(samples)); err != nil {
			return err
		}

		logger.WithField("path", cfg.out).Info("rendered")

		return nil
	}

	return play(cfg, out, samples, stdout)
}

// fit rescales decoded files to the output format. Decoded audio is already
// full scale at its own width, so it must not go through the fixed stream gain.
func fit(samples []*sample.Sample, f output.Format) ([]*sample.Sample, error) {
	out := make([]*sample.Sample, 0, len(samples))

	for _, s := range samples {
		ns, err := samplebox.Convert(s, f.Rate, f.Width, f.Channels)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Source(), err)
		}

		out = append(out, ns.Lock())
	}

	return out, nil
}

func info(samples []*sample.Sample, stdout io.Writer) error {
	for _, s := range samples {
		l, r := s.LevelDBPeak()
		if _, err := fmt.Fprintf(stdout, "%s  peak %.1f/%.1f dB\n", s, l, r); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// play streams the files through the queue in small fragments and meters
// each fragment as it is queued. Interrupting wipes the queue so playback
// stops within one fragment.
func play(cfg *config, out *output.Output, samples []*sample.Sample, stdout io.Writer) error {
	if !out.SupportsStreaming() {
		for _, s := range samples {
			if err := out.PlaySample(s); err != nil {
				return err
			}
		}

		return nil
	}

	lm, err := meter.New(cfg.rms, cfg.lowest)
	if err != nil {
		return err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	for s := range fragments(samples, cfg.fragment) {
		select {
		case <-interrupt:
			out.WipeQueue()
			fmt.Fprintln(stdout)

			return nil
		default:
		}

		if err := out.QueueSample(s); err != nil {
			return err
		}

		fmt.Fprint(stdout, meterLine(lm.Process(s), cfg.lowest))
	}

	fmt.Fprintln(stdout)

	return nil
}
