// SPDX-License-Identifier: EPL-2.0

package output

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/ik5/samplebox/formats/wav"
	"github.com/ik5/samplebox/sample"
)

// Player plays one whole sample without a streaming device.
type Player interface {
	Play(ctx context.Context, s *sample.Sample) error
}

// DefaultCommands are tried in order by CommandPlayer; the WAV file path is
// appended to the arguments.
var DefaultCommands = [][]string{
	{"aplay", "-q"},
	{"paplay"},
	{"afplay"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// CommandPlayer writes the sample to a temporary WAV file and hands it to the
// first installed external player.
type CommandPlayer struct {
	Commands [][]string
	TempDir  string
}

// NewCommandPlayer returns a CommandPlayer using DefaultCommands.
func NewCommandPlayer() *CommandPlayer {
	return &CommandPlayer{Commands: DefaultCommands}
}

// Command returns the argument list of the first installed player.
func (p *CommandPlayer) Command() ([]string, error) {
	for _, c := range p.Commands {
		if len(c) == 0 {
			continue
		}

		path, err := exec.LookPath(c[0])
		if err != nil {
			continue
		}

		return append([]string{path}, c[1:]...), nil
	}

	return nil, ErrNoPlayer
}

// Play blocks until the external player exits or ctx is done.
func (p *CommandPlayer) Play(ctx context.Context, s *sample.Sample) error {
	args, err := p.Command()
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(p.TempDir, "samplebox-*.wav")
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	name := f.Name()
	defer os.Remove(name)

	if err := wav.Encode(f, s); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	args = append(args, name)

	if out, err := exec.CommandContext(ctx, args[0], args[1:]...).CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", args[0], err, out)
	}

	return nil
}
