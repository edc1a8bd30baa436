// SPDX-License-Identifier: EPL-2.0

package output

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/samplebox/pcm"
	"github.com/ik5/samplebox/utils"
)

// oto allows a single context per process, so every oto device shares it.
var (
	otoMtx    sync.Mutex
	otoCtx    *oto.Context
	otoFormat Format
)

// otoDevice feeds a persistent oto player through a pipe, so Write blocks
// until the player has read the frames.
type otoDevice struct {
	format Format
	ctx    *oto.Context
	player *oto.Player
	pr     *io.PipeReader
	pw     *io.PipeWriter
}

func otoContext(f Format) (*oto.Context, error) {
	otoMtx.Lock()
	defer otoMtx.Unlock()

	if otoCtx != nil {
		if otoFormat != f {
			return nil, fmt.Errorf("%w: oto already runs at %s, requested %s", ErrFormat, otoFormat, f)
		}

		return otoCtx, nil
	}

	// 24 and 32 bit frames are converted to float32 on the way out.
	otoFmt := oto.FormatFloat32LE
	if f.Width == 2 {
		otoFmt = oto.FormatSignedInt16LE
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   f.Rate,
		ChannelCount: f.Channels,
		Format:       otoFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}

	<-ready

	otoCtx = ctx
	otoFormat = f

	return ctx, nil
}

// OpenOto opens the default system output through oto.
func OpenOto(f Format) (Device, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	ctx, err := otoContext(f)
	if err != nil {
		return nil, err
	}

	d := &otoDevice{format: f, ctx: ctx}
	d.pr, d.pw = io.Pipe()
	d.player = ctx.NewPlayer(d.pr)
	d.player.Play()

	return d, nil
}

func (d *otoDevice) Write(frames []byte) error {
	if err := d.ctx.Err(); err != nil {
		return fmt.Errorf("oto context: %w", err)
	}

	if d.format.Width != 2 {
		frames = toFloat32LE(frames, d.format.Width)
	}

	if _, err := d.pw.Write(frames); err != nil {
		return fmt.Errorf("pipe write failed: %w", err)
	}

	return nil
}

// Buffered converts oto's buffered byte count back to device frames.
func (d *otoDevice) Buffered() int {
	n := d.player.BufferedSize()
	if d.format.Width != 2 {
		n = n / 4 * d.format.Width
	}

	return n - n%d.format.FrameSize()
}

func (d *otoDevice) Close() error {
	d.pw.Close()
	err := d.player.Close()
	d.pr.Close()

	if err != nil {
		return fmt.Errorf("closing oto player: %w", err)
	}

	return nil
}

func toFloat32LE(frames []byte, width int) []byte {
	n := pcm.Count(frames, width)
	out := make([]byte, 4*n)

	for i := range n {
		v := float32(utils.PCMToFloat(pcm.Get(frames, width, i), width))
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(v))
	}

	return out
}
