// SPDX-License-Identifier: EPL-2.0

package output

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ik5/samplebox/internal/log"
	"github.com/ik5/samplebox/pcm"
	"github.com/ik5/samplebox/sample"
)

// queueItem is what travels to the worker. A stop item ends it; a nil
// sample is never sent.
type queueItem struct {
	sample *sample.Sample
	stop   bool
}

// Output plays samples on one device. Immediate playback happens on the
// calling goroutine; queued samples are written by a single worker in
// submission order.
type Output struct {
	format        Format
	queueSize     int
	amplification float64
	open          Opener
	fallback      Player
	log           log.Logger

	dev   Device
	devMu sync.Mutex

	queue  chan queueItem
	done   chan struct{}
	wipeMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc

	mtx    sync.Mutex
	closed bool
	err    error
}

// New opens the device backend and starts the playback worker. When the
// backend cannot be opened the Output still works for single samples through
// the fallback player, and SupportsStreaming reports false.
func New(opts ...Option) (*Output, error) {
	o := &Output{
		format:        Default,
		queueSize:     DefaultQueueSize,
		amplification: DefaultAmplification,
		open:          OpenOto,
		fallback:      NewCommandPlayer(),
		log:           log.GetLogger(),
	}

	for _, opt := range opts {
		opt(o)
	}

	if err := o.format.validate(); err != nil {
		return nil, err
	}

	if o.queueSize < 1 {
		return nil, fmt.Errorf("%w: queue size %d", sample.ErrArgument, o.queueSize)
	}

	o.ctx, o.cancel = context.WithCancel(context.Background())
	o.log = o.log.WithFields(logrus.Fields{
		"rate":     o.format.Rate,
		"width":    o.format.Width,
		"channels": o.format.Channels,
	})

	if o.open != nil {
		dev, err := o.open(o.format)
		if err != nil {
			o.log.WithError(err).Warn("no audio device, streaming playback disabled")
		} else {
			o.dev = dev
		}
	}

	if o.dev != nil {
		o.queue = make(chan queueItem, o.queueSize)
		o.done = make(chan struct{})

		go o.run()

		o.log.WithField("queue", o.queueSize).Debug("playback worker started")
	}

	return o, nil
}

func (o *Output) String() string {
	return fmt.Sprintf("Output %s, streaming %t", o.format, o.SupportsStreaming())
}

// Format is the device format every played sample must have.
func (o *Output) Format() Format {
	return o.format
}

// SupportsStreaming reports whether a device backend is open, which queued
// playback requires.
func (o *Output) SupportsStreaming() bool {
	return o.dev != nil
}

// Err returns the first device error, if any. Once set, every playback call
// returns it.
func (o *Output) Err() error {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	return o.err
}

func (o *Output) setErr(err error) {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	if o.err == nil {
		o.err = err
	}
}

// usable reports the error a playback call should fail with.
func (o *Output) usable() error {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	if o.closed {
		return ErrClosed
	}

	return o.err
}

func (o *Output) checkFormat(s *sample.Sample) error {
	if got := FormatOf(s); got != o.format {
		return fmt.Errorf("%w: output is %s, sample is %s: %w", ErrFormat, o.format, got, sample.ErrMismatch)
	}

	return nil
}

// write sends frames to the device. Worker and caller writes are serialized.
func (o *Output) write(frames []byte, flush bool) error {
	o.devMu.Lock()
	defer o.devMu.Unlock()

	if err := o.dev.Write(frames); err != nil {
		err = fmt.Errorf("device write: %w", err)
		o.setErr(err)
		o.log.WithError(err).Error("audio device failed")

		return err
	}

	if !flush {
		return nil
	}

	pad := o.dev.Buffered()
	pad -= pad % o.format.FrameSize()

	if pad <= 0 {
		return nil
	}

	if err := o.dev.Write(pcm.Silence(pad)); err != nil {
		err = fmt.Errorf("device write: %w", err)
		o.setErr(err)

		return err
	}

	return nil
}

// PlaySample plays s right away and returns once the device has taken it,
// followed by enough silence to flush the device buffer. Without a device
// the fallback player is used.
func (o *Output) PlaySample(s *sample.Sample) error {
	if err := o.usable(); err != nil {
		return err
	}

	if err := o.checkFormat(s); err != nil {
		return err
	}

	if o.dev == nil {
		if o.fallback == nil {
			return ErrUnsupported
		}

		o.log.WithField("sample", s.Source()).Debug("playing through fallback player")

		return o.fallback.Play(o.ctx, s)
	}

	return o.write(s.Frames(), true)
}

// QueueSample hands s to the playback worker and returns without waiting for
// it to play. It blocks while the queue is full. The caller must not change s
// afterwards unless it is locked.
func (o *Output) QueueSample(s *sample.Sample) error {
	if err := o.usable(); err != nil {
		return err
	}

	if o.dev == nil {
		return ErrUnsupported
	}

	if err := o.checkFormat(s); err != nil {
		return err
	}

	select {
	case o.queue <- queueItem{sample: s}:
		return nil
	case <-o.done:
		return ErrClosed
	}
}

// PlaySamples normalizes every sample of seq to the output format and plays
// them back to back without padding. With async they go through the queue
// and PlaySamples returns once the last one is queued.
func (o *Output) PlaySamples(seq iter.Seq[*sample.Sample], async bool) error {
	if err := o.usable(); err != nil {
		return err
	}

	if o.dev == nil {
		return ErrUnsupported
	}

	for s, err := range o.NormalizedSamples(seq, o.amplification) {
		if err != nil {
			return err
		}

		if async {
			err = o.QueueSample(s)
		} else {
			err = o.write(s.Frames(), false)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// NormalizedSamples converts each sample of seq to the output format; see
// Normalized.
func (o *Output) NormalizedSamples(seq iter.Seq[*sample.Sample], amplification float64) iter.Seq2[*sample.Sample, error] {
	return Normalized(seq, o.format, amplification)
}

// WipeQueue drops every queued sample that has not started playing and
// returns how many were dropped. The worker keeps running.
func (o *Output) WipeQueue() int {
	if o.dev == nil {
		return 0
	}

	o.wipeMu.Lock()
	defer o.wipeMu.Unlock()

	n := 0
	stop := false

drain:
	for {
		select {
		case it := <-o.queue:
			if it.stop {
				stop = true
				continue
			}

			n++
		default:
			break drain
		}
	}

	if stop {
		// Close is waiting on the worker; the token must survive the wipe.
		o.queue <- queueItem{stop: true}
	}

	o.log.WithField("dropped", n).Debug("playback queue wiped")

	return n
}

func (o *Output) run() {
	defer close(o.done)

	for it := range o.queue {
		if it.stop {
			o.log.Debug("playback worker stopped")
			return
		}

		if o.Err() != nil {
			continue
		}

		_ = o.write(it.sample.Frames(), false)
	}
}

// dropQueued empties the queue once the worker is gone and counts the samples
// that never reached the device.
func (o *Output) dropQueued() int {
	var n int

	for {
		select {
		case it := <-o.queue:
			if !it.stop {
				n++
			}
		default:
			return n
		}
	}
}

// Close stops the worker after the samples already queued have been written,
// then releases the device. Calling it again is a no-op.
func (o *Output) Close() error {
	o.mtx.Lock()
	if o.closed {
		o.mtx.Unlock()
		return nil
	}
	o.closed = true
	o.mtx.Unlock()

	o.cancel()

	if o.dev == nil {
		return nil
	}

	o.queue <- queueItem{stop: true}
	<-o.done

	if n := o.dropQueued(); n > 0 {
		o.log.WithField("dropped", n).Warn("samples queued behind the stop token were not played")
	}

	o.devMu.Lock()
	defer o.devMu.Unlock()

	if err := o.dev.Close(); err != nil {
		return fmt.Errorf("closing device: %w", err)
	}

	return nil
}
