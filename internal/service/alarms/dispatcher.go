package alarms

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNotRunning is returned when the registry was not started or is already stopped.
var ErrNotRunning = errors.New("alarm registry is not running")

// dispatcher runs closures one at a time, in submission order, on a single goroutine.
// The queue is unbounded so producers such as timer callbacks never block.
type dispatcher struct {
	mu      sync.Mutex
	queue   []func()
	started bool
	stopped bool

	wake chan struct{}
	done chan struct{}
}

func newDispatcher() *dispatcher {
	return &dispatcher{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// start launches the processing goroutine once.
func (d *dispatcher) start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.stopped {
		return
	}

	d.started = true

	go d.run()
}

// run processes the queue until stop is called and the queue is drained.
func (d *dispatcher) run() {
	defer close(d.done)

	for {
		d.mu.Lock()

		if len(d.queue) == 0 {
			stopped := d.stopped
			d.mu.Unlock()

			if stopped {
				return
			}

			<-d.wake

			continue
		}

		fn := d.queue[0]
		d.queue[0] = nil
		d.queue = d.queue[1:]
		d.mu.Unlock()

		fn()
	}
}

// post enqueues fn without waiting. It reports false unless the dispatcher is running.
func (d *dispatcher) post(fn func()) bool {
	d.mu.Lock()

	if !d.started || d.stopped {
		d.mu.Unlock()

		return false
	}

	d.queue = append(d.queue, fn)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}

	return true
}

// call enqueues fn and waits for its result or for ctx to end.
// A cancelled call may still run later; fn must tolerate that.
func (d *dispatcher) call(ctx context.Context, fn func() error) error {
	result := make(chan error, 1)

	if !d.post(func() { result <- fn() }) {
		return ErrNotRunning
	}

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return fmt.Errorf("dispatch: %w", ctx.Err())
	}
}

// stop rejects new work, lets queued work finish and waits for the goroutine to exit.
func (d *dispatcher) stop(ctx context.Context) error {
	d.mu.Lock()
	started := d.started
	d.stopped = true
	d.mu.Unlock()

	if !started {
		return nil
	}

	select {
	case d.wake <- struct{}{}:
	default:
	}

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stop dispatcher: %w", ctx.Err())
	}
}
