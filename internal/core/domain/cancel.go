package domain

import (
	"context"
	"sync"
	"sync/atomic"
)

// Signal is polled by long-running work to find out whether it should stop.
type Signal interface {
	Canceled() bool
}

// NeverCanceled is a Signal that is never set.
var NeverCanceled Signal = neverCanceled{}

type neverCanceled struct{}

func (neverCanceled) Canceled() bool { return false }

// Canceler is a write-once cancellation latch shared by every unit of work in a scan session.
// Once Cancel has been called, Canceled reports true forever.
type Canceler struct {
	flag atomic.Bool
	once sync.Once
	done chan struct{}
}

var _ Signal = (*Canceler)(nil)

// NewCanceler creates an unset Canceler.
func NewCanceler() *Canceler {
	return &Canceler{done: make(chan struct{})}
}

// Cancel sets the latch. It is safe to call from any goroutine, any number of times.
func (c *Canceler) Cancel() {
	c.once.Do(func() {
		c.flag.Store(true)
		close(c.done)
	})
}

// Canceled reports whether Cancel has been called.
func (c *Canceler) Canceled() bool {
	return c.flag.Load()
}

// Done returns a channel that is closed once the latch is set.
func (c *Canceler) Done() <-chan struct{} {
	return c.done
}

// BindContext sets the latch when ctx is done.
// The returned stop function detaches the binding; it reports whether the binding was still pending.
func (c *Canceler) BindContext(ctx context.Context) (stop func() bool) {
	return context.AfterFunc(ctx, c.Cancel)
}
