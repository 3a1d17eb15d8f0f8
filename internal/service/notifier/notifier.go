package notifier

import (
	"sync"
	"time"

	"widget-currency/internal"
)

const HideDelay = 3000 * time.Millisecond

type Option func(*Notifier)

// WithAfterFunc replaces the scheduler used for hiding the region.
func WithAfterFunc(after func(d time.Duration, f func())) Option {
	return func(n *Notifier) { n.after = after }
}

// Notifier shows transient error messages. Every Notify schedules its own
// hide and no hide is ever cancelled; a hide that fires while a newer message
// is still pending leaves the region visible.
type Notifier struct {
	region internal.ErrorRegion
	after  func(d time.Duration, f func())

	mu  sync.Mutex
	seq uint64
}

func New(region internal.ErrorRegion, opts ...Option) *Notifier {
	n := &Notifier{
		region: region,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	n.seq++
	id := n.seq
	n.region.Show(message)
	n.mu.Unlock()

	n.after(HideDelay, func() { n.hide(id) })
}

func (n *Notifier) hide(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if id != n.seq {
		return
	}
	n.region.Hide()
}
