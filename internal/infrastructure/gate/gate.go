// Package gate provides a bounded admission gate for outbound provider
// calls. It caps system-wide concurrency to protect shared rate-limited
// credentials; callers beyond the bound wait in FIFO order.
package gate

import (
	"context"
	"errors"
)

// ErrClosed is returned by Acquire after the gate has been closed.
var ErrClosed = errors.New("gate closed")

type request struct {
	ready chan struct{}
}

// Gate is a FIFO counting semaphore. The zero value is not usable; create
// one with New. A Gate is initialized at startup and lives for the process.
type Gate struct {
	acquire chan *request
	release chan struct{}
	done    chan struct{}
}

// New creates a gate admitting at most capacity concurrent holders.
// Capacity below 1 is treated as 1.
func New(capacity int) *Gate {
	if capacity < 1 {
		capacity = 1
	}

	g := &Gate{
		acquire: make(chan *request),
		release: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go g.run(capacity)
	return g
}

// run serializes all admission decisions on a single goroutine, which makes
// the FIFO ordering of waiters trivial to maintain.
func (g *Gate) run(capacity int) {
	inFlight := 0
	var waiters []*request

	for {
		select {
		case req := <-g.acquire:
			if inFlight < capacity {
				inFlight++
				close(req.ready)
			} else {
				waiters = append(waiters, req)
			}
		case <-g.release:
			if len(waiters) > 0 {
				// Hand the freed slot to the oldest waiter.
				next := waiters[0]
				waiters = waiters[1:]
				close(next.ready)
			} else {
				inFlight--
			}
		case <-g.done:
			// Waiters observe g.done themselves.
			return
		}
	}
}

// Acquire blocks until a slot is free, the context is cancelled, or the
// gate is closed. On success the caller must call Release exactly once.
func (g *Gate) Acquire(ctx context.Context) error {
	select {
	case <-g.done:
		return ErrClosed
	default:
	}

	req := &request{ready: make(chan struct{})}

	select {
	case g.acquire <- req:
	case <-ctx.Done():
		return ctx.Err()
	case <-g.done:
		return ErrClosed
	}

	select {
	case <-req.ready:
		return nil
	case <-ctx.Done():
		// The slot may still be granted after cancellation; give it back
		// so the gate's accounting stays correct.
		go func() {
			select {
			case <-req.ready:
				select {
				case g.release <- struct{}{}:
				case <-g.done:
				}
			case <-g.done:
			}
		}()
		return ctx.Err()
	case <-g.done:
		return ErrClosed
	}
}

// Release frees a slot acquired with Acquire.
func (g *Gate) Release() {
	select {
	case g.release <- struct{}{}:
	case <-g.done:
	}
}

// Close shuts the gate down and wakes all waiters with ErrClosed.
// Intended for process shutdown only.
func (g *Gate) Close() {
	close(g.done)
}
