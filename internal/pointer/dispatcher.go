// Package pointer fans surface-wide pointer events out to subscribers.
//
// The terminal host sees every mouse event in one place, so it plays the part
// of the "whole surface" listener: motion and release events go through a
// Dispatcher, and controllers subscribe only while a drag is running.
package pointer

import (
	"github.com/Gaurav-Gosain/rubberband/internal/selection"
)

// Dispatcher implements selection.PointerSource. It is not safe for
// concurrent use; the Bubble Tea event loop is its only caller.
type Dispatcher struct {
	subs   []*subscription
	nextID uint64
}

type subscription struct {
	d       *Dispatcher
	id      uint64
	handler selection.PointerHandler
	active  bool
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers h until the returned subscription is cancelled.
func (d *Dispatcher) Subscribe(h selection.PointerHandler) selection.Subscription {
	d.nextID++
	s := &subscription{d: d, id: d.nextID, handler: h, active: true}
	d.subs = append(d.subs, s)
	return s
}

// Unsubscribe removes the subscription. Calling it twice is harmless.
func (s *subscription) Unsubscribe() {
	if !s.active {
		return
	}
	s.active = false
	s.d.remove(s.id)
}

func (d *Dispatcher) remove(id uint64) {
	for i, s := range d.subs {
		if s.id == id {
			d.subs = append(d.subs[:i], d.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of live subscriptions.
func (d *Dispatcher) Len() int {
	return len(d.subs)
}

// Move delivers a pointer-move to every subscriber in subscription order.
func (d *Dispatcher) Move(ev selection.PointerEvent) {
	for _, s := range d.snapshot() {
		if s.active {
			s.handler.PointerMove(ev)
		}
	}
}

// Up delivers a pointer-up to every subscriber in subscription order.
// Handlers commonly unsubscribe from inside PointerUp.
func (d *Dispatcher) Up(ev selection.PointerEvent) {
	for _, s := range d.snapshot() {
		if s.active {
			s.handler.PointerUp(ev)
		}
	}
}

func (d *Dispatcher) snapshot() []*subscription {
	if len(d.subs) == 0 {
		return nil
	}
	out := make([]*subscription, len(d.subs))
	copy(out, d.subs)
	return out
}
