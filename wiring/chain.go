package wiring

import (
	"github.com/c360/semwire/component"
)

// Chain wires components left to right:
//
//	err := r.Chain(adc).In(filter).In(scale).Err()
//
// wires adc to filter, then filter to scale. The first failure stops the chain and
// later calls do nothing.
type Chain struct {
	w       component.Wirer
	current component.Wireable
	err     error
}

// Chain starts a chain at start.
func (r *Resolver) Chain(start component.Wireable) *Chain {
	return NewChain(r, start)
}

// NewChain starts a chain at start on any Wirer, for code that receives its
// resolver through component.Dependencies.
func NewChain(w component.Wirer, start component.Wireable) *Chain {
	if w == nil {
		w = Default()
	}
	return &Chain{w: w, current: start}
}

// In wires the current element to next and advances to next.
func (c *Chain) In(next component.Wireable, slotName ...string) *Chain {
	if c.err != nil {
		return c
	}
	cur, err := c.w.WireIn(c.current, next, slotName...)
	if err != nil {
		c.err = err
		return c
	}
	c.current = cur
	return c
}

// To wires the current element to target without advancing.
func (c *Chain) To(target component.Wireable, slotName ...string) *Chain {
	if c.err != nil {
		return c
	}
	if _, err := c.w.WireTo(c.current, target, slotName...); err != nil {
		c.err = err
	}
	return c
}

// Current returns the element the chain is positioned on.
func (c *Chain) Current() component.Wireable { return c.current }

// Err returns the first failure.
func (c *Chain) Err() error { return c.err }

// End returns the last element and the first failure.
func (c *Chain) End() (component.Wireable, error) { return c.current, c.err }
