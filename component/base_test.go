package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semwire/capability"
)

type twoPorts struct {
	*Base
	left, right []float64
}

type pushFunc func(float64)

func (f pushFunc) Push(v float64) { f(v) }

var twoPortsDescriptor = MustDescribe("TwoPorts", Provides("cap.left", "cap.right"))

func TestBase_Provide(t *testing.T) {
	c := &twoPorts{}
	c.Base = NewBase(twoPortsDescriptor, "", c)
	c.Implement("cap.right", pushFunc(func(v float64) { c.right = append(c.right, v) }))

	t.Run("registered handle", func(t *testing.T) {
		h, ok := c.Provide("cap.right")
		require.True(t, ok)
		h.(pusher).Push(2)
		assert.Equal(t, []float64{2}, c.right)
	})

	t.Run("declared capability defaults to owner", func(t *testing.T) {
		h, ok := c.Provide("cap.left")
		require.True(t, ok)
		assert.Same(t, c, h)
	})

	t.Run("undeclared capability", func(t *testing.T) {
		_, ok := c.Provide("cap.other")
		assert.False(t, ok)
	})

	t.Run("implement undeclared panics", func(t *testing.T) {
		assert.Panics(t, func() { c.Implement("cap.other", c) })
	})
}

func TestBase_Info(t *testing.T) {
	c := NewBase(twoPortsDescriptor, "", nil)
	assert.Equal(t, "TwoPorts[No InstanceName]", c.Info().String())

	named := NewBase(twoPortsDescriptor, "main", nil)
	assert.Equal(t, "TwoPorts[main]", named.Info().String())
	assert.Equal(t, []capability.ID{"cap.left", "cap.right"}, named.Capabilities())
}

func TestBase_Slots(t *testing.T) {
	b := newHolder()
	slots := b.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, "output", slots[0].Name())
	assert.Equal(t, "fanout", slots[1].Name())
	assert.Equal(t, Wireable(b), slots[0].Owner())

	// The returned slice is a copy; the slots themselves are shared.
	slots[0] = nil
	assert.NotNil(t, b.Slots()[0])

	_, ok := b.Slot("missing")
	assert.False(t, ok)
	assert.Panics(t, func() { b.MustSlot("missing") })
}
