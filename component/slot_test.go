package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semwire/errors"
)

type pusher interface{ Push(float64) }

type recorder struct {
	*Base
	got []float64
}

func (r *recorder) Push(v float64) { r.got = append(r.got, v) }

var recorderDescriptor = MustDescribe("Recorder", Provides("cap.float"))

func newRecorder(name string) *recorder {
	r := &recorder{}
	r.Base = NewBase(recorderDescriptor, name, r)
	return r
}

var holderDescriptor = MustDescribe("Holder",
	Single("output", "cap.float"),
	Many("fanout", "cap.float"),
)

func newHolder() *Base {
	return NewBase(holderDescriptor, "holder", nil)
}

func TestSlot_SingularBindsOnce(t *testing.T) {
	h := newHolder()
	out := h.MustSlot("output")
	p := newRecorder("p")

	assert.False(t, out.IsBound())
	assert.Equal(t, "unassigned", out.State())
	assert.Nil(t, out.Handle())

	b, err := out.Bind(Binding{Provider: p, Handle: p})
	require.NoError(t, err)
	assert.Equal(t, "output", b.Slot)
	assert.Equal(t, Wireable(h), b.Consumer)
	assert.Equal(t, "cap.float", string(b.Capability))
	assert.True(t, out.IsBound())
	assert.Equal(t, "assigned", out.State())
	assert.Equal(t, 1, out.Len())

	_, err = out.Bind(Binding{Provider: p, Handle: p})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSlotAlreadyWired))

	got, ok := Get[pusher](out)
	require.True(t, ok)
	got.Push(1.5)
	assert.Equal(t, []float64{1.5}, p.got)
}

func TestSlot_ListGrowsInOrder(t *testing.T) {
	h := newHolder()
	fan := h.MustSlot("fanout")
	p1, p2 := newRecorder("p1"), newRecorder("p2")

	assert.False(t, fan.IsBound())
	assert.Nil(t, fan.Bindings())

	b1, err := fan.Bind(Binding{Provider: p1, Handle: p1})
	require.NoError(t, err)
	b2, err := fan.Bind(Binding{Provider: p2, Handle: p2})
	require.NoError(t, err)

	assert.Equal(t, 0, b1.Position)
	assert.Equal(t, 1, b2.Position)
	assert.Equal(t, "assigned(2)", fan.State())

	all := All[pusher](fan)
	require.Len(t, all, 2)
	assert.Same(t, p1, all[0])
	assert.Same(t, p2, all[1])

	_, ok := fan.Binding()
	assert.False(t, ok, "list slot has no single binding")
}

func TestSlot_BindRequiresProvider(t *testing.T) {
	_, err := newHolder().MustSlot("output").Bind(Binding{})
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
}

func TestSlot_TypedHelpersOnNil(t *testing.T) {
	_, ok := Get[pusher](nil)
	assert.False(t, ok)
	assert.Nil(t, All[pusher](nil))
}
