package wiring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semwire/component"
	"github.com/c360/semwire/diagnostic"
	"github.com/c360/semwire/errors"
)

var passThroughType = describe("PassThrough",
	component.Single("output", capInt),
	component.Provides(capInt),
)

func TestChain_EndToEnd(t *testing.T) {
	r, rec := newTestResolver(t)
	p := newNode(producerType, "p")
	x := newNode(passThroughType, "x")
	s := newNode(intSinkType, "s")

	end, err := r.Chain(p).In(x).In(s).End()
	require.NoError(t, err)
	assert.Same(t, s, end)

	p.Push(42)
	assert.Equal(t, []int{42}, x.received)
	assert.Equal(t, []int{42}, s.received)

	assert.Equal(t, []string{
		"WireIn Producer[p].output ---> PassThrough[x] : test.Int",
		"WireIn PassThrough[x].output ---> IntSink[s] : test.Int",
	}, rec.Messages())
}

func TestChain_ToDoesNotAdvance(t *testing.T) {
	fan := describe("Fanout", component.Many("fanout", capInt), component.Provides(capInt))
	r, _ := newTestResolver(t)
	f := newNode(fan, "")
	a, b := newNode(intSinkType, "a"), newNode(intSinkType, "b")

	c := r.Chain(f).To(a).To(b)
	require.NoError(t, c.Err())
	assert.Same(t, f, c.Current())
	assert.Equal(t, 2, slotByName(t, f, "fanout").Len())
}

func TestChain_StopsAtFirstFailure(t *testing.T) {
	r, rec := newTestResolver(t)
	p := newNode(producerType, "p")
	f := newNode(floatType, "f")
	s := newNode(intSinkType, "s")

	end, err := r.Chain(p).In(f).In(s).End()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNoCandidateSlot))
	assert.Same(t, p, end, "chain stays on the element that failed to wire")
	assert.False(t, slotByName(t, p, "output").IsBound())
	assert.Empty(t, rec.Events())
}

func TestDefaultResolver(t *testing.T) {
	diagnostic.Reset()
	t.Cleanup(diagnostic.Reset)

	var messages []string
	diagnostic.OnDiagnostic(func(m string) { messages = append(messages, m) })

	prev := Default()
	SetDefault(NewResolver(WithCatalog(testCatalog())))
	t.Cleanup(func() { SetDefault(prev) })

	p := newNode(producerType, "p")
	x := newNode(passThroughType, "x")
	s := newNode(intSinkType, "s")

	typed, err := In(p, x)
	require.NoError(t, err)
	assert.Same(t, x, typed)
	typed.Push(1)
	assert.Equal(t, []int{1}, x.received)

	got, err := WireTo(x, s)
	require.NoError(t, err)
	assert.Same(t, x, got)

	_, err = WireIn(x, newNode(intSinkType, ""))
	assert.Error(t, err)

	assert.Len(t, messages, 2)
	SetDefault(nil)
	assert.NotNil(t, Default())
}
