package wiring

import (
	"testing"

	"github.com/c360/semwire/capability"
	"github.com/c360/semwire/component"
	"github.com/c360/semwire/diagnostic"
)

const (
	capInt     capability.ID = "test.Int"
	capFloat   capability.ID = "test.Float"
	capShape   capability.ID = "test.Shape"
	capCircle  capability.ID = "test.Circle"
	capUnknown capability.ID = "test.Unknown"
)

func testCatalog() *capability.Catalog {
	c := capability.NewCatalog()
	c.MustDefine(capInt)
	c.MustDefine(capFloat)
	c.MustDefine(capShape)
	c.MustDefine(capCircle, capShape)
	return c
}

type intFlow interface {
	Push(int)
}

// node is a generic test component driven by its descriptor.
type node struct {
	*component.Base
	received []int
}

func (n *node) Push(v int) {
	n.received = append(n.received, v)
	for _, s := range n.Slots() {
		if s.IsList() {
			for _, f := range component.All[intFlow](s) {
				f.Push(v)
			}
			continue
		}
		if f, ok := component.Get[intFlow](s); ok {
			f.Push(v)
		}
	}
}

func newNode(d *component.Descriptor, name string) *node {
	n := &node{}
	n.Base = component.NewBase(d, name, n)
	return n
}

func describe(typeName string, opts ...component.DescriptorOption) *component.Descriptor {
	return component.MustDescribe(typeName, opts...)
}

// newTestResolver returns a resolver with its own sink and a recorder attached.
func newTestResolver(t *testing.T, opts ...Option) (*Resolver, *diagnostic.Recorder) {
	t.Helper()
	sink := diagnostic.NewSink()
	rec := &diagnostic.Recorder{}
	sink.Attach(rec)
	base := []Option{WithCatalog(testCatalog()), WithSink(sink)}
	return NewResolver(append(base, opts...)...), rec
}

func slotByName(t *testing.T, c component.Wireable, name string) *component.Slot {
	t.Helper()
	for _, s := range c.Slots() {
		if s.Name() == name {
			return s
		}
	}
	t.Fatalf("slot %s not found on %s", name, c.Info())
	return nil
}
