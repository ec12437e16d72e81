package flowgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semwire/capability"
	"github.com/c360/semwire/component"
	"github.com/c360/semwire/errors"
)

var (
	sourceType = component.MustDescribe("Source", component.Single("output", "test.Int"))
	middleType = component.MustDescribe("Middle",
		component.Single("output", "test.Int"),
		component.Many("taps", "test.Int"),
		component.Provides("test.Int"),
	)
	sinkType = component.MustDescribe("Sink", component.Provides("test.Int"))
)

func bind(t *testing.T, g *FlowGraph, consumer component.Wireable, slot string, provider component.Wireable) {
	t.Helper()
	for _, s := range consumer.Slots() {
		if s.Name() == slot {
			b, err := s.Bind(component.Binding{Provider: provider, Capability: "test.Int", Handle: provider})
			require.NoError(t, err)
			g.Observe(b)
			return
		}
	}
	t.Fatalf("no slot %s", slot)
}

// TestFlowGraphConstruction tests basic FlowGraph creation and structure
func TestFlowGraphConstruction(t *testing.T) {
	t.Run("create empty FlowGraph", func(t *testing.T) {
		graph := NewFlowGraph()

		assert.NotNil(t, graph)
		assert.Empty(t, graph.GetNodes())
		assert.Empty(t, graph.GetEdges())
	})

	t.Run("add component node", func(t *testing.T) {
		graph := NewFlowGraph()
		c := component.NewBase(sinkType, "s", nil)

		err := graph.AddComponentNode("sink", c)
		require.NoError(t, err)

		nodes := graph.GetNodes()
		assert.Len(t, nodes, 1)
		require.Contains(t, nodes, "sink")
		assert.Equal(t, "sink", nodes["sink"].ComponentName)
		assert.Equal(t, component.Wireable(c), nodes["sink"].Component)
	})

	t.Run("add duplicate component node returns error", func(t *testing.T) {
		graph := NewFlowGraph()
		c := component.NewBase(sinkType, "s", nil)

		require.NoError(t, graph.AddComponentNode("sink", c))

		err := graph.AddComponentNode("sink", component.NewBase(sinkType, "", nil))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		err = graph.AddComponentNode("other", c)
		assert.True(t, errors.Is(err, errors.ErrDuplicateName))
	})

	t.Run("invalid arguments", func(t *testing.T) {
		graph := NewFlowGraph()
		assert.Error(t, graph.AddComponentNode("", component.NewBase(sinkType, "", nil)))
		assert.True(t, errors.IsFatal(graph.AddComponentNode("x", nil)))
	})
}

func TestObserve(t *testing.T) {
	t.Run("names come from explicit nodes or identity", func(t *testing.T) {
		graph := NewFlowGraph()
		src := component.NewBase(sourceType, "adc", nil)
		a := component.NewBase(sinkType, "", nil)
		b := component.NewBase(sinkType, "", nil)
		mid := component.NewBase(middleType, "", nil)
		require.NoError(t, graph.AddComponentNode("adc", src))

		bind(t, graph, src, "output", mid)
		bind(t, graph, mid, "taps", a)
		bind(t, graph, mid, "taps", b)

		edges := graph.GetEdges()
		require.Len(t, edges, 3)
		assert.Equal(t, ComponentPortRef{ComponentName: "adc", PortName: "output"}, edges[0].From)
		assert.Equal(t, "Middle[No InstanceName]", edges[0].To.ComponentName)
		assert.Equal(t, "Sink[No InstanceName]", edges[1].To.ComponentName)
		assert.Equal(t, "Sink[No InstanceName]#2", edges[2].To.ComponentName)
		assert.Equal(t, capability.List, edges[2].Cardinality)
		assert.Equal(t, 1, edges[2].Position)
	})

	t.Run("ignores incomplete bindings", func(t *testing.T) {
		graph := NewFlowGraph()
		graph.Observe(component.Binding{})
		assert.Empty(t, graph.GetEdges())
	})
}

// TestFlowGraphAnalysis tests connectivity analysis
func TestFlowGraphAnalysis(t *testing.T) {
	t.Run("fully wired chain is healthy", func(t *testing.T) {
		graph := NewFlowGraph()
		src := component.NewBase(sourceType, "src", nil)
		mid := component.NewBase(middleType, "mid", nil)
		sink := component.NewBase(sinkType, "sink", nil)

		bind(t, graph, src, "output", mid)
		bind(t, graph, mid, "output", sink)

		result := graph.AnalyzeConnectivity()
		assert.Equal(t, StatusHealthy, result.ValidationStatus)
		assert.Equal(t, [][]string{{"Middle[mid]", "Sink[sink]", "Source[src]"}}, result.ConnectedComponents)
		assert.Empty(t, result.DisconnectedNodes)
		require.Len(t, result.OpenSlots, 1)
		assert.Equal(t, OpenSlot{
			ComponentName: "Middle[mid]",
			SlotName:      "taps",
			Capability:    "test.Int",
			Cardinality:   capability.List,
			Issue:         IssueEmptyList,
		}, result.OpenSlots[0])
		assert.Len(t, result.ConnectedEdges, 2)
	})

	t.Run("unbound singular slot and disconnected node warn", func(t *testing.T) {
		graph := NewFlowGraph()
		src := component.NewBase(sourceType, "src", nil)
		sink := component.NewBase(sinkType, "sink", nil)
		lonely := component.NewBase(sourceType, "lonely", nil)
		require.NoError(t, graph.AddComponentNode("lonely", lonely))

		bind(t, graph, src, "output", sink)

		result := graph.AnalyzeConnectivity()
		assert.Equal(t, StatusWarnings, result.ValidationStatus)
		require.Len(t, result.DisconnectedNodes, 1)
		assert.Equal(t, "lonely", result.DisconnectedNodes[0].ComponentName)
		require.Len(t, result.OpenSlots, 1)
		assert.Equal(t, IssueUnbound, result.OpenSlots[0].Issue)
		assert.Equal(t, [][]string{{"Sink[sink]", "Source[src]"}, {"lonely"}}, result.ConnectedComponents)
	})

	t.Run("node slots reflect live state", func(t *testing.T) {
		graph := NewFlowGraph()
		mid := component.NewBase(middleType, "mid", nil)
		require.NoError(t, graph.AddComponentNode("mid", mid))
		bind(t, graph, mid, "taps", component.NewBase(sinkType, "", nil))

		slots := graph.GetNodes()["mid"].Slots()
		require.Len(t, slots, 2)
		assert.Equal(t, "unassigned", slots[0].State)
		assert.Equal(t, "assigned(1)", slots[1].State)
	})
}
