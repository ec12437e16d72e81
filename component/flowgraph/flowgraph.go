// Package flowgraph records realized bindings as a graph and analyzes its connectivity.
package flowgraph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/c360/semwire/capability"
	"github.com/c360/semwire/component"
	"github.com/c360/semwire/errors"
)

// FlowGraph represents a directed graph of component bindings.
// It implements wiring.Observer.
type FlowGraph struct {
	mu    sync.Mutex
	nodes map[string]*ComponentNode // componentName -> node
	order []string
	index map[component.Wireable]string
	edges []FlowEdge
}

// ComponentNode represents a component in the flow graph
type ComponentNode struct {
	ComponentName string
	Component     component.Wireable
}

// SlotInfo contains slot metadata for graph analysis
type SlotInfo struct {
	Name        string                 `json:"name"`
	Capability  capability.ID          `json:"capability"`
	Cardinality capability.Cardinality `json:"cardinality"`
	State       string                 `json:"state"`
}

// Slots returns the live slot states of the node.
func (n *ComponentNode) Slots() []SlotInfo {
	slots := n.Component.Slots()
	out := make([]SlotInfo, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotInfo{
			Name:        s.Name(),
			Capability:  s.Capability(),
			Cardinality: s.Cardinality(),
			State:       s.State(),
		})
	}
	return out
}

// FlowEdge represents a binding from a consumer slot to a provider capability
type FlowEdge struct {
	From        ComponentPortRef       `json:"from"`
	To          ComponentPortRef       `json:"to"`
	Capability  capability.ID          `json:"capability"`
	Cardinality capability.Cardinality `json:"cardinality"`
	Position    int                    `json:"position"`
}

// ComponentPortRef references a slot or capability on a component
type ComponentPortRef struct {
	ComponentName string `json:"component_name"`
	PortName      string `json:"port_name"`
}

// Slot issues reported by AnalyzeConnectivity.
const (
	IssueUnbound   = "unbound"
	IssueEmptyList = "empty_list"
)

// Validation statuses.
const (
	StatusHealthy  = "healthy"
	StatusWarnings = "warnings"
)

// FlowAnalysisResult contains the results of connectivity analysis
type FlowAnalysisResult struct {
	ConnectedComponents [][]string         `json:"connected_components"`
	ConnectedEdges      []FlowEdge         `json:"connected_edges"`
	DisconnectedNodes   []DisconnectedNode `json:"disconnected_nodes"`
	OpenSlots           []OpenSlot         `json:"open_slots"`
	ValidationStatus    string             `json:"validation_status"`
}

// DisconnectedNode represents a component with no bindings
type DisconnectedNode struct {
	ComponentName string   `json:"component_name"`
	Issue         string   `json:"issue"`
	Suggestions   []string `json:"suggestions,omitempty"`
}

// OpenSlot represents a slot with nothing bound to it
type OpenSlot struct {
	ComponentName string                 `json:"component_name"`
	SlotName      string                 `json:"slot_name"`
	Capability    capability.ID          `json:"capability"`
	Cardinality   capability.Cardinality `json:"cardinality"`
	Issue         string                 `json:"issue"`
}

// NewFlowGraph creates a new empty FlowGraph
func NewFlowGraph() *FlowGraph {
	return &FlowGraph{
		nodes: make(map[string]*ComponentNode),
		index: make(map[component.Wireable]string),
		edges: make([]FlowEdge, 0),
	}
}

// GetNodes returns a copy of the component nodes
func (g *FlowGraph) GetNodes() map[string]*ComponentNode {
	g.mu.Lock()
	defer g.mu.Unlock()

	result := make(map[string]*ComponentNode, len(g.nodes))
	for k, v := range g.nodes {
		nodeCopy := *v
		result[k] = &nodeCopy
	}
	return result
}

// GetEdges returns the edges in bind order
func (g *FlowGraph) GetEdges() []FlowEdge {
	g.mu.Lock()
	defer g.mu.Unlock()

	result := make([]FlowEdge, len(g.edges))
	copy(result, g.edges)
	return result
}

// AddComponentNode adds a component as a node under an explicit name
func (g *FlowGraph) AddComponentNode(name string, comp component.Wireable) error {
	if name == "" {
		return errors.WrapInvalid(fmt.Errorf("%w: component name cannot be empty", errors.ErrInvalidArgument),
			"FlowGraph", "AddComponentNode", "name check")
	}
	if comp == nil {
		return errors.WrapFatal(fmt.Errorf("%w: component", errors.ErrNullArgument),
			"FlowGraph", "AddComponentNode", "component check")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[name]; exists {
		return errors.WrapInvalid(fmt.Errorf("%w: component %s already exists in graph", errors.ErrDuplicateName, name),
			"FlowGraph", "AddComponentNode", "duplicate check")
	}
	if existing, exists := g.index[comp]; exists {
		return errors.WrapInvalid(fmt.Errorf("%w: component already added as %s", errors.ErrDuplicateName, existing),
			"FlowGraph", "AddComponentNode", "duplicate check")
	}
	g.addLocked(name, comp)
	return nil
}

func (g *FlowGraph) addLocked(name string, comp component.Wireable) {
	g.nodes[name] = &ComponentNode{ComponentName: name, Component: comp}
	g.index[comp] = name
	g.order = append(g.order, name)
}

// nameLocked returns the node name of comp, adding it under Type[instance] when unknown.
func (g *FlowGraph) nameLocked(comp component.Wireable) string {
	if name, ok := g.index[comp]; ok {
		return name
	}
	base := comp.Info().String()
	name := base
	for i := 2; ; i++ {
		if _, taken := g.nodes[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s#%d", base, i)
	}
	g.addLocked(name, comp)
	return name
}

// Observe records a binding made by the resolver.
func (g *FlowGraph) Observe(b component.Binding) {
	if b.Consumer == nil || b.Provider == nil {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	cardinality := capability.Singular
	for _, s := range b.Consumer.Slots() {
		if s.Name() == b.Slot {
			cardinality = s.Cardinality()
			break
		}
	}

	g.edges = append(g.edges, FlowEdge{
		From:        ComponentPortRef{ComponentName: g.nameLocked(b.Consumer), PortName: b.Slot},
		To:          ComponentPortRef{ComponentName: g.nameLocked(b.Provider), PortName: string(b.Capability)},
		Capability:  b.Capability,
		Cardinality: cardinality,
		Position:    b.Position,
	})
}

// AnalyzeConnectivity performs graph connectivity analysis.
//
// The status is "warnings" when a component has no bindings or a singular slot is
// unbound. Empty list slots are reported but do not change the status.
func (g *FlowGraph) AnalyzeConnectivity() *FlowAnalysisResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	edges := make([]FlowEdge, len(g.edges))
	copy(edges, g.edges)

	result := &FlowAnalysisResult{
		ConnectedEdges:      edges,
		ValidationStatus:    StatusHealthy,
		DisconnectedNodes:   []DisconnectedNode{},
		ConnectedComponents: g.findConnectedComponents(),
		OpenSlots:           g.findOpenSlots(),
	}

	connected := make(map[string]bool)
	for _, edge := range g.edges {
		connected[edge.From.ComponentName] = true
		connected[edge.To.ComponentName] = true
	}
	for _, name := range g.order {
		if !connected[name] {
			result.DisconnectedNodes = append(result.DisconnectedNodes, DisconnectedNode{
				ComponentName: name,
				Issue:         "Component has no bindings",
				Suggestions:   []string{"Wire it to another component", "Remove it from the graph"},
			})
		}
	}

	hasUnbound := false
	for _, s := range result.OpenSlots {
		if s.Issue == IssueUnbound {
			hasUnbound = true
			break
		}
	}
	if len(result.DisconnectedNodes) > 0 || hasUnbound {
		result.ValidationStatus = StatusWarnings
	}

	return result
}

// findConnectedComponents uses DFS to find connected components in the graph.
// Each group is sorted; groups are ordered by their first member.
func (g *FlowGraph) findConnectedComponents() [][]string {
	visited := make(map[string]bool)
	components := [][]string{}

	// Treat edges as undirected for connectivity
	adj := make(map[string][]string)
	for _, edge := range g.edges {
		from := edge.From.ComponentName
		to := edge.To.ComponentName

		adj[from] = append(adj[from], to)
		adj[to] = append(adj[to], from)
	}

	for _, componentName := range g.order {
		if !visited[componentName] {
			var cluster []string
			g.dfs(componentName, adj, visited, &cluster)
			sort.Strings(cluster)
			components = append(components, cluster)
		}
	}

	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })
	return components
}

// dfs performs depth-first search for connected components
func (g *FlowGraph) dfs(node string, adj map[string][]string, visited map[string]bool, cluster *[]string) {
	visited[node] = true
	*cluster = append(*cluster, node)

	for _, neighbor := range adj[node] {
		if !visited[neighbor] {
			g.dfs(neighbor, adj, visited, cluster)
		}
	}
}

// findOpenSlots reads the live slot state of every node.
func (g *FlowGraph) findOpenSlots() []OpenSlot {
	open := []OpenSlot{}
	for _, name := range g.order {
		for _, s := range g.nodes[name].Component.Slots() {
			if s.Len() > 0 {
				continue
			}
			issue := IssueUnbound
			if s.IsList() {
				issue = IssueEmptyList
			}
			open = append(open, OpenSlot{
				ComponentName: name,
				SlotName:      s.Name(),
				Capability:    s.Capability(),
				Cardinality:   s.Cardinality(),
				Issue:         issue,
			})
		}
	}
	return open
}
