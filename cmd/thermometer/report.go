package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/c360/semwire/component/flowgraph"
)

func printAnalysis(w io.Writer, result *flowgraph.FlowAnalysisResult) {
	_, _ = fmt.Fprintf(w, "graph: %s, %d bindings, %d groups\n",
		result.ValidationStatus, len(result.ConnectedEdges), len(result.ConnectedComponents))
	for i, group := range result.ConnectedComponents {
		_, _ = fmt.Fprintf(w, "  group %d: %s\n", i+1, strings.Join(group, ", "))
	}
	for _, n := range result.DisconnectedNodes {
		_, _ = fmt.Fprintf(w, "  disconnected: %s (%s)\n", n.ComponentName, n.Issue)
	}
	for _, s := range result.OpenSlots {
		_, _ = fmt.Fprintf(w, "  open slot: %s.%s %s (%s)\n", s.ComponentName, s.SlotName, s.Capability, s.Issue)
	}
}
