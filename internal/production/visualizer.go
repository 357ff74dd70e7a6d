package production

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/comalice/unisync/internal/core"
)

// DefaultVisualizer is the stdlib-only implementation of core.Visualizer. It
// renders each primitive's state machine as a Graphviz cluster with the
// currently occupied state filled.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source for the snapshot.
func (v *DefaultVisualizer) ExportDOT(snapshot core.Snapshot) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph LockSet {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	for i, p := range snapshot.Primitives {
		switch p.Kind {
		case core.KindMutex:
			renderMutex(&buf, i, p)
		case core.KindRWLock:
			renderRWLock(&buf, i, p)
		case core.KindOnce:
			renderOnce(&buf, i, p)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the snapshot to JSON.
func (v *DefaultVisualizer) ExportJSON(snapshot core.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snapshot, "", "  ")
}

// node writes one state node, filling it when occupied.
func node(buf *bytes.Buffer, cluster int, state string, occupied bool) {
	if occupied {
		fmt.Fprintf(buf, "    \"%d_%s\" [label=\"%s\", style=\"rounded,filled\", fillcolor=lightblue];\n", cluster, state, state)
		return
	}
	fmt.Fprintf(buf, "    \"%d_%s\" [label=\"%s\"];\n", cluster, state, state)
}

func edge(buf *bytes.Buffer, cluster int, from, to, label string) {
	fmt.Fprintf(buf, "    \"%d_%s\" -> \"%d_%s\" [label=\"%s\"];\n", cluster, from, cluster, to, label)
}

func openCluster(buf *bytes.Buffer, cluster int, p core.PrimitiveState) {
	fmt.Fprintf(buf, "  subgraph cluster_%d {\n    label=\"%s (%s)\";\n", cluster, p.Name, p.Kind)
}

func renderMutex(buf *bytes.Buffer, cluster int, p core.PrimitiveState) {
	openCluster(buf, cluster, p)
	node(buf, cluster, "free", !p.Held)
	node(buf, cluster, "held", p.Held)
	edge(buf, cluster, "free", "held", "acquire")
	edge(buf, cluster, "held", "free", "release")
	buf.WriteString("  }\n")
}

func renderRWLock(buf *bytes.Buffer, cluster int, p core.PrimitiveState) {
	shared := "shared"
	if p.Readers > 0 {
		shared = fmt.Sprintf("shared(%d)", p.Readers)
	}
	openCluster(buf, cluster, p)
	node(buf, cluster, "free", p.Readers == 0 && !p.WriterHeld)
	fmt.Fprintf(buf, "    \"%d_shared\" [label=\"%s\"", cluster, shared)
	if p.Readers > 0 {
		buf.WriteString(", style=\"rounded,filled\", fillcolor=lightblue")
	}
	buf.WriteString("];\n")
	node(buf, cluster, "exclusive", p.WriterHeld)
	edge(buf, cluster, "free", "shared", "acquire_shared")
	edge(buf, cluster, "shared", "free", "release_shared")
	edge(buf, cluster, "free", "exclusive", "acquire_exclusive")
	edge(buf, cluster, "exclusive", "free", "release_exclusive")
	buf.WriteString("  }\n")
}

func renderOnce(buf *bytes.Buffer, cluster int, p core.PrimitiveState) {
	openCluster(buf, cluster, p)
	for _, state := range []string{"uninitialized", "running", "complete", "poisoned"} {
		node(buf, cluster, state, p.Status == state)
	}
	edge(buf, cluster, "uninitialized", "running", "do")
	edge(buf, cluster, "running", "complete", "ok")
	edge(buf, cluster, "running", "poisoned", "fail")
	edge(buf, cluster, "poisoned", "running", "retry")
	buf.WriteString("  }\n")
}
