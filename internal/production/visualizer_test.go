package production

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/comalice/unisync/internal/core"
)

func TestExportDOTMarksOccupiedStates(t *testing.T) {
	v := &DefaultVisualizer{}
	dot := v.ExportDOT(testSnapshot())

	if !strings.HasPrefix(dot, "digraph LockSet {") {
		t.Fatalf("unexpected DOT header: %q", dot[:40])
	}

	// Held mutex: the held node is filled, the free node is not.
	if !strings.Contains(dot, "\"0_held\" [label=\"held\", style=\"rounded,filled\", fillcolor=lightblue];") {
		t.Error("held mutex state not filled")
	}
	if strings.Contains(dot, "\"0_free\" [label=\"free\", style=\"rounded,filled\"") {
		t.Error("free mutex state filled while lock held")
	}

	// RWLock with two readers shows the count.
	if !strings.Contains(dot, "shared(2)") {
		t.Error("reader count missing from shared state label")
	}

	// Once renders its full state machine including the retry edge.
	if !strings.Contains(dot, "\"2_poisoned\" -> \"2_running\" [label=\"retry\"];") {
		t.Error("poison retry edge missing")
	}

	if !strings.Contains(dot, "label=\"journal (mutex)\";") {
		t.Error("cluster label missing")
	}
}

func TestExportJSON(t *testing.T) {
	v := &DefaultVisualizer{}
	data, err := v.ExportJSON(testSnapshot())
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var decoded core.Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.SetID != "app" || len(decoded.Primitives) != 3 {
		t.Errorf("unexpected decoded snapshot: %+v", decoded)
	}
}
