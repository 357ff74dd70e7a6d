package main

import (
	"context"
	"fmt"
	"os"

	"github.com/comalice/unisync/internal/core"
	"github.com/comalice/unisync/internal/extensibility"
	"github.com/comalice/unisync/internal/production"
)

func main() {
	events := make(chan core.TransitionEvent, 100)
	publisher := production.NewChannelPublisher(events)

	reg := core.NewRegistry("demo", core.WithPublisher(publisher))

	journal := extensibility.NewTracingLock("journal", reg.Mutex("journal"), publisher)
	config := extensibility.NewTracingRWLock("config", reg.RWLock("config"), publisher)

	// Exercise the primitives a little.
	journal.Acquire()
	config.AcquireShared()
	config.AcquireShared()
	reg.Once("boot").Do(func() error { return nil })

	snap := reg.Snapshot()
	fmt.Printf("snapshot %s (version %s)\n", snap.SetID, core.ComputeVersion(&snap))

	dumper, err := production.NewYAMLDumper(os.TempDir())
	if err != nil {
		panic(err)
	}
	if err := dumper.Dump(context.Background(), snap); err != nil {
		panic(err)
	}

	visualizer := &production.DefaultVisualizer{}
	fmt.Println(visualizer.ExportDOT(snap))

	config.ReleaseShared()
	config.ReleaseShared()
	journal.Release()

	publisher.Close()
	for ev := range events {
		fmt.Printf("event: %s %s: %s -> %s\n", ev.Kind, ev.Primitive, ev.From, ev.To)
	}
}
