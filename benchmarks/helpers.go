// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/comalice/unisync/internal/core"
)

// GenRegistry creates a registry pre-populated with n mutexes and n rwlocks,
// for snapshot and lookup benchmarks.
func GenRegistry(n int) *core.Registry {
	if n < 1 {
		n = 1
	}
	r := core.NewRegistry(fmt.Sprintf("bench_%d", n))
	for i := 0; i < n; i++ {
		r.Mutex(fmt.Sprintf("m%d", i))
		r.RWLock(fmt.Sprintf("rw%d", i))
	}
	return r
}
