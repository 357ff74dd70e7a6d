//go:build !unisync_relaxed

package primitives

// releaseChecks enables detection of unmatched releases (release of an unheld
// lock, reader-count underflow). Builds with `-tags unisync_relaxed` compile
// the checks out; the operations then trust the caller contract.
const releaseChecks = true
