//go:build unisync_relaxed

package primitives

const releaseChecks = false
