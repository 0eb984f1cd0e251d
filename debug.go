//go:build debug

package minprof

// debugBuild is set by the debug build tag and enables caller-contract
// assertions (idle Stopwatch use, negative durations).
const debugBuild = true
