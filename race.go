//go:build race

package minprof

// raceBuild mirrors the race detector: racy test runs also get the
// caller-contract assertions.
const raceBuild = true
