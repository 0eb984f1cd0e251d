package minprof

// isDebugBuild reports whether caller-contract assertions are enabled,
// either via the debug build tag or the race detector.
func isDebugBuild() bool {
	return debugBuild || raceBuild
}
