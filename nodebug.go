//go:build !debug

package minprof

const debugBuild = false
