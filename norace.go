//go:build !race

package minprof

const raceBuild = false
