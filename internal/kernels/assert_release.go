//go:build !microfft_debug

package kernels

// assertTable is a no-op in release builds. Callers enforce lengths through
// fixed-size array types; build with -tags microfft_debug to check them.
func assertTable(n, tableLen int) {}

// assertLength is a no-op in release builds.
func assertLength(n, tableLen int) {}
