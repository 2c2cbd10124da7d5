//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs detection on arm64. ASIMD and scalar FMADD are
// mandatory in ARMv8.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		HasFMA:       true,
		Architecture: runtime.GOARCH,
	}
}
