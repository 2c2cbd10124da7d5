// Package cpu reports the processor features that can change the bit-level
// results of floating-point code: fused multiply-add availability in
// particular, which lets the compiler contract a complex multiply and so
// alter rounding relative to an explicit swap-and-negate rotation.
//
// Detection runs once and is cached. Results can be overridden for tests.
package cpu

import (
	"sync"
)

// Features describes the capabilities of the current processor.
type Features struct {
	// x86 features
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// HasFMA reports fused multiply-add support (FMA3 on x86, always on arm64).
	// Go may fuse x*y+z on platforms where FMA is part of the base ISA.
	HasFMA bool

	// ARM features
	HasNEON bool

	// ForceGeneric marks a forced configuration without any SIMD support.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
	Vendor       string
	Brand        string
	Family       int
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the features of the current processor.
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		identify(&detectedFeatures)
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// MayFuseMultiplyAdd reports whether the compiler is allowed to emit fused
// multiply-add instructions for the current architecture, which Go permits
// on arm64, ppc64, ppc64le, riscv64 and s390x without an explicit conversion.
func MayFuseMultiplyAdd() bool {
	f := DetectFeatures()
	if f.ForceGeneric {
		return false
	}

	switch f.Architecture {
	case "arm64", "ppc64", "ppc64le", "riscv64", "s390x":
		return true
	default:
		return false
	}
}

// SetForcedFeatures overrides detection with f. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()

	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}
