package cpu

import "github.com/klauspost/cpuid/v2"

// identify fills the vendor and model fields. On architectures where cpuid
// cannot query the processor these stay empty.
func identify(f *Features) {
	f.Vendor = cpuid.CPU.VendorString
	f.Brand = cpuid.CPU.BrandName
	f.Family = cpuid.CPU.Family

	if !f.HasFMA && cpuid.CPU.Supports(cpuid.FMA3) {
		f.HasFMA = true
	}
}
