//go:build !amd64 && !arm64 && !386

package cpu

import "runtime"

func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
