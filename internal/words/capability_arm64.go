//go:build arm64

package words

import "golang.org/x/sys/cpu"

func init() {
	hasHardwarePopcount = cpu.ARM64.HasASIMD
	initCapabilities()
}
