//go:build amd64

package words

import "golang.org/x/sys/cpu"

func init() {
	hasHardwarePopcount = cpu.X86.HasPOPCNT
	initCapabilities()
}
