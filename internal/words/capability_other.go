//go:build !amd64 && !arm64

package words

func init() {
	initCapabilities()
}
