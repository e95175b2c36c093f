//go:build !linux

package netinfo

import "fmt"

func defaultGateway() (string, error) {
	return "", fmt.Errorf("default gateway discovery not supported on this platform")
}
