//go:build linux

package netinfo

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

const procRoutePath = "/proc/net/route"

// defaultGateway reads the kernel routing table and returns the gateway of
// the first default route.
func defaultGateway() (string, error) {
	f, err := os.Open(procRoutePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		// Iface Destination Gateway Flags ...
		if len(fields) < 3 || fields[1] != "00000000" {
			continue
		}
		gw, err := parseHexIPv4(fields[2])
		if err != nil || gw == "0.0.0.0" {
			continue
		}
		return gw, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no default route in %s", procRoutePath)
}

// parseHexIPv4 decodes the little-endian hex address format of
// /proc/net/route.
func parseHexIPv4(s string) (string, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return "", err
	}
	ip := net.IPv4(byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	return ip.String(), nil
}
