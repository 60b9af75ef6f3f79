package api

import (
	"fmt"
	"net"
	"strconv"

	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

// parseCoordinates reads "row col" pairs from fields.
func parseCoordinates(fields []string, pairs int) ([]mb.Coordinates, error) {
	if len(fields) != pairs*2 {
		return nil, fmt.Errorf("expected %d numbers, got %d", pairs*2, len(fields))
	}

	coords := make([]mb.Coordinates, 0, pairs)
	for i := 0; i < len(fields); i += 2 {
		row, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("row is not a number: %s", fields[i])
		}
		col, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("col is not a number: %s", fields[i+1])
		}
		coords = append(coords, mb.NewCoordinates(row, col))
	}
	return coords, nil
}

// HostIpNet finds the first IPv4 address of an interface that is up
// and not a loopback. It falls back to 127.0.0.1/32.
func HostIpNet() net.IPNet {
	loopback := net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		return loopback
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			if ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip.To4(), Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	return loopback
}
