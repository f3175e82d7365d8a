//go:build darwin

package netaddr

import "net"

// Gather lists interface addresses through the net package. Darwin has no
// deprecated-address marker visible here, so that filter step never fires
// on this platform.
func Gather() ([]Record, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, iface := range ifaces {
		var flags Flags
		if iface.Flags&net.FlagRunning != 0 {
			flags |= FlagRunning
		}
		if iface.Flags&net.FlagLoopback != 0 {
			flags |= FlagLoopback
		}

		addrs, err := iface.Addrs()
		if err != nil {
			// One interface failing to report addresses does not stop the
			// walk; it simply contributes nothing.
			continue
		}
		for _, addr := range addrs {
			ipn, ok := addr.(*net.IPNet)
			if !ok || ipn.IP == nil {
				records = append(records, Record{Flags: flags})
				continue
			}
			r := Record{Flags: flags}
			if v4 := ipn.IP.To4(); v4 != nil {
				r.Family = FamilyIPv4
				r.Addr = append([]byte(nil), v4...)
			} else {
				r.Family = FamilyIPv6
				r.Addr = append([]byte(nil), ipn.IP.To16()...)
			}
			records = append(records, r)
		}
	}
	return records, nil
}
