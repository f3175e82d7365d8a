//go:build linux

package netaddr

import (
	"github.com/jsimonetti/rtnetlink"
	"golang.org/x/sys/unix"
)

// Gather dumps interface and address state over rtnetlink and converts it
// into portable Records. rtnetlink is the only Linux source that exposes
// per-address flags such as IFA_F_DEPRECATED; the net package hides them.
func Gather() ([]Record, error) {
	conn, err := rtnetlink.Dial(nil)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	links, err := conn.Link.List()
	if err != nil {
		return nil, err
	}
	ifFlags := make(map[uint32]uint32, len(links))
	for _, l := range links {
		ifFlags[l.Index] = l.Flags
	}

	msgs, err := conn.Address.List()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(msgs))
	for _, msg := range msgs {
		r := Record{Family: family(msg.Family)}

		flags := ifFlags[msg.Index]
		if flags&unix.IFF_RUNNING != 0 {
			r.Flags |= FlagRunning
		}
		if flags&unix.IFF_LOOPBACK != 0 {
			r.Flags |= FlagLoopback
		}

		if msg.Attributes != nil {
			// The attribute flag word supersedes the legacy 8-bit header
			// field when the kernel provides it.
			addrFlags := msg.Attributes.Flags
			if addrFlags == 0 {
				addrFlags = uint32(msg.Flags)
			}
			if addrFlags&unix.IFA_F_DEPRECATED != 0 {
				r.Flags |= FlagDeprecated
			}

			// IFA_LOCAL is the interface's own address; IFA_ADDRESS is the
			// peer on point-to-point links.
			addr := msg.Attributes.Local
			if addr == nil {
				addr = msg.Attributes.Address
			}
			if addr != nil {
				r.Addr = append([]byte(nil), addr...)
			}
		}

		records = append(records, r)
	}
	return records, nil
}

func family(af uint8) Family {
	switch af {
	case unix.AF_INET:
		return FamilyIPv4
	case unix.AF_INET6:
		return FamilyIPv6
	}
	return FamilyUnknown
}
