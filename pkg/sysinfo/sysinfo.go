// Package sysinfo collects a point-in-time snapshot of host machine facts
// through a uniform per-OS capability interface.
//
// Every Prober method is side-effect free (the first release-metadata query
// populates the process-lifetime os-release cache) and never returns an
// error: a missing file, malformed data, or absent OS data collapses to the
// empty string for scalar fields and a nil slice for list fields. Each
// field is computed independently, so a failure in one never affects
// another. Nothing is cached across calls; every call recomputes its
// answer.
package sysinfo

import "github.com/casually-blue/mirafetch/pkg/diskfs"

// Prober is the capability interface consumed by the presentation layer.
// One implementation exists per supported operating system, selected at
// build time; shared logic never branches on OS identity at runtime.
//
// Scalar methods return "" when the fact is not available on this
// platform; list methods return nil. Absence is a designed outcome, not an
// error.
type Prober interface {
	// OS returns the distribution name and version plus machine
	// architecture, e.g. "Ubuntu 22.04 x86_64".
	OS() string
	// ID returns the short distribution identifier, e.g. "ubuntu".
	ID() string
	Hostname() string
	// Machine returns the hardware product name.
	Machine() string
	Kernel() string
	// CPU returns the model with core count, e.g.
	// "Example CPU (8) @ 3.00GHz".
	CPU() string
	// Memory returns "<used> / <total>" in IEC units with two decimals.
	Memory() string
	// Disks returns per-mount usage for real filesystems.
	Disks() []diskfs.Usage
	// IPs returns a fixed-size list whose first element is the
	// comma-joined non-loopback IPv4 address set. IPv6 addresses are
	// gathered and filtered but deliberately not emitted.
	IPs() []string
	GPUs() []string
	// Battery returns the charge percentage, e.g. "87%".
	Battery() string
	Locale() string
	Uptime() string
	Username() string
	Shell() string
	// Displays returns the preferred mode of each connected display.
	Displays() []string

	// Desktop-environment facts, intentionally unimplemented on the
	// platforms covered here; always absent.
	Theme() string
	WM() string
	DE() string
	Icons() string
	Terminal() string
	SysFont() string
	Cursor() string
	TermFont() string
}
